package memory_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/ecrs/internal/domain"
	"github.com/vladislavdragonenkov/ecrs/internal/storage/memory"
)

func newAccountFixture(t *testing.T) (domain.CustomerRepository, domain.AccountRepository, domain.Customer) {
	t.Helper()

	customers := memory.NewCustomerRepository()
	accounts := memory.NewAccountRepository(customers)

	customer := domain.Customer{Name: "A", Email: "a@x.com", Phone: "123"}
	if err := customers.Create(&customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return customers, accounts, customer
}

func TestAccountRepository_CreatePinsIDToCustomer(t *testing.T) {
	_, accounts, customer := newAccountFixture(t)

	account := domain.CustomerAccount{Username: "alice", Password: "hash", CustomerID: customer.ID}
	if err := accounts.Create(&account); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if account.ID != customer.ID {
		t.Fatalf("expected account id pinned to %d, got %d", customer.ID, account.ID)
	}
}

func TestAccountRepository_CreateUnknownCustomer(t *testing.T) {
	_, accounts, _ := newAccountFixture(t)

	account := domain.CustomerAccount{Username: "alice", Password: "hash", CustomerID: 999}
	if err := accounts.Create(&account); !errors.Is(err, domain.ErrCustomerMissing) {
		t.Fatalf("expected ErrCustomerMissing, got %v", err)
	}
}

func TestAccountRepository_DuplicateUsername(t *testing.T) {
	customers, accounts, customer := newAccountFixture(t)

	other := domain.Customer{Name: "B"}
	if err := customers.Create(&other); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	first := domain.CustomerAccount{Username: "alice", Password: "hash", CustomerID: customer.ID}
	if err := accounts.Create(&first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	second := domain.CustomerAccount{Username: "alice", Password: "hash", CustomerID: other.ID}
	if err := accounts.Create(&second); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// Первая запись не пострадала.
	stored, err := accounts.Get(first.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Username != "alice" {
		t.Fatalf("expected first account intact, got %+v", stored)
	}
}

func TestAccountRepository_GetJoinsCustomerName(t *testing.T) {
	_, accounts, customer := newAccountFixture(t)

	account := domain.CustomerAccount{Username: "alice", Password: "hash", CustomerID: customer.ID}
	if err := accounts.Create(&account); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := accounts.Get(account.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.CustomerName != customer.Name {
		t.Fatalf("expected customer name %q, got %q", customer.Name, stored.CustomerName)
	}
}

func TestAccountRepository_GetAfterCustomerDelete(t *testing.T) {
	customers, accounts, customer := newAccountFixture(t)

	account := domain.CustomerAccount{Username: "alice", Password: "hash", CustomerID: customer.ID}
	if err := accounts.Create(&account); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := customers.Delete(customer.ID); err != nil {
		t.Fatalf("delete customer: %v", err)
	}

	stored, err := accounts.Get(account.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.CustomerName != "" {
		t.Fatalf("expected empty customer name for dangling reference, got %q", stored.CustomerName)
	}
}

func TestAccountRepository_UpdateCredentials(t *testing.T) {
	_, accounts, customer := newAccountFixture(t)

	account := domain.CustomerAccount{Username: "alice", Password: "hash", CustomerID: customer.ID}
	if err := accounts.Create(&account); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := accounts.UpdateCredentials(account.ID, "alice2", "hash2"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := accounts.Get(account.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Username != "alice2" || stored.Password != "hash2" {
		t.Fatalf("expected updated credentials, got %+v", stored)
	}
}

func TestAccountRepository_UpdateMissing(t *testing.T) {
	_, accounts, _ := newAccountFixture(t)

	err := accounts.UpdateCredentials(42, "x", "y")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_Delete(t *testing.T) {
	_, accounts, customer := newAccountFixture(t)

	account := domain.CustomerAccount{Username: "alice", Password: "hash", CustomerID: customer.ID}
	if err := accounts.Create(&account); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := accounts.Delete(account.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := accounts.Get(account.ID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
