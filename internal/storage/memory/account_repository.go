package memory

import (
	"errors"
	"sync"

	"github.com/vladislavdragonenkov/ecrs/internal/domain"
)

// accountRepositoryInMemory — in-memory реализация AccountRepository.
type accountRepositoryInMemory struct {
	mu        sync.RWMutex
	items     map[int64]domain.CustomerAccount
	customers domain.CustomerRepository
}

// NewAccountRepository возвращает in-memory репозиторий учётных записей.
func NewAccountRepository(customers domain.CustomerRepository) domain.AccountRepository {
	return &accountRepositoryInMemory{
		items:     make(map[int64]domain.CustomerAccount),
		customers: customers,
	}
}

func (r *accountRepositoryInMemory) Create(account *domain.CustomerAccount) error {
	exists, err := r.customers.Exists(account.CustomerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCustomerMissing
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Username == account.Username {
			return domain.ErrUsernameTaken
		}
	}

	// ID закрепляется равным customer_id, как и в PostgreSQL-реализации.
	account.ID = account.CustomerID
	r.items[account.ID] = *account
	return nil
}

func (r *accountRepositoryInMemory) Get(id int64) (domain.AccountWithCustomer, error) {
	r.mu.RLock()
	account, ok := r.items[id]
	r.mu.RUnlock()
	if !ok {
		return domain.AccountWithCustomer{}, domain.ErrAccountNotFound
	}

	// Имя владельца может отсутствовать, если покупатель уже удалён.
	result := domain.AccountWithCustomer{CustomerAccount: account}
	customer, err := r.customers.Get(account.CustomerID)
	if err == nil {
		result.CustomerName = customer.Name
	} else if !errors.Is(err, domain.ErrCustomerNotFound) {
		return domain.AccountWithCustomer{}, err
	}
	return result, nil
}

func (r *accountRepositoryInMemory) UpdateCredentials(id int64, username, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.items[id]
	if !ok {
		return domain.ErrAccountNotFound
	}

	for otherID, existing := range r.items {
		if otherID != id && existing.Username == username {
			return domain.ErrUsernameTaken
		}
	}

	account.Username = username
	account.Password = password
	r.items[id] = account
	return nil
}

func (r *accountRepositoryInMemory) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.items, id)
	return nil
}

var _ domain.AccountRepository = (*accountRepositoryInMemory)(nil)
