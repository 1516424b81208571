package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/ecrs/internal/domain"
)

// customerRepositoryInMemory — простая in-memory реализация CustomerRepository
// для локальной разработки и тестов.
type customerRepositoryInMemory struct {
	mu     sync.RWMutex
	items  map[int64]domain.Customer
	nextID int64
}

// NewCustomerRepository возвращает in-memory репозиторий покупателей.
func NewCustomerRepository() domain.CustomerRepository {
	return &customerRepositoryInMemory{
		items:  make(map[int64]domain.Customer),
		nextID: 1,
	}
}

func (r *customerRepositoryInMemory) Create(customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	customer.ID = r.nextID
	r.nextID++
	r.items[customer.ID] = *customer
	return nil
}

func (r *customerRepositoryInMemory) Get(id int64) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *customerRepositoryInMemory) List() ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Customer, 0, len(r.items))
	for _, customer := range r.items {
		result = append(result, customer)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *customerRepositoryInMemory) Update(customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	r.items[customer.ID] = customer
	return nil
}

func (r *customerRepositoryInMemory) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *customerRepositoryInMemory) Exists(id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)
