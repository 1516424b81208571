package memory

import (
	"errors"
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/ecrs/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository.
// Ссылочную валидацию выполняет через переданные репозитории покупателей
// и товаров, повторяя контракт PostgreSQL-реализации.
type orderRepositoryInMemory struct {
	mu        sync.RWMutex
	items     map[int64]domain.Order
	nextID    int64
	customers domain.CustomerRepository
	products  domain.ProductRepository
}

// NewOrderRepository возвращает in-memory репозиторий заказов.
func NewOrderRepository(customers domain.CustomerRepository, products domain.ProductRepository) domain.OrderRepository {
	return &orderRepositoryInMemory{
		items:     make(map[int64]domain.Order),
		nextID:    1,
		customers: customers,
		products:  products,
	}
}

func (r *orderRepositoryInMemory) Create(order *domain.Order) error {
	if err := r.checkReferences(order.CustomerID, order.ProductIDs); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	stored := *order
	stored.ProductIDs = copyIDs(order.ProductIDs)
	r.items[order.ID] = stored
	return nil
}

func (r *orderRepositoryInMemory) Get(id int64) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	order.ProductIDs = copyIDs(order.ProductIDs)
	return order, nil
}

func (r *orderRepositoryInMemory) List() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		order.ProductIDs = copyIDs(order.ProductIDs)
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *orderRepositoryInMemory) Update(order domain.Order) error {
	r.mu.RLock()
	_, ok := r.items[order.ID]
	r.mu.RUnlock()
	if !ok {
		return domain.ErrOrderNotFound
	}

	if err := r.checkReferences(order.CustomerID, order.ProductIDs); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[order.ID]; !ok {
		return domain.ErrOrderNotFound
	}
	order.ProductIDs = copyIDs(order.ProductIDs)
	r.items[order.ID] = order
	return nil
}

func (r *orderRepositoryInMemory) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.items, id)
	return nil
}

// checkReferences повторяет валидацию всё-или-ничего: неизвестный покупатель
// или хотя бы один неразрешимый product_id отклоняют операцию целиком.
// Дубликаты в списке считаются неразрешимыми, как и в PostgreSQL-реализации.
func (r *orderRepositoryInMemory) checkReferences(customerID int64, productIDs []int64) error {
	exists, err := r.customers.Exists(customerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCustomerMissing
	}

	seen := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, dup := seen[id]; dup {
			return domain.ErrProductMissing
		}
		seen[id] = struct{}{}

		if _, err := r.products.Get(id); err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return domain.ErrProductMissing
			}
			return err
		}
	}
	return nil
}

func copyIDs(ids []int64) []int64 {
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
