package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ecrs/internal/domain"
	"github.com/vladislavdragonenkov/ecrs/internal/storage/memory"
	"github.com/vladislavdragonenkov/ecrs/internal/storage/postgres"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Customers domain.CustomerRepository
	Products  domain.ProductRepository
	Orders    domain.OrderRepository
	Accounts  domain.AccountRepository
	// Store заполнен только при работе поверх PostgreSQL.
	Store  *postgres.Store
	Logger *log.Entry
}

// NewDependencies инициализирует хранилище и репозитории. С заданным DSN
// подключается к PostgreSQL и применяет миграции; без DSN поднимает
// in-memory хранилище для локальной разработки.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	if cfg.PostgresDSN == "" {
		logger.Warn("postgres DSN is not set, using in-memory storage")
		customers := memory.NewCustomerRepository()
		products := memory.NewProductRepository()
		return &Dependencies{
			Customers: customers,
			Products:  products,
			Orders:    memory.NewOrderRepository(customers, products),
			Accounts:  memory.NewAccountRepository(customers),
			Logger:    logger,
		}, nil
	}

	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}
	if err := store.MigrateUp(ctx, 0); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("postgres storage initialized")

	return &Dependencies{
		Customers: postgres.NewCustomerRepository(store),
		Products:  postgres.NewProductRepository(store),
		Orders:    postgres.NewOrderRepository(store),
		Accounts:  postgres.NewAccountRepository(store),
		Store:     store,
		Logger:    logger,
	}, nil
}

// Close освобождает ресурсы зависимостей.
func (d *Dependencies) Close() error {
	if d == nil || d.Store == nil {
		return nil
	}
	return d.Store.Close()
}
