package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vladislavdragonenkov/ecrs/internal/domain"
)

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository создаёт PostgreSQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{db: store.DB()}
}

func (r *orderRepository) Create(order *domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = checkOrderReferences(ctx, tx, order.CustomerID, order.ProductIDs); err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_date, customer_id)
		VALUES ($1, $2)
		RETURNING id
	`, order.Date, order.CustomerID).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if err = insertAssociations(ctx, tx, order.ID, order.ProductIDs); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create order: %w", err)
	}

	return nil
}

func (r *orderRepository) Get(id int64) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var order domain.Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_date, customer_id
		FROM orders
		WHERE id = $1
	`, id).Scan(&order.ID, &order.Date, &order.CustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}

	productIDs, err := r.loadProductIDs(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	order.ProductIDs = productIDs

	return order, nil
}

func (r *orderRepository) List() ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_date, customer_id
		FROM orders
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Date, &order.CustomerID); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for i := range orders {
		productIDs, err := r.loadProductIDs(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].ProductIDs = productIDs
	}

	return orders, nil
}

func (r *orderRepository) Update(order domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var res sql.Result
	res, err = tx.ExecContext(ctx, `
		UPDATE orders
		SET order_date = $1, customer_id = $2
		WHERE id = $3
	`, order.Date, order.CustomerID, order.ID)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}

	var affected int64
	affected, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		err = domain.ErrOrderNotFound
		return err
	}

	if err = checkOrderReferences(ctx, tx, order.CustomerID, order.ProductIDs); err != nil {
		return err
	}

	// Набор связей заменяется ровно на переданный, без остаточных строк.
	if _, err = tx.ExecContext(ctx, `DELETE FROM order_product WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("clear order associations: %w", err)
	}
	if err = insertAssociations(ctx, tx, order.ID, order.ProductIDs); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit update order: %w", err)
	}

	return nil
}

func (r *orderRepository) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	// Строки order_product удаляет каскад; сами товары не затрагиваются.
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) loadProductIDs(ctx context.Context, orderID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id
		FROM order_product
		WHERE order_id = $1
		ORDER BY product_id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order products: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan order product id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order product ids: %w", err)
	}

	return ids, nil
}

// checkOrderReferences выполняет ссылочную валидацию заказа внутри транзакции:
// покупатель должен существовать, и каждый запрошенный product_id обязан
// разрешиться в существующий товар. Несовпадение количества разрешённых строк
// с количеством запрошенных ID отклоняет операцию целиком (всё-или-ничего);
// продублированные ID по той же причине не принимаются.
func checkOrderReferences(ctx context.Context, tx *sql.Tx, customerID int64, productIDs []int64) error {
	exists, err := customerExists(ctx, tx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCustomerMissing
	}

	if len(productIDs) == 0 {
		return nil
	}

	placeholders := make([]string, len(productIDs))
	args := make([]any, len(productIDs))
	for i, id := range productIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	var resolved int
	query := `SELECT COUNT(*) FROM products WHERE id IN (` + strings.Join(placeholders, ",") + `)`
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&resolved); err != nil {
		return fmt.Errorf("resolve product ids: %w", err)
	}
	if resolved != len(productIDs) {
		return domain.ErrProductMissing
	}

	return nil
}

func insertAssociations(ctx context.Context, tx *sql.Tx, orderID int64, productIDs []int64) error {
	for _, productID := range productIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_product (order_id, product_id)
			VALUES ($1, $2)
		`, orderID, productID); err != nil {
			return fmt.Errorf("insert order association: %w", err)
		}
	}
	return nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
