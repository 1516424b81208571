package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/ecrs/internal/domain"
)

type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository создаёт PostgreSQL-реализацию AccountRepository.
func NewAccountRepository(store *Store) domain.AccountRepository {
	return &accountRepository{db: store.DB()}
}

func (r *accountRepository) Create(account *domain.CustomerAccount) error {
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

	var exists bool
	exists, err = customerExists(ctx, tx, account.CustomerID)
	if err != nil {
		return err
	}
	if !exists {
		err = domain.ErrCustomerMissing
		return err
	}

	var taken bool
	taken, err = usernameExists(ctx, tx, account.Username)
	if err != nil {
		return err
	}
	if taken {
		err = domain.ErrUsernameTaken
		return err
	}

	// ID учётной записи закрепляется равным customer_id: одна запись на покупателя.
	account.ID = account.CustomerID
	_, err = tx.ExecContext(ctx, `
		INSERT INTO customer_accounts (id, username, password, customer_id)
		VALUES ($1, $2, $3, $4)
	`, account.ID, account.Username, account.Password, account.CustomerID)
	if err != nil {
		if isUsernameViolation(err) {
			err = domain.ErrUsernameTaken
			return err
		}
		return fmt.Errorf("insert customer account: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create account: %w", err)
	}

	return nil
}

func (r *accountRepository) Get(id int64) (domain.AccountWithCustomer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	// LEFT JOIN: ссылка на покупателя может висеть после его удаления,
	// учётная запись при этом остаётся читаемой.
	var account domain.AccountWithCustomer
	err := r.db.QueryRowContext(ctx, `
		SELECT a.id, a.username, a.password, a.customer_id, COALESCE(c.name, '')
		FROM customer_accounts a
		LEFT JOIN customers c ON c.id = a.customer_id
		WHERE a.id = $1
	`, id).Scan(&account.ID, &account.Username, &account.Password, &account.CustomerID, &account.CustomerName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AccountWithCustomer{}, domain.ErrAccountNotFound
		}
		return domain.AccountWithCustomer{}, fmt.Errorf("select customer account: %w", err)
	}

	return account, nil
}

func (r *accountRepository) UpdateCredentials(id int64, username, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE customer_accounts
		SET username = $1, password = $2
		WHERE id = $3
	`, username, password, id)
	if err != nil {
		if isUsernameViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update customer account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM customer_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer account: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

func usernameExists(ctx context.Context, q queryer, username string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM customer_accounts WHERE username = $1`, username).Scan(&one)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return false, fmt.Errorf("check username exists: %w", err)
}

// isUsernameViolation распознаёт нарушение уникальности имени (23505 по
// индексу username). Дубликат первичного ключа (вторая запись для одного
// покупателя) сюда не относится и уходит наверх как неожиданная ошибка.
func isUsernameViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "username")
	}
	return false
}

var _ domain.AccountRepository = (*accountRepository)(nil)
