package domain

import "errors"

var (
	// ErrCustomerNotFound возвращается, если покупатель не найден в хранилище.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound возвращается, если товар не найден в хранилище.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден в хранилище.
	ErrOrderNotFound = errors.New("order not found")
	// ErrAccountNotFound возвращается, если учётная запись не найдена.
	ErrAccountNotFound = errors.New("customer account not found")

	// ErrCustomerMissing — ссылочная ошибка: customer_id не указывает на существующего покупателя.
	ErrCustomerMissing = errors.New("invalid customer id")
	// ErrProductMissing — ссылочная ошибка: часть product_ids не разрешилась в существующие товары.
	// Операция отклоняется целиком, частичные связи не записываются.
	ErrProductMissing = errors.New("some product ids are invalid")
	// ErrUsernameTaken — конфликт уникальности имени учётной записи.
	ErrUsernameTaken = errors.New("username already exists")
)

// IsNotFound сообщает, относится ли ошибка к классу "запись не найдена" (HTTP 404).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrAccountNotFound)
}

// IsRejected сообщает, является ли ошибка отказом по вине клиента (HTTP 400):
// ссылочная целостность или конфликт уникальности.
func IsRejected(err error) bool {
	return errors.Is(err, ErrCustomerMissing) ||
		errors.Is(err, ErrProductMissing) ||
		errors.Is(err, ErrUsernameTaken)
}
