package domain

// Customer — покупатель. Идентификатор назначается хранилищем при создании.
type Customer struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// CustomerAccount — учётная запись покупателя (связь 1:1 с Customer).
// ID учётной записи закрепляется равным CustomerID при создании.
type CustomerAccount struct {
	ID         int64
	Username   string
	Password   string
	CustomerID int64
}

// AccountWithCustomer — учётная запись вместе с именем владельца
// для ответа GET /customer-accounts/{id}.
type AccountWithCustomer struct {
	CustomerAccount
	CustomerName string
}
