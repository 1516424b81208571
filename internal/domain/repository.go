package domain

// CustomerRepository описывает требования к хранилищу покупателей.
type CustomerRepository interface {
	// Create сохраняет нового покупателя и проставляет назначенный ID.
	Create(customer *Customer) error
	// Get возвращает покупателя или ErrCustomerNotFound.
	Get(id int64) (Customer, error)
	// List возвращает всех покупателей.
	List() ([]Customer, error)
	// Update полностью заменяет поля покупателя или возвращает ErrCustomerNotFound.
	Update(customer Customer) error
	// Delete удаляет покупателя или возвращает ErrCustomerNotFound.
	// Заказы покупателя при этом не удаляются (см. решение по каскадам в миграциях).
	Delete(id int64) error
	// Exists проверяет наличие покупателя для ссылочной валидации.
	Exists(id int64) (bool, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	Create(product *Product) error
	// Get возвращает товар или ErrProductNotFound.
	Get(id int64) (Product, error)
	List() ([]Product, error)
	Update(product Product) error
	Delete(id int64) error
}

// OrderRepository описывает требования к хранилищу заказов.
// Create и Update выполняют ссылочную валидацию: customer_id должен существовать
// (ErrCustomerMissing), все product_ids должны разрешиться (ErrProductMissing);
// при любом промахе операция отменяется целиком.
type OrderRepository interface {
	Create(order *Order) error
	// Get возвращает заказ вместе со ссылками на товары или ErrOrderNotFound.
	Get(id int64) (Order, error)
	List() ([]Order, error)
	// Update заменяет поля заказа и набор связанных товаров ровно на переданный.
	Update(order Order) error
	Delete(id int64) error
}

// AccountRepository описывает требования к хранилищу учётных записей.
type AccountRepository interface {
	// Create сохраняет учётную запись, закрепляя её ID равным CustomerID.
	// Возвращает ErrCustomerMissing или ErrUsernameTaken при нарушении ограничений.
	Create(account *CustomerAccount) error
	// Get возвращает учётную запись вместе с именем владельца или ErrAccountNotFound.
	Get(id int64) (AccountWithCustomer, error)
	// UpdateCredentials заменяет имя и пароль учётной записи.
	UpdateCredentials(id int64, username, password string) error
	Delete(id int64) error
}
