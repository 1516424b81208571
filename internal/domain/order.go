package domain

import "time"

// Order — заказ покупателя. ProductIDs — ссылки на товары через
// ассоциативную таблицу order_product (many-to-many).
type Order struct {
	ID         int64
	Date       time.Time
	CustomerID int64
	ProductIDs []int64
}
