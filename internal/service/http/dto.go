package httpsvc

import "github.com/vladislavdragonenkov/ecrs/internal/domain"

const dateLayout = "2006-01-02"

type customerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type productResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type orderResponse struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	CustomerID int64   `json:"customer_id"`
	ProductIDs []int64 `json:"product_ids"`
}

// accountResponse никогда не содержит пароль (даже в виде хэша).
type accountResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorsResponse перечисляет каждое нарушенное поле с причиной.
type fieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{ID: p.ID, Name: p.Name, Price: p.Price}
}

func toOrderResponse(o domain.Order) orderResponse {
	ids := o.ProductIDs
	if ids == nil {
		ids = []int64{}
	}
	return orderResponse{
		ID:         o.ID,
		Date:       o.Date.Format(dateLayout),
		CustomerID: o.CustomerID,
		ProductIDs: ids,
	}
}

func toAccountResponse(a domain.AccountWithCustomer) accountResponse {
	return accountResponse{
		ID:           a.ID,
		Username:     a.Username,
		CustomerID:   a.CustomerID,
		CustomerName: a.CustomerName,
	}
}
