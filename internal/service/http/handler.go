// Package httpsvc реализует HTTP-слой сервиса: по одному обработчику на пару
// (ресурс, метод), каждый проходит путь валидация → запись → ответ и всегда
// завершается ровно одним JSON-ответом с одним кодом статуса.
package httpsvc

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ecrs/internal/auth"
	"github.com/vladislavdragonenkov/ecrs/internal/domain"
	"github.com/vladislavdragonenkov/ecrs/internal/schema"
)

// Handler содержит обработчики всех ресурсов сервиса.
type Handler struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    domain.OrderRepository
	accounts  domain.AccountRepository
	logger    *log.Entry
}

// NewHandler конструирует обработчик с зависимостями.
func NewHandler(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	accounts domain.AccountRepository,
	logger *log.Entry,
) *Handler {
	if logger == nil {
		logger = log.WithField("component", "http")
	}
	return &Handler{
		customers: customers,
		products:  products,
		orders:    orders,
		accounts:  accounts,
		logger:    logger,
	}
}

// Home отдаёт приветственную страницу.
func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("<html><body><h1>Welcome to the e-commerce records service.</h1></body></html>"))
}

// --- Products ---

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	in, ferr := schema.DecodeProduct(r.Body)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	product := domain.Product{Name: in.Name, Price: in.Price}
	if err := h.products.Create(&product); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List()
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	in, ferr := schema.DecodeProduct(r.Body)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	product := domain.Product{ID: id, Name: in.Name, Price: in.Price}
	if err := h.products.Update(product); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.products.Delete(id); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Product deleted successfully")
}

// --- Customers ---

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	in, ferr := schema.DecodeCustomer(r.Body)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	customer := domain.Customer{Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := h.customers.Create(&customer); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List()
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	out := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	customer, err := h.customers.Get(id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	in, ferr := schema.DecodeCustomer(r.Body)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	customer := domain.Customer{ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := h.customers.Update(customer); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	// Заказы покупателя не удаляются: их customer_id остаётся висячей ссылкой.
	if err := h.customers.Delete(id); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Customer deleted successfully")
}

// --- Customer accounts ---

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	in, ferr := schema.DecodeAccount(r.Body)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	account := domain.CustomerAccount{
		Username:   in.Username,
		Password:   hashed,
		CustomerID: in.CustomerID,
	}
	if err := h.accounts.Create(&account); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(domain.AccountWithCustomer{CustomerAccount: account}))
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	account, err := h.accounts.Get(id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	in, ferr := schema.DecodeCredentials(r.Body)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.accounts.UpdateCredentials(id, in.Username, hashed); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Customer account updated successfully")
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.accounts.Delete(id); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Customer account deleted successfully")
}

// --- Orders ---

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	in, ferr := schema.DecodeOrder(r.Body)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	order := domain.Order{Date: in.Date, CustomerID: in.CustomerID, ProductIDs: in.ProductIDs}
	if err := h.orders.Create(&order); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List()
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Get(id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	in, ferr := schema.DecodeOrder(r.Body)
	if ferr != nil {
		writeFieldErrors(w, ferr)
		return
	}

	order := domain.Order{ID: id, Date: in.Date, CustomerID: in.CustomerID, ProductIDs: in.ProductIDs}
	if err := h.orders.Update(order); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.orders.Delete(id); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Order deleted successfully")
}

// pathID извлекает целочисленный {id} из пути. Нечисловой идентификатор —
// это несуществующий маршрут, отвечаем 404.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "resource not found")
		return 0, false
	}
	return id, true
}
