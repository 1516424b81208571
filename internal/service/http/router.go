package httpsvc

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ecrs/internal/metrics"
)

// NewRouter собирает маршруты всех ресурсов сервиса.
func NewRouter(h *Handler, logger *log.Entry, m *metrics.HTTPMetrics) http.Handler {
	if logger == nil {
		logger = log.WithField("component", "http")
	}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(withObservability(logger, m))
	r.Use(middleware.Recoverer)

	r.Get("/", h.Home)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
		r.Put("/{id}", h.UpdateProduct)
		r.Delete("/{id}", h.DeleteProduct)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.CreateCustomer)
		r.Get("/", h.ListCustomers)
		r.Get("/{id}", h.GetCustomer)
		r.Put("/{id}", h.UpdateCustomer)
		r.Delete("/{id}", h.DeleteCustomer)
	})

	r.Route("/customer-accounts", func(r chi.Router) {
		r.Post("/", h.CreateAccount)
		r.Get("/{id}", h.GetAccount)
		r.Put("/{id}", h.UpdateAccount)
		r.Delete("/{id}", h.DeleteAccount)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
		r.Put("/{id}", h.UpdateOrder)
		r.Delete("/{id}", h.DeleteOrder)
	})

	return r
}
