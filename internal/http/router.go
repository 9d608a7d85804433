package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nmwangik/dukapay/internal/auth"
	"github.com/nmwangik/dukapay/internal/http/customer"
	"github.com/nmwangik/dukapay/internal/http/order"
	"github.com/nmwangik/dukapay/internal/http/product"
	"github.com/nmwangik/dukapay/internal/http/sms"
)

func New(
	authSecret string,
	ordersV1 *order.Handler,
	customersV1 *customer.Handler,
	productsV1 *product.Handler,
	smsV1 *sms.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ordersV1.Routes(r)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			customersV1.Routes(r)
		})

		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			productsV1.Routes(r)
		})

		r.Route("/sms", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			smsV1.Routes(r)
		})
	})

	return router
}
