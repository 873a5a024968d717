package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	router *chi.Mux
}

func NewHandler(authH *AuthHandler, productH *ProductHandler, orderH *OrderHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	h := &Handler{
		router: router,
	}

	h.registerRoutes(authH, productH, orderH)
	return h
}

func (h *Handler) registerRoutes(authH *AuthHandler, productH *ProductHandler, orderH *OrderHandler) {
	h.router.Get("/health", h.HealthCheck)

	// Auth
	h.router.Post("/register", authH.Register)
	h.router.Post("/login", authH.Login)
	h.router.Get("/users/{id}", authH.GetUser)

	// Catalog
	h.router.Get("/products", productH.List)
	h.router.Post("/products", productH.Create)
	h.router.Get("/products/{id}", productH.Get)
	h.router.Put("/products/{id}", productH.Update)
	h.router.Delete("/products/{id}", productH.Delete)
	h.router.Get("/featured_products", productH.Featured)

	// Orders
	h.router.Post("/orders", orderH.Create)
	h.router.Get("/user-products/{userID}", orderH.ListByUser)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
