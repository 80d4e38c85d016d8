package router

import (
	"net/http"

	"github.com/Suvam-Debnath/EcomTCS/internal/api/handler"
	"github.com/Suvam-Debnath/EcomTCS/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// newBaseRouter - 各服務共用的 router 骨架，掛上共通 middleware 與健康檢查
func newBaseRouter(logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestIdMiddleware)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.RecoverMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return r
}

func SetupProductRouter(productHandler *handler.ProductHandler, logger *zerolog.Logger) *chi.Mux {
	r := newBaseRouter(logger)

	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", productHandler.CreateProduct)
		r.Get("/", productHandler.GetProducts)
		r.Get("/search", productHandler.SearchProducts)
		r.Get("/{id}", productHandler.GetProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})
	return r
}

func SetupUserRouter(userHandler *handler.UserHandler, logger *zerolog.Logger) *chi.Mux {
	r := newBaseRouter(logger)

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.GetUsers)
		r.Post("/", userHandler.CreateUser)
		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
	})
	return r
}

func SetupOrderRouter(cartHandler *handler.CartHandler, orderHandler *handler.OrderHandler, logger *zerolog.Logger) *chi.Mux {
	r := newBaseRouter(logger)

	r.Route("/api/cart", func(r chi.Router) {
		r.Post("/", cartHandler.AddToCart)
		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Delete("/items/{productId}", cartHandler.RemoveFromCart)
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/", orderHandler.GetOrders)
		r.Get("/{id}", orderHandler.GetOrder)
	})
	return r
}
