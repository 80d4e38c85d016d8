package gateway

import (
	"net/http"

	"github.com/Suvam-Debnath/EcomTCS/internal/api"
	m "github.com/Suvam-Debnath/EcomTCS/internal/api/middleware"
	"github.com/Suvam-Debnath/EcomTCS/internal/constants"
	"github.com/Suvam-Debnath/EcomTCS/internal/gateway/breaker"
	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Route 靜態路由表，對應原系統的path prefix設定
type Route struct {
	Name     string
	Prefixes []string
	Service  string
	Fallback http.HandlerFunc
}

func DefaultRoutes() []Route {
	return []Route{
		{
			Name:     "product",
			Prefixes: []string{"/api/products"},
			Service:  constants.ServiceProduct,
			Fallback: fallbackHandler("Product"),
		},
		{
			Name:     "user",
			Prefixes: []string{"/api/users"},
			Service:  constants.ServiceUser,
			Fallback: fallbackHandler("User"),
		},
		{
			Name:     "order",
			Prefixes: []string{"/api/orders", "/api/cart"},
			Service:  constants.ServiceOrder,
			Fallback: fallbackHandler("Order"),
		},
	}
}

func fallbackHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.ErrorJSON(w, http.StatusServiceUnavailable,
			service+" service is unavailable. Please try again later")
	}
}

func SetupRouter(routes []Route, resolver registry.Resolver, breakerConfig *breaker.BreakerConfig, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)
	r.Use(m.NewRateLimitMiddleware(nil))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.SuccessJSON(w, http.StatusOK, "ok")
	})

	for _, route := range routes {
		// 每個route一個獨立斷路器
		proxy := NewServiceProxy(route.Service, resolver, breaker.NewBreaker(breakerConfig), route.Fallback, logger)
		for _, prefix := range route.Prefixes {
			r.Handle(prefix, proxy)
			r.Handle(prefix+"/*", proxy)
		}
		r.Get("/fallback/"+route.Name+"s", route.Fallback)
	}

	return r
}
