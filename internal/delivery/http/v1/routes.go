package v1

import (
	"net/http"

	"arena-portal-backend/internal/delivery/http/middleware"
)

// Routes groups the handlers served under /api/v1.
type Routes struct {
	Tracking *TrackingHandler
	Config   *ConfigHandler
	Health   *HealthHandler
	// Metrics is optional; nil leaves /metrics unregistered.
	Metrics http.Handler
}

func (rt Routes) Register(mux *http.ServeMux) {
	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}

	// Config (Public)
	mux.HandleFunc("GET /api/v1/config/enums", rt.Config.GetEnums)

	// Progress preview (Public)
	mux.HandleFunc("GET /api/v1/progress", rt.Tracking.Preview)

	// Orders (Customer)
	mux.Handle("GET /api/v1/orders", protected(rt.Tracking.ListMyOrders))
	mux.Handle("GET /api/v1/orders/{id}/progress", protected(rt.Tracking.GetOrderProgress))

	// Admin
	mux.Handle("DELETE /api/v1/admin/orders/{id}/cache", adminOnly(rt.Tracking.InvalidateOrder))

	// Health Check
	mux.Handle("GET /api/v1/health", rt.Health)
	mux.Handle("GET /health", rt.Health) // Root health check for load balancers

	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}
}
