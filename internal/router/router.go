package router

import (
	"context"
	"net/http"
	"time"

	"github.com/harshit1711/Bakery-Management/internal/auth"
	"github.com/harshit1711/Bakery-Management/internal/handlers"
	"github.com/harshit1711/Bakery-Management/internal/logs"
	"github.com/harshit1711/Bakery-Management/internal/middlewares"

	"github.com/jackc/pgx/v5/pgxpool"
)

func New(db *pgxpool.Pool, h *handlers.Handler, jwtManager *auth.JWTManager, rateLimiter *middlewares.RateLimiterMiddleware, logger logs.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /api/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	authMw := middlewares.AuthMiddleware(jwtManager, logger)

	// Public routes are throttled per client IP; gated routes sit behind the
	// auth middleware so the limiter keys on the customer id instead.
	public := func(h http.HandlerFunc) http.Handler {
		return rateLimiter.Middleware(h)
	}
	gated := func(h http.HandlerFunc) http.Handler {
		return authMw(rateLimiter.Middleware(h))
	}

	mux.Handle("POST /register/{$}", public(h.RegisterHandler))
	mux.Handle("POST /login/{$}", public(h.LoginHandler))

	mux.Handle("GET /bakery-available-products/{$}", gated(h.ListAvailableProductsHandler))
	mux.Handle("POST /place-order/{$}", gated(h.PlaceOrderHandler))
	mux.Handle("GET /order-history/{$}", gated(h.OrderHistoryHandler))
	mux.Handle("POST /add-ingredients/{$}", gated(h.AddIngredientsHandler))
	mux.Handle("GET /bakery/{$}", gated(h.ListBakeryItemsHandler))
	mux.Handle("POST /bakery/{$}", gated(h.CreateBakeryItemHandler))
	mux.Handle("PATCH /orders/{id}/delivered/{$}", gated(h.MarkOrderDeliveredHandler))

	return mux
}
