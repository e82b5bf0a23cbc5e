package middlewares

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/harshit1711/Bakery-Management/internal/logs"
	"github.com/harshit1711/Bakery-Management/internal/web"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

const (
	AnonymousClient = iota
	AuthenticatedClient
)

type RateLimitConfig struct {
	Rate  rate.Limit
	Burst int
}

type rateAllower interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimiterMiddleware throttles per customer id once authenticated and per
// client IP before that. Disabled instances pass every request through.
type RateLimiterMiddleware struct {
	logger     logs.Logger
	rateLimits map[int]RateLimitConfig
	limiter    rateAllower
	isEnabled  bool
}

func NewRateLimiterMiddleware(logger logs.Logger, rateLimits map[int]RateLimitConfig, limiter *redis_rate.Limiter, isEnabled bool) *RateLimiterMiddleware {
	rl := &RateLimiterMiddleware{
		logger:     logger,
		rateLimits: rateLimits,
		isEnabled:  isEnabled,
	}
	if limiter != nil {
		rl.limiter = limiter
	}
	return rl
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.isEnabled {
			next.ServeHTTP(w, r)
			return
		}

		key, isAuthenticated, err := rl.clientKey(r)
		if err != nil {
			rl.logger.Error("could not parse IP from remote address", "error", err)
			web.RespondWithError(w, rl.logger, r, http.StatusInternalServerError, "Internal Server Error", "Could not process request.")
			return
		}

		rlConfig := rl.rateLimits[AnonymousClient]
		if isAuthenticated {
			rlConfig = rl.rateLimits[AuthenticatedClient]
		}

		res, err := rl.limiter.Allow(r.Context(), key, redis_rate.Limit{
			Rate:   int(rlConfig.Rate),
			Period: time.Second,
			Burst:  rlConfig.Burst,
		})
		if err != nil {
			rl.logger.Error("could not check rate limit", "error", err)
			web.RespondWithError(w, rl.logger, r, http.StatusInternalServerError, "Internal Server Error", "Could not process request.")
			return
		}

		if res.Allowed == 0 {
			web.RespondWithError(w, rl.logger, r, http.StatusTooManyRequests, "Too Many Requests", "You have exceeded the request limit.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientKey prefers the authenticated customer id; unauthenticated requests
// are keyed by the caller's IP.
func (rl *RateLimiterMiddleware) clientKey(r *http.Request) (string, bool, error) {
	if claims, ok := GetCustomerClaims(r); ok {
		return "customer:" + claims.Subject, true, nil
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", false, err
	}
	return "ip:" + ip, false, nil
}
