package handlers

import (
	"net/http"

	"github.com/harshit1711/Bakery-Management/internal/auth"
	"github.com/harshit1711/Bakery-Management/internal/logs"
	"github.com/harshit1711/Bakery-Management/internal/middlewares"
	"github.com/harshit1711/Bakery-Management/internal/repository"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
)

const (
	invalidRequestBodyTitleMsg  = "Invalid Request Body"
	requestTimeoutTitleMsg      = "Request Timeout"
	internalServerErrorTitleMsg = "Internal Server Error"
	unauthorizedTitleMsg        = "Unauthorized"
)

type Handler struct {
	store       repository.Store
	redisClient *redis.Client
	jwtManager  *auth.JWTManager
	logger      logs.Logger
}

// redisClient may be nil, which disables the availability cache.
func NewHandler(store repository.Store, redisClient *redis.Client, jwtManager *auth.JWTManager, logger logs.Logger) *Handler {
	return &Handler{
		store:       store,
		redisClient: redisClient,
		jwtManager:  jwtManager,
		logger:      logger,
	}
}

type CustomerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// customerID resolves the authenticated customer from the request claims.
func (h *Handler) customerID(r *http.Request) (pgtype.UUID, bool) {
	claims, ok := middlewares.GetCustomerClaims(r)
	if !ok {
		return pgtype.UUID{}, false
	}

	var id pgtype.UUID
	if err := id.Scan(claims.Subject); err != nil {
		h.logger.Warn("token subject is not a valid customer id", "subject", claims.Subject, "error", err)
		return pgtype.UUID{}, false
	}
	return id, true
}
