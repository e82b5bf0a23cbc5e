package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/harshit1711/Bakery-Management/internal/web"

	"github.com/alexedwards/argon2id"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Customer CustomerResponse `json:"user"`
	Token    string           `json:"token"`
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, r, http.StatusRequestTimeout, requestTimeoutTitleMsg, web.ReqCancelledMsg)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, err.Error())
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)

	customer, err := h.store.GetCustomerByUsername(ctx, req.Username)
	if err != nil {
		h.logger.Warn("login for unknown customer", "username", req.Username)
		web.RespondWithError(w, h.logger, r, http.StatusUnauthorized, "Authorization Failed", "invalid username or password")
		return
	}

	match, err := argon2id.ComparePasswordAndHash(req.Password, customer.Password)
	if err != nil || !match {
		h.logger.Warn("password mismatch", "error", err, "username", req.Username)
		web.RespondWithError(w, h.logger, r, http.StatusUnauthorized, "Authorization Failed", "invalid username or password")
		return
	}

	token, err := h.jwtManager.GenerateToken(customer.ID.String(), customer.Username)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err)
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to generate authentication token.")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, LoginResponse{
		Customer: CustomerResponse{
			ID:       customer.ID.String(),
			Username: customer.Username,
		},
		Token: token,
	})
}
