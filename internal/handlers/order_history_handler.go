package handlers

import (
	"net/http"

	"github.com/harshit1711/Bakery-Management/internal/web"
)

func (h *Handler) OrderHistoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, r, http.StatusRequestTimeout, requestTimeoutTitleMsg, web.ReqCancelledMsg)
		return
	}

	customerID, ok := h.customerID(r)
	if !ok {
		web.RespondWithError(w, h.logger, r, http.StatusUnauthorized, unauthorizedTitleMsg, "Missing customer identity.")
		return
	}

	orderItems, err := h.store.ListOrderItemsByCustomer(ctx, customerID)
	if err != nil {
		h.logger.Error("failed to list order history", "error", err, "customerId", customerID.String())
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to list order history.")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, orderItems)
}
