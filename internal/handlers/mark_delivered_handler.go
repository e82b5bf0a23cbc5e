package handlers

import (
	"net/http"
	"strings"

	"github.com/harshit1711/Bakery-Management/internal/repository"
	"github.com/harshit1711/Bakery-Management/internal/web"

	"github.com/jackc/pgx/v5/pgtype"
)

func (h *Handler) MarkOrderDeliveredHandler(w http.ResponseWriter, r *http.Request) {
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

	rawID := strings.TrimSpace(r.PathValue("id"))
	var orderID pgtype.UUID
	if err := orderID.Scan(rawID); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, "Invalid Order ID", "invalid order id")
		return
	}

	// Customers may only mark their own orders; a foreign order looks the
	// same as a missing one.
	affected, err := h.store.MarkOrderDelivered(ctx, repository.MarkOrderDeliveredParams{
		ID:         orderID,
		CustomerID: customerID,
	})
	if err != nil {
		h.logger.Error("failed to mark order delivered", "error", err, "orderId", orderID.String())
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to mark order delivered.")
		return
	}
	if affected == 0 {
		web.RespondWithError(w, h.logger, r, http.StatusNotFound, "Order Not Found", "order not found")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, "Order marked as delivered")
}
