package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/harshit1711/Bakery-Management/internal/repository"
	"github.com/harshit1711/Bakery-Management/internal/web"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderLineRequest struct {
	Item     string `json:"item"`
	Quantity int32  `json:"quantity"`
}

func (h *Handler) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
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

	var req []OrderLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, err.Error())
		return
	}
	if len(req) == 0 {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, "at least one order line is required")
		return
	}

	lines := make([]repository.OrderLine, 0, len(req))
	for _, line := range req {
		var itemID pgtype.UUID
		if err := itemID.Scan(line.Item); err != nil {
			web.RespondWithError(w, h.logger, r, http.StatusBadRequest, "Invalid Item ID", fmt.Sprintf("invalid item id %q", line.Item))
			return
		}
		if line.Quantity <= 0 {
			web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, "order line quantity must be positive")
			return
		}
		lines = append(lines, repository.OrderLine{
			ItemID:   itemID,
			Quantity: line.Quantity,
		})
	}

	result, err := h.store.PlaceOrder(ctx, customerID, lines)
	if err != nil {
		if errors.Is(err, repository.ErrBakeryItemNotFound) {
			web.RespondWithError(w, h.logger, r, http.StatusBadRequest, "Item Not Found", "Item does not exist in the bakery")
			return
		}
		h.logger.Error("failed to place order", "error", err)
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to place order.")
		return
	}

	h.logger.Info("order placed",
		"orderId", result.Order.ID.String(),
		"customerId", customerID.String(),
		"items", result.ItemCount,
		"totalPayable", result.TotalPayable,
	)

	web.RespondWithJSON(w, h.logger, http.StatusCreated, fmt.Sprintf("Order placed, total payable amount: %v", result.TotalPayable))
}
