package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/harshit1711/Bakery-Management/internal/repository"
	"github.com/harshit1711/Bakery-Management/internal/web"

	"github.com/jackc/pgx/v5/pgtype"
)

type BakeryItemRequest struct {
	Quantity     float64  `json:"quantity"`
	CostPrice    float64  `json:"cost_price"`
	SellingPrice float64  `json:"selling_price"`
	Ingredient   []string `json:"ingredient"`
}

type BakeryItemResponse struct {
	ID           string                  `json:"id"`
	Ingredient   []repository.Ingredient `json:"ingredient"`
	Quantity     pgtype.Numeric          `json:"quantity"`
	CostPrice    pgtype.Numeric          `json:"cost_price"`
	SellingPrice pgtype.Numeric          `json:"selling_price"`
	IsAvailable  bool                    `json:"is_available"`
}

func (h *Handler) CreateBakeryItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, r, http.StatusRequestTimeout, requestTimeoutTitleMsg, web.ReqCancelledMsg)
		return
	}

	var req BakeryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, err.Error())
		return
	}

	if req.Quantity < 0 {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, "quantity must not be negative")
		return
	}

	ingredientIDs := make([]pgtype.UUID, 0, len(req.Ingredient))
	for _, raw := range req.Ingredient {
		var id pgtype.UUID
		if err := id.Scan(raw); err != nil {
			web.RespondWithError(w, h.logger, r, http.StatusBadRequest, "Invalid Ingredient ID", fmt.Sprintf("invalid ingredient id %q", raw))
			return
		}
		ingredientIDs = append(ingredientIDs, id)
	}

	var params repository.CreateBakeryItemParams
	if err := params.Quantity.Scan(fmt.Sprintf("%.3f", req.Quantity)); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, "Invalid Quantity", err.Error())
		return
	}
	if err := params.CostPrice.Scan(fmt.Sprintf("%.3f", req.CostPrice)); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, "Invalid Cost Price", err.Error())
		return
	}
	if err := params.SellingPrice.Scan(fmt.Sprintf("%.3f", req.SellingPrice)); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, "Invalid Selling Price", err.Error())
		return
	}

	if _, err := h.store.CreateBakeryItemWithIngredients(ctx, params, ingredientIDs); err != nil {
		h.logger.Error("failed to create bakery item", "error", err)
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to create bakery item.")
		return
	}

	h.invalidateAvailableProductsCache(ctx)

	web.RespondWithJSON(w, h.logger, http.StatusCreated, "Bakery item created successfully")
}

func (h *Handler) ListBakeryItemsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, r, http.StatusRequestTimeout, requestTimeoutTitleMsg, web.ReqCancelledMsg)
		return
	}

	items, err := h.store.ListBakeryItems(ctx)
	if err != nil {
		h.logger.Error("failed to list bakery items", "error", err)
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to list bakery items.")
		return
	}

	itemIDs := make([]pgtype.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	ingredientsByItem := map[string][]repository.Ingredient{}
	if len(itemIDs) > 0 {
		rows, err := h.store.ListBakeryItemIngredients(ctx, itemIDs)
		if err != nil {
			h.logger.Error("failed to list bakery item ingredients", "error", err)
			web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to list bakery items.")
			return
		}
		for _, row := range rows {
			key := row.BakeryItemID.String()
			ingredientsByItem[key] = append(ingredientsByItem[key], repository.Ingredient{
				ID:          row.ID,
				Name:        row.Name,
				Flavour:     row.Flavour,
				Description: row.Description,
			})
		}
	}

	response := make([]BakeryItemResponse, 0, len(items))
	for _, item := range items {
		ingredients := ingredientsByItem[item.ID.String()]
		if ingredients == nil {
			ingredients = []repository.Ingredient{}
		}
		response = append(response, BakeryItemResponse{
			ID:           item.ID.String(),
			Ingredient:   ingredients,
			Quantity:     item.Quantity,
			CostPrice:    item.CostPrice,
			SellingPrice: item.SellingPrice,
			IsAvailable:  item.IsAvailable,
		})
	}

	web.RespondWithJSON(w, h.logger, http.StatusOK, response)
}
