package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/harshit1711/Bakery-Management/internal/repository"
	"github.com/harshit1711/Bakery-Management/internal/web"

	"github.com/jackc/pgx/v5/pgtype"
)

type IngredientRequest struct {
	Name        string `json:"name"`
	Flavour     string `json:"flavour"`
	Description string `json:"description"`
}

func (h *Handler) AddIngredientsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, r, http.StatusRequestTimeout, requestTimeoutTitleMsg, web.ReqCancelledMsg)
		return
	}

	var req []IngredientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, err.Error())
		return
	}
	if len(req) == 0 {
		web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, "at least one ingredient is required")
		return
	}

	params := make([]repository.CreateIngredientParams, 0, len(req))
	for _, ingredient := range req {
		name := strings.TrimSpace(ingredient.Name)
		flavour := strings.TrimSpace(ingredient.Flavour)
		if name == "" || flavour == "" {
			web.RespondWithError(w, h.logger, r, http.StatusBadRequest, invalidRequestBodyTitleMsg, "ingredient name and flavour are required")
			return
		}
		params = append(params, repository.CreateIngredientParams{
			Name:        name,
			Flavour:     flavour,
			Description: pgtype.Text{String: ingredient.Description, Valid: true},
		})
	}

	if _, err := h.store.AddIngredients(ctx, params); err != nil {
		h.logger.Error("failed to add ingredients", "error", err)
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to add ingredients.")
		return
	}

	web.RespondWithJSON(w, h.logger, http.StatusCreated, "Ingredients added to bakery successfully")
}
