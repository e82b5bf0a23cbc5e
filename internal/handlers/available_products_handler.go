package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/harshit1711/Bakery-Management/internal/repository"
	"github.com/harshit1711/Bakery-Management/internal/web"

	"github.com/redis/go-redis/v9"
)

const (
	availableProductsCacheKey = "bakery:available-products"
	redisContextTimeout       = 2 * time.Second
	availableProductsCacheTTL = 5 * time.Minute
)

func (h *Handler) ListAvailableProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !web.CheckContext(ctx, h.logger) {
		web.RespondWithError(w, h.logger, r, http.StatusRequestTimeout, requestTimeoutTitleMsg, web.ReqCancelledMsg)
		return
	}

	cached, err := h.checkAvailableProductsCache(ctx)
	if err != nil {
		h.logger.Error("failed to check available products cache", "error", err)
	} else if cached != nil {
		web.RespondWithJSON(w, h.logger, http.StatusOK, cached)
		return
	}

	items, err := h.store.ListAvailableBakeryItems(ctx)
	if err != nil {
		h.logger.Error("failed to list available products", "error", err)
		web.RespondWithError(w, h.logger, r, http.StatusInternalServerError, internalServerErrorTitleMsg, "Failed to list available products.")
		return
	}

	h.cacheAvailableProducts(ctx, items)

	web.RespondWithJSON(w, h.logger, http.StatusOK, items)
}

func (h *Handler) checkAvailableProductsCache(ctx context.Context) ([]repository.BakeryItem, error) {
	if h.redisClient == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisContextTimeout)
	defer cancel()

	jsonResp, err := h.redisClient.Get(ctx, availableProductsCacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var items []repository.BakeryItem
	if err := json.Unmarshal([]byte(jsonResp), &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *Handler) cacheAvailableProducts(ctx context.Context, items []repository.BakeryItem) {
	if h.redisClient == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		h.logger.Error("failed to marshal available products for caching", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisContextTimeout)
	defer cancel()

	if err := h.redisClient.Set(ctx, availableProductsCacheKey, data, availableProductsCacheTTL).Err(); err != nil {
		h.logger.Error("failed to cache available products", "error", err)
	}
}

func (h *Handler) invalidateAvailableProductsCache(ctx context.Context) {
	if h.redisClient == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisContextTimeout)
	defer cancel()

	if err := h.redisClient.Del(ctx, availableProductsCacheKey).Err(); err != nil {
		h.logger.Error("failed to invalidate available products cache", "error", err)
	}
}
