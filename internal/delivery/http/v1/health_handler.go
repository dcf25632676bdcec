package v1

import (
	"net/http"

	"arena-portal-backend/pkg/cache"
	"arena-portal-backend/pkg/utils"
)

type HealthHandler struct {
	cache  cache.CacheService
	source string
}

func NewHealthHandler(cache cache.CacheService, source string) *HealthHandler {
	return &HealthHandler{cache: cache, source: source}
}

// GET /health, /api/v1/health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"orderSource": h.source,
		"cacheItems":  h.cache.ItemCount(),
	})
}
