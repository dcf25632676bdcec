package v1

import (
	"net/http"
	"strconv"
	"time"

	"arena-portal-backend/internal/domain"
	"arena-portal-backend/internal/progress"
	"arena-portal-backend/pkg/cache"
	"arena-portal-backend/pkg/utils"
)

type ConfigHandler struct {
	cache cache.CacheService
	ttl   time.Duration
}

func NewConfigHandler(cache cache.CacheService, ttl time.Duration) *ConfigHandler {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ConfigHandler{cache: cache, ttl: ttl}
}

// GET /api/v1/config/enums
func (h *ConfigHandler) GetEnums(w http.ResponseWriter, r *http.Request) {
	cacheKey := "system:config:enums"
	maxAge := strconv.Itoa(int(h.ttl.Seconds()))

	if val, found := h.cache.Get(cacheKey); found {
		utils.WriteCachedJSON(w, maxAge, val)
		return
	}

	response := map[string]interface{}{
		"steps":         progress.Catalog(),
		"orderStatuses": domain.OrderStatuses,
		"orderStages":   domain.OrderStages,
		"stateColors": map[domain.StepState]string{
			domain.StateCompleted: progress.StateColor(domain.StateCompleted),
			domain.StateActive:    progress.StateColor(domain.StateActive),
			domain.StatePending:   progress.StateColor(domain.StatePending),
		},
	}

	h.cache.Set(cacheKey, response, h.ttl)
	utils.WriteCachedJSON(w, maxAge, response)
}
