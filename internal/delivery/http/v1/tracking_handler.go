package v1

import (
	"errors"
	"net/http"
	"strings"

	"arena-portal-backend/internal/delivery/http/middleware"
	"arena-portal-backend/internal/domain"
	"arena-portal-backend/internal/usecase"
	"arena-portal-backend/pkg/logger"
	"arena-portal-backend/pkg/utils"
)

type TrackingHandler struct {
	trackingUC *usecase.TrackingUsecase
}

func NewTrackingHandler(uc *usecase.TrackingUsecase) *TrackingHandler {
	return &TrackingHandler{trackingUC: uc}
}

// GET /api/v1/orders
func (h *TrackingHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.trackingUC.ListMyOrders(r.Context(), user)
	if err != nil {
		writeTrackingError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  len(orders),
	})
}

// GET /api/v1/orders/{id}/progress
func (h *TrackingHandler) GetOrderProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	result, err := h.trackingUC.GetOrderProgress(r.Context(), user, id)
	if err != nil {
		writeTrackingError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result)
}

// GET /api/v1/progress?status=&stage=
func (h *TrackingHandler) Preview(w http.ResponseWriter, r *http.Request) {
	status := domain.OrderStatus(strings.TrimSpace(r.URL.Query().Get("status")))
	stage := domain.OrderStage(strings.TrimSpace(r.URL.Query().Get("stage")))

	utils.WriteJSON(w, http.StatusOK, h.trackingUC.Preview(status, stage))
}

// DELETE /api/v1/admin/orders/{id}/cache?clientId=
func (h *TrackingHandler) InvalidateOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	clientID := strings.TrimSpace(r.URL.Query().Get("clientId"))
	h.trackingUC.InvalidateOrder(id, clientID)

	l := logger.WithContext(r.Context())
	l.Info().Str("order_id", id).Str("client_id", clientID).Msg("Order cache invalidated")
	w.WriteHeader(http.StatusNoContent)
}

func writeTrackingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidOrderID):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		utils.WriteError(w, http.StatusBadGateway, domain.ErrUpstreamUnavailable.Error())
	default:
		l := logger.WithContext(r.Context())
		l.Error().Err(err).Str("path", r.URL.Path).Msg("Tracking request failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load order")
	}
}
