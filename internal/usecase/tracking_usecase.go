package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"arena-portal-backend/internal/domain"
	"arena-portal-backend/internal/progress"
	"arena-portal-backend/pkg/cache"
	"arena-portal-backend/pkg/logger"
)

type TrackingUsecase struct {
	orders   domain.OrderRepository
	cache    cache.CacheService
	recorder domain.ProgressRecorder
	orderTTL time.Duration
	timeout  time.Duration
}

// NewTrackingUsecase wires the order source. recorder may be nil.
func NewTrackingUsecase(orders domain.OrderRepository, cache cache.CacheService, recorder domain.ProgressRecorder, orderTTL, timeout time.Duration) *TrackingUsecase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TrackingUsecase{
		orders:   orders,
		cache:    cache,
		recorder: recorder,
		orderTTL: orderTTL,
		timeout:  timeout,
	}
}

// GetOrderProgress returns an order visible to user together with its progress.
// Orders owned by another client are reported as not found.
func (u *TrackingUsecase) GetOrderProgress(ctx context.Context, user *domain.User, orderID string) (*domain.OrderProgress, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domain.ErrInvalidOrderID
	}

	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !user.CanView(order) {
		l := logger.WithContext(ctx)
		l.Warn().
			Str("order_id", orderID).
			Str("client_id", clientIDOf(user)).
			Msg("Order requested by a client that does not own it")
		return nil, domain.ErrOrderNotFound
	}

	return u.track(*order), nil
}

// ListMyOrders returns every order of the caller's client, newest first as
// provided by the source.
func (u *TrackingUsecase) ListMyOrders(ctx context.Context, user *domain.User) ([]domain.OrderProgress, error) {
	clientID := clientIDOf(user)
	if clientID == "" {
		return []domain.OrderProgress{}, nil
	}

	key := cache.ClientOrdersKey(clientID)
	var orders []domain.Order
	if val, found := u.cache.Get(key); found {
		orders = val.([]domain.Order)
	} else {
		ctx, cancel := context.WithTimeout(ctx, u.timeout)
		defer cancel()

		fetched, err := u.orders.GetByClientID(ctx, clientID)
		if err != nil {
			return nil, err
		}
		orders = fetched
		u.cache.Set(key, orders, u.orderTTL)
	}

	out := make([]domain.OrderProgress, 0, len(orders))
	for _, o := range orders {
		out = append(out, *u.track(o))
	}
	return out, nil
}

// Preview resolves a status/stage pair without an order.
func (u *TrackingUsecase) Preview(status domain.OrderStatus, stage domain.OrderStage) domain.Progress {
	return progress.Resolve(status, stage)
}

// InvalidateOrder drops the cached order and the order list of its client.
// The client is taken from clientID, then from the cached order; when
// neither is known every cached client list is dropped.
func (u *TrackingUsecase) InvalidateOrder(orderID, clientID string) {
	key := cache.OrderKey(orderID)
	if clientID == "" {
		if val, found := u.cache.Get(key); found {
			if order, ok := val.(*domain.Order); ok {
				clientID = order.ClientID
			}
		}
	}
	u.cache.Delete(key)

	if clientID == "" {
		u.cache.DeletePrefix(cache.ClientOrdersPrefix)
		return
	}
	u.cache.Delete(cache.ClientOrdersKey(clientID))
}

func (u *TrackingUsecase) loadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	key := cache.OrderKey(orderID)
	if val, found := u.cache.Get(key); found {
		return val.(*domain.Order), nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrOrderNotFound) {
			l := logger.WithContext(ctx)
			l.Error().Err(err).Str("order_id", orderID).Msg("Failed to load order")
		}
		return nil, err
	}

	u.cache.Set(key, order, u.orderTTL)
	return order, nil
}

func (u *TrackingUsecase) track(order domain.Order) *domain.OrderProgress {
	p := progress.Resolve(order.Status, order.Stage)
	if u.recorder != nil {
		u.recorder.ObserveProgress(p)
	}
	return &domain.OrderProgress{Order: order, Progress: p}
}

func clientIDOf(user *domain.User) string {
	if user == nil {
		return ""
	}
	return user.ClientID
}
