package repository

import (
	"context"
	"fmt"

	"arena-portal-backend/config"
	"arena-portal-backend/internal/domain"
	"arena-portal-backend/internal/repository/orderapi"
	"arena-portal-backend/internal/repository/postgres"
)

// NewOrderRepository builds the order source selected by ORDER_SOURCE.
// The returned close func releases any pool and is never nil.
func NewOrderRepository(ctx context.Context, cfg *config.Config) (domain.OrderRepository, func(), error) {
	switch cfg.OrderSource {
	case config.OrderSourceAPI:
		client := orderapi.NewClient(orderapi.Config{
			BaseURL:           cfg.UpstreamAPIURL,
			Token:             cfg.UpstreamAPIToken,
			Timeout:           cfg.UpstreamTimeout,
			MaxRetries:        cfg.UpstreamMaxRetries,
			InitialBackoff:    cfg.UpstreamRetryBackoff,
			RequestsPerSecond: cfg.UpstreamRPS,
			Burst:             cfg.UpstreamBurst,
		})
		return client, func() {}, nil

	case config.OrderSourcePostgres:
		pool, err := postgres.NewPgxPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewOrderRepository(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown order source %q", cfg.OrderSource)
	}
}
