package domain

import (
	"context"
	"time"
)

// Order is the slice of the ERP order record the portal tracks.
type Order struct {
	ID        string      `json:"id"`
	ClientID  string      `json:"clientId"`
	Title     string      `json:"title"`
	Status    OrderStatus `json:"status"`
	Stage     OrderStage  `json:"stage,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// OrderProgress pairs an order with its resolved progress.
type OrderProgress struct {
	Order    Order    `json:"order"`
	Progress Progress `json:"progress"`
}

// --- Interfaces ---

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByClientID(ctx context.Context, clientID string) ([]Order, error)
}
