package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arena-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of pgxpool.Pool / pgx.Tx the repository needs.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const orderColumns = `id::text, client_id::text, COALESCE(title, ''), status, stage, updated_at`

const getOrderByID = `SELECT ` + orderColumns + ` FROM orders WHERE id::text = $1`

const listOrdersByClient = `SELECT ` + orderColumns + ` FROM orders WHERE client_id::text = $1 ORDER BY updated_at DESC`

type orderRepository struct {
	db DBTX
}

// NewOrderRepository reads orders straight from the ERP database.
func NewOrderRepository(db DBTX) domain.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, getOrderByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}

func (r *orderRepository) GetByClientID(ctx context.Context, clientID string) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, listOrdersByClient, clientID)
	if err != nil {
		return nil, fmt.Errorf("list orders for client %s: %w", clientID, err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o         domain.Order
		status    string
		stage     *string
		updatedAt time.Time
	)
	if err := row.Scan(&o.ID, &o.ClientID, &o.Title, &status, &stage, &updatedAt); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	if stage != nil {
		o.Stage = domain.OrderStage(*stage)
	}
	o.UpdatedAt = updatedAt
	return &o, nil
}
