package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena-portal-backend/internal/domain"
)

type orderRow struct {
	id, clientID, title, status string
	stage                       *string
	updatedAt                   time.Time
}

func (o orderRow) scan(dest ...any) error {
	*dest[0].(*string) = o.id
	*dest[1].(*string) = o.clientID
	*dest[2].(*string) = o.title
	*dest[3].(*string) = o.status
	*dest[4].(**string) = o.stage
	*dest[5].(*time.Time) = o.updatedAt
	return nil
}

type fakeRow struct {
	row *orderRow
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return r.row.scan(dest...)
}

type fakeRows struct {
	rows []orderRow
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return r.rows[r.pos-1].scan(dest...)
}

type fakeDB struct {
	row      fakeRow
	rows     []orderRow
	lastSQL  string
	lastArgs []any
}

func (db *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.lastSQL, db.lastArgs = sql, args
	return &fakeRows{rows: db.rows}, nil
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.lastSQL, db.lastArgs = sql, args
	return db.row
}

func strPtr(s string) *string { return &s }

func TestOrderRepository_GetByID(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{row: &orderRow{
		id: "77", clientID: "c-1", title: "Kit Basquete", status: "Processando",
		stage: strPtr("Corte"), updatedAt: now,
	}}}

	order, err := NewOrderRepository(db).GetByID(context.Background(), "77")
	require.NoError(t, err)

	assert.Equal(t, getOrderByID, db.lastSQL)
	assert.Equal(t, []any{"77"}, db.lastArgs)
	assert.Equal(t, domain.StatusProcessando, order.Status)
	assert.Equal(t, domain.StageCorte, order.Stage)
	assert.Equal(t, now, order.UpdatedAt)
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

	_, err := NewOrderRepository(db).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepository_GetByID_DBError(t *testing.T) {
	boom := errors.New("connection reset")
	db := &fakeDB{row: fakeRow{err: boom}}

	_, err := NewOrderRepository(db).GetByID(context.Background(), "1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderRepository_GetByClientID(t *testing.T) {
	db := &fakeDB{rows: []orderRow{
		{id: "2", clientID: "c-1", status: "Entregue"},
		{id: "1", clientID: "c-1", status: "Em andamento"},
	}}

	orders, err := NewOrderRepository(db).GetByClientID(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, listOrdersByClient, db.lastSQL)
	require.Len(t, orders, 2)
	assert.Equal(t, "2", orders[0].ID)
	assert.Equal(t, domain.OrderStage(""), orders[0].Stage)
	assert.Equal(t, domain.StatusEmAndamento, orders[1].Status)
}

func TestOrderRepository_GetByClientID_Empty(t *testing.T) {
	orders, err := NewOrderRepository(&fakeDB{}).GetByClientID(context.Background(), "c-1")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
