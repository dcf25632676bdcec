package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"arena-portal-backend/internal/domain"
	"arena-portal-backend/internal/progress"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.OrderStatus
		stage   domain.OrderStage
		want    []string
		notWant []string
	}{
		{
			name:    "production with sub-steps",
			status:  domain.StatusProcessando,
			stage:   domain.StageCorte,
			want:    []string{"Pedido", "Produção", "Corte", "Conferência", "●", "✔", "○"},
			notWant: []string{"(entregue)"},
		},
		{
			name:    "approval hides sub-steps",
			status:  domain.StatusArteOK,
			want:    []string{"Aprovação", "Entrega"},
			notWant: []string{"Costura"},
		},
		{
			name:   "delivered",
			status: domain.StatusEntregue,
			want:   []string{"Entrega", "(entregue)", "Costura"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderProgress(progress.Resolve(tt.status, tt.stage))
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderOrder(t *testing.T) {
	op := domain.OrderProgress{
		Order:    domain.Order{ID: "42", Status: domain.StatusPendente},
		Progress: progress.Resolve(domain.StatusPendente, ""),
	}

	out := RenderOrder(op)
	assert.True(t, strings.Contains(out, "#42 Pedido"))
	assert.Contains(t, out, "resolved_by=status")
}
