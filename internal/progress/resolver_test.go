package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena-portal-backend/internal/domain"
)

func states(p domain.Progress) []domain.StepState {
	out := make([]domain.StepState, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.State
	}
	return out
}

func subStates(p domain.Progress) []domain.StepState {
	subs := p.Steps[ProductionStepIndex].SubSteps
	out := make([]domain.StepState, len(subs))
	for i, s := range subs {
		out[i] = s.State
	}
	return out
}

const (
	done = domain.StateCompleted
	curr = domain.StateActive
	todo = domain.StatePending
)

func TestResolve_DeclaredStatusesWithoutSubSteps(t *testing.T) {
	t.Parallel()

	for _, idx := range []int{OrderStepIndex, ApprovalStepIndex, ShipmentStepIndex, DeliveryStepIndex} {
		id := pipeline[idx].id
		for _, status := range StatusesOf(id) {
			t.Run(string(status), func(t *testing.T) {
				got := Resolve(status, "")

				require.Len(t, got.Steps, 5)
				for i, step := range got.Steps {
					switch {
					case i < idx:
						assert.Equal(t, done, step.State, "step %s", step.Step)
					case i > idx:
						assert.Equal(t, todo, step.State, "step %s", step.Step)
					default:
						assert.Equal(t, curr, step.State, "step %s", step.Step)
					}
					if step.Step == domain.StepProducao && idx < ProductionStepIndex {
						assert.Empty(t, step.SubSteps)
					}
				}
				assert.Equal(t, id, got.CurrentStep)
				assert.Equal(t, domain.ResolvedByStatus, got.ResolvedBy)
				assert.Nil(t, got.CurrentSubStep)
			})
		}
	}
}

func TestResolve_ProductionScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    domain.OrderStatus
		stage     domain.OrderStage
		wantSteps []domain.StepState
		wantSubs  []domain.StepState
		wantSub   domain.SubStepID
	}{
		{
			name:      "processing in design",
			status:    domain.StatusProcessando,
			stage:     domain.StageDesign,
			wantSteps: []domain.StepState{done, done, curr, todo, todo},
			wantSubs:  []domain.StepState{curr, todo, todo, todo, todo, todo},
			wantSub:   domain.SubStepDesign,
		},
		{
			name:      "processing in sewing",
			status:    domain.StatusProcessando,
			stage:     domain.StageCostura,
			wantSteps: []domain.StepState{done, done, curr, todo, todo},
			wantSubs:  []domain.StepState{done, done, done, done, curr, todo},
			wantSub:   domain.SubStepCostura,
		},
		{
			name:      "processing in final check",
			status:    domain.StatusProcessando,
			stage:     domain.StageConferencia,
			wantSteps: []domain.StepState{done, done, curr, todo, todo},
			wantSubs:  []domain.StepState{done, done, done, done, done, curr},
			wantSub:   domain.SubStepConferencia,
		},
		{
			name:      "in production status with stage",
			status:    domain.StatusEmProducao,
			stage:     domain.StageSublimacao,
			wantSteps: []domain.StepState{done, done, curr, todo, todo},
			wantSubs:  []domain.StepState{done, done, curr, todo, todo, todo},
			wantSub:   domain.SubStepSublimacao,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.status, tt.stage)

			assert.Equal(t, tt.wantSteps, states(got))
			assert.Equal(t, tt.wantSubs, subStates(got))
			require.NotNil(t, got.CurrentSubStep)
			assert.Equal(t, tt.wantSub, *got.CurrentSubStep)
			assert.Equal(t, domain.StepProducao, got.CurrentStep)
		})
	}
}

func TestResolve_ProductionWithoutStageShowsAllSubStepsPending(t *testing.T) {
	got := Resolve(domain.StatusEmProducao, "")

	assert.Equal(t, []domain.StepState{done, done, curr, todo, todo}, states(got))
	assert.Equal(t, []domain.StepState{todo, todo, todo, todo, todo, todo}, subStates(got))
	assert.Nil(t, got.CurrentSubStep)
}

func TestResolve_EmptyInputDefaultsToFirstStep(t *testing.T) {
	got := Resolve("", "")

	assert.Equal(t, []domain.StepState{curr, todo, todo, todo, todo}, states(got))
	assert.Equal(t, domain.StepPedido, got.CurrentStep)
	assert.Equal(t, domain.ResolvedByDefault, got.ResolvedBy)
	assert.Empty(t, got.Steps[ProductionStepIndex].SubSteps)
}

func TestResolve_UnknownValuesDegradeGracefully(t *testing.T) {
	tests := []struct {
		name   string
		status domain.OrderStatus
		stage  domain.OrderStage
	}{
		{name: "unknown status", status: "Cancelado"},
		{name: "unknown stage", status: "Cancelado", stage: "Bordado"},
		{name: "processing without stage", status: domain.StatusProcessando},
		{name: "case mismatch", status: "pendente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.status, tt.stage)
			assert.Equal(t, []domain.StepState{curr, todo, todo, todo, todo}, states(got))
			assert.Equal(t, domain.ResolvedByDefault, got.ResolvedBy)
		})
	}
}

func TestResolve_ShipmentStageFallback(t *testing.T) {
	got := Resolve(domain.StatusProcessando, domain.StageExpedicao)

	assert.Equal(t, ShipmentStepIndex, ResolveStepIndex(domain.StatusProcessando, domain.StageExpedicao))
	assert.Equal(t, []domain.StepState{done, done, done, curr, todo}, states(got))
	assert.Equal(t, domain.StepExpedicao, got.CurrentStep)
	assert.Equal(t, domain.ResolvedByStage, got.ResolvedBy)

	// Produção is completed, so every sub-step is completed.
	assert.Equal(t, []domain.StepState{done, done, done, done, done, done}, subStates(got))
	assert.Nil(t, got.CurrentSubStep)
}

func TestResolve_StatusWinsOverStage(t *testing.T) {
	got := Resolve(domain.StatusArteOK, domain.StageCorte)

	assert.Equal(t, domain.StepAprovacao, got.CurrentStep)
	assert.Empty(t, got.Steps[ProductionStepIndex].SubSteps)
	assert.Nil(t, got.CurrentSubStep)
}

func TestResolve_DeliveredIsActiveTerminalStep(t *testing.T) {
	got := Resolve(domain.StatusEntregue, "")

	assert.Equal(t, []domain.StepState{done, done, done, done, curr}, states(got))
	assert.True(t, got.Delivered)
	assert.Equal(t, []domain.StepState{done, done, done, done, done, done}, subStates(got))

	assert.False(t, Resolve(domain.StatusEmEntrega, "").Delivered)
}

func TestResolve_Idempotent(t *testing.T) {
	first := Resolve(domain.StatusProcessando, domain.StageCorte)
	second := Resolve(domain.StatusProcessando, domain.StageCorte)

	assert.Equal(t, first, second)

	// Outputs do not share backing arrays.
	first.Steps[0].State = todo
	assert.Equal(t, done, second.Steps[0].State)
}

func TestResolveSubStepIndex(t *testing.T) {
	for i, stage := range domain.ProductionStages {
		assert.Equal(t, i, ResolveSubStepIndex(stage), string(stage))
	}
	assert.Equal(t, NoSubStep, ResolveSubStepIndex(domain.StageExpedicao))
	assert.Equal(t, NoSubStep, ResolveSubStepIndex(""))
}

func TestStatusSetsAreDisjoint(t *testing.T) {
	seen := map[domain.OrderStatus]domain.StepID{}
	for _, def := range pipeline {
		for _, s := range def.statuses {
			prev, dup := seen[s]
			assert.False(t, dup, "status %q declared by %s and %s", s, prev, def.id)
			seen[s] = def.id
		}
	}
}

func TestStepOf(t *testing.T) {
	id, ok := StepOf(domain.StatusEmSeparacao)
	assert.True(t, ok)
	assert.Equal(t, domain.StepExpedicao, id)

	_, ok = StepOf(domain.StatusProcessando)
	assert.False(t, ok)
}
