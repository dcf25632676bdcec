// Package progress derives the customer-facing step list of an order from
// its status and production stage.
package progress

import (
	"slices"

	"arena-portal-backend/internal/domain"
)

// Fixed positions in the pipeline.
const (
	OrderStepIndex      = 0
	ApprovalStepIndex   = 1
	ProductionStepIndex = 2
	ShipmentStepIndex   = 3
	DeliveryStepIndex   = 4

	// NoSubStep is returned when the stage matches no production sub-step.
	NoSubStep = -1
)

type subStepDef struct {
	id     domain.SubStepID
	stages []domain.OrderStage
}

type stepDef struct {
	id       domain.StepID
	statuses []domain.OrderStatus
	subSteps []subStepDef
}

// pipeline is built once and never mutated. Status sets are disjoint.
// Processando is intentionally absent: it is placed by its stage.
var pipeline = [...]stepDef{
	{
		id:       domain.StepPedido,
		statuses: []domain.OrderStatus{domain.StatusPendente, domain.StatusAguardandoPagamento},
	},
	{
		id:       domain.StepAprovacao,
		statuses: []domain.OrderStatus{domain.StatusEmAndamento, domain.StatusAguardandoAprovacao, domain.StatusArteOK},
	},
	{
		id:       domain.StepProducao,
		statuses: []domain.OrderStatus{domain.StatusEmProducao},
		subSteps: []subStepDef{
			{id: domain.SubStepDesign, stages: []domain.OrderStage{domain.StageDesign}},
			{id: domain.SubStepImpressao, stages: []domain.OrderStage{domain.StageImpressao}},
			{id: domain.SubStepSublimacao, stages: []domain.OrderStage{domain.StageSublimacao}},
			{id: domain.SubStepCorte, stages: []domain.OrderStage{domain.StageCorte}},
			{id: domain.SubStepCostura, stages: []domain.OrderStage{domain.StageCostura}},
			{id: domain.SubStepConferencia, stages: []domain.OrderStage{domain.StageConferencia}},
		},
	},
	{
		id:       domain.StepExpedicao,
		statuses: []domain.OrderStatus{domain.StatusExpedicao, domain.StatusEmSeparacao, domain.StatusSeparado, domain.StatusEmbalado},
	},
	{
		id:       domain.StepEntrega,
		statuses: []domain.OrderStatus{domain.StatusEmEntrega, domain.StatusEnviado, domain.StatusRetirada, domain.StatusEntregue},
	},
}

// Resolve computes the progress of an order. Unknown status or stage values
// never fail: the order is shown at its earliest plausible step.
func Resolve(status domain.OrderStatus, stage domain.OrderStage) domain.Progress {
	current, resolvedBy := resolveStepIndex(status, stage)
	subIndex := ResolveSubStepIndex(stage)

	p := domain.Progress{
		Status:      status,
		Stage:       stage,
		Steps:       make([]domain.StepProgress, len(pipeline)),
		CurrentStep: pipeline[current].id,
		ResolvedBy:  resolvedBy,
		Delivered:   status == domain.StatusEntregue,
	}

	for i, def := range pipeline {
		state := stateAt(i, current)
		step := domain.StepProgress{
			Step:  def.id,
			Label: StepLabel(def.id),
			State: state,
		}

		// Sub-steps are exposed only for Produção, and never while it is pending.
		if len(def.subSteps) > 0 && state != domain.StatePending {
			step.SubSteps = make([]domain.SubStepProgress, len(def.subSteps))
			for j, sub := range def.subSteps {
				subState := domain.StateCompleted
				if state == domain.StateActive {
					subState = subStateAt(j, subIndex)
				}
				step.SubSteps[j] = domain.SubStepProgress{
					SubStep: sub.id,
					Label:   SubStepLabel(sub.id),
					State:   subState,
				}
			}
		}

		p.Steps[i] = step
	}

	if current == ProductionStepIndex && subIndex != NoSubStep {
		id := pipeline[ProductionStepIndex].subSteps[subIndex].id
		p.CurrentSubStep = &id
	}

	return p
}

// ResolveStepIndex returns the position of the current main step.
func ResolveStepIndex(status domain.OrderStatus, stage domain.OrderStage) int {
	i, _ := resolveStepIndex(status, stage)
	return i
}

func resolveStepIndex(status domain.OrderStatus, stage domain.OrderStage) (int, domain.Resolution) {
	for i, def := range pipeline {
		if slices.Contains(def.statuses, status) {
			return i, domain.ResolvedByStatus
		}
	}

	if stage != "" {
		if stage == domain.StageExpedicao {
			return ShipmentStepIndex, domain.ResolvedByStage
		}
		if slices.Contains(domain.ProductionStages, stage) {
			return ProductionStepIndex, domain.ResolvedByStage
		}
	}

	return OrderStepIndex, domain.ResolvedByDefault
}

// ResolveSubStepIndex returns the position of the production sub-step
// matching stage, or NoSubStep.
func ResolveSubStepIndex(stage domain.OrderStage) int {
	for j, sub := range pipeline[ProductionStepIndex].subSteps {
		if slices.Contains(sub.stages, stage) {
			return j
		}
	}
	return NoSubStep
}

// StepOf returns the step that declares status, if any.
func StepOf(status domain.OrderStatus) (domain.StepID, bool) {
	for _, def := range pipeline {
		if slices.Contains(def.statuses, status) {
			return def.id, true
		}
	}
	return "", false
}

// StatusesOf returns a copy of the statuses declared by a step.
func StatusesOf(id domain.StepID) []domain.OrderStatus {
	for _, def := range pipeline {
		if def.id == id {
			return slices.Clone(def.statuses)
		}
	}
	return nil
}

func stateAt(i, current int) domain.StepState {
	switch {
	case i < current:
		return domain.StateCompleted
	case i > current:
		return domain.StatePending
	default:
		return domain.StateActive
	}
}

// subStateAt treats NoSubStep as "nothing started yet".
func subStateAt(j, current int) domain.StepState {
	if current == NoSubStep {
		return domain.StatePending
	}
	return stateAt(j, current)
}
