package progress

import "arena-portal-backend/internal/domain"

// Appearance is how a widget draws a step. Icon names follow the portal's
// icon set; colors are hex.
type Appearance struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Lookups are keyed on identity so changing display copy never changes
// which icon a step gets.
var (
	stepLabels = map[domain.StepID]string{
		domain.StepPedido:    "Pedido",
		domain.StepAprovacao: "Aprovação",
		domain.StepProducao:  "Produção",
		domain.StepExpedicao: "Expedição",
		domain.StepEntrega:   "Entrega",
	}

	subStepLabels = map[domain.SubStepID]string{
		domain.SubStepDesign:      "Design",
		domain.SubStepImpressao:   "Impressão",
		domain.SubStepSublimacao:  "Sublimação",
		domain.SubStepCorte:       "Corte",
		domain.SubStepCostura:     "Costura",
		domain.SubStepConferencia: "Conferência",
	}

	stepAppearances = map[domain.StepID]Appearance{
		domain.StepPedido:    {Icon: "shopping-cart", Color: "#3B82F6"},
		domain.StepAprovacao: {Icon: "file-check", Color: "#8B5CF6"},
		domain.StepProducao:  {Icon: "tools", Color: "#F59E0B"},
		domain.StepExpedicao: {Icon: "package", Color: "#06B6D4"},
		domain.StepEntrega:   {Icon: "truck-delivery", Color: "#22C55E"},
	}

	subStepAppearances = map[domain.SubStepID]Appearance{
		domain.SubStepDesign:      {Icon: "palette", Color: "#EC4899"},
		domain.SubStepImpressao:   {Icon: "printer", Color: "#6366F1"},
		domain.SubStepSublimacao:  {Icon: "flame", Color: "#EF4444"},
		domain.SubStepCorte:       {Icon: "scissors", Color: "#F97316"},
		domain.SubStepCostura:     {Icon: "needle-thread", Color: "#14B8A6"},
		domain.SubStepConferencia: {Icon: "checklist", Color: "#84CC16"},
	}

	stateColors = map[domain.StepState]string{
		domain.StateCompleted: "#22C55E",
		domain.StateActive:    "#7C3AED",
		domain.StatePending:   "#6B7280",
	}
)

var fallbackAppearance = Appearance{Icon: "circle", Color: "#6B7280"}

func StepLabel(id domain.StepID) string {
	if l, ok := stepLabels[id]; ok {
		return l
	}
	return string(id)
}

func SubStepLabel(id domain.SubStepID) string {
	if l, ok := subStepLabels[id]; ok {
		return l
	}
	return string(id)
}

func StepAppearance(id domain.StepID) Appearance {
	if a, ok := stepAppearances[id]; ok {
		return a
	}
	return fallbackAppearance
}

func SubStepAppearance(id domain.SubStepID) Appearance {
	if a, ok := subStepAppearances[id]; ok {
		return a
	}
	return fallbackAppearance
}

// StateColor is the accent used for a step in the given state.
func StateColor(state domain.StepState) string {
	if c, ok := stateColors[state]; ok {
		return c
	}
	return fallbackAppearance.Color
}

// StepInfo describes a step for the enums endpoint.
type StepInfo struct {
	ID         domain.StepID        `json:"id"`
	Label      string               `json:"label"`
	Appearance Appearance           `json:"appearance"`
	Statuses   []domain.OrderStatus `json:"statuses"`
	SubSteps   []SubStepInfo        `json:"subSteps,omitempty"`
}

type SubStepInfo struct {
	ID         domain.SubStepID    `json:"id"`
	Label      string              `json:"label"`
	Appearance Appearance          `json:"appearance"`
	Stages     []domain.OrderStage `json:"stages"`
}

// Catalog lists the pipeline in display order.
func Catalog() []StepInfo {
	out := make([]StepInfo, 0, len(pipeline))
	for _, def := range pipeline {
		info := StepInfo{
			ID:         def.id,
			Label:      StepLabel(def.id),
			Appearance: StepAppearance(def.id),
			Statuses:   append([]domain.OrderStatus{}, def.statuses...),
		}
		for _, sub := range def.subSteps {
			info.SubSteps = append(info.SubSteps, SubStepInfo{
				ID:         sub.id,
				Label:      SubStepLabel(sub.id),
				Appearance: SubStepAppearance(sub.id),
				Stages:     append([]domain.OrderStage{}, sub.stages...),
			})
		}
		out = append(out, info)
	}
	return out
}
