// Package tui renders order progress for terminals.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"arena-portal-backend/internal/domain"
)

// RenderProgress draws the stepper as a vertical list, sub-steps indented
// under Produção when they are exposed.
func RenderProgress(p domain.Progress) string {
	var b strings.Builder

	for _, step := range p.Steps {
		st := stateStyle(step.State)
		b.WriteString(st.Render(fmt.Sprintf("%s %s", glyph(step.State), step.Label)))
		if step.Step == p.CurrentStep && p.Delivered {
			b.WriteString(" " + styleDelivered.Render("(entregue)"))
		}
		b.WriteString("\n")

		for _, sub := range step.SubSteps {
			ss := stateStyle(sub.State)
			b.WriteString("    " + ss.Render(fmt.Sprintf("%s %s", glyph(sub.State), sub.Label)) + "\n")
		}
	}

	meta := fmt.Sprintf("status=%q stage=%q resolved_by=%s", p.Status, p.Stage, p.ResolvedBy)
	b.WriteString(styleMeta.Render(meta))

	return styleBox.Render(b.String())
}

// RenderOrder prefixes the stepper with the order header.
func RenderOrder(op domain.OrderProgress) string {
	title := op.Order.Title
	if title == "" {
		title = "Pedido"
	}
	header := styleTitle.Render(fmt.Sprintf("#%s %s", op.Order.ID, title))
	return lipgloss.JoinVertical(lipgloss.Left, header, RenderProgress(op.Progress))
}
