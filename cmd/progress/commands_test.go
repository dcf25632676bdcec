package main

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arena-portal-backend/internal/domain"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestResolveCommand_JSON(t *testing.T) {
	out := run(t, "resolve", "--status", " Processando ", "--stage", "Sublimação", "--json")

	var p domain.Progress
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, domain.StepProducao, p.CurrentStep)
	require.NotNil(t, p.CurrentSubStep)
	assert.Equal(t, domain.SubStepSublimacao, *p.CurrentSubStep)
	assert.Equal(t, domain.ResolvedByStage, p.ResolvedBy)
}

func TestResolveCommand_Stepper(t *testing.T) {
	out := run(t, "resolve", "--status", "Enviado")

	assert.Contains(t, out, "Entrega")
	assert.Contains(t, out, "resolved_by=status")
}

func TestStatusesCommand(t *testing.T) {
	out := run(t, "statuses")

	assert.Contains(t, out, "KIND")
	assert.Regexp(t, `status\s+Aguardando Pagamento\s+Pedido`, out)
	assert.Regexp(t, `status\s+Processando\s+-`, out)
	assert.Regexp(t, `stage\s+Costura\s+Produção`, out)
	assert.Regexp(t, `stage\s+Expedição\s+Expedição`, out)
}

func TestTrackCommand_RequiresOrderID(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"track"})
	assert.Error(t, cmd.Execute())
}
