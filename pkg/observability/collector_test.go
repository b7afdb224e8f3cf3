package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAction struct {
	name string
	fail error
}

func (a *stubAction) DisplayName() string       { return a.name }
func (a *stubAction) TypeName() string          { return a.name }
func (a *stubAction) Serialize() map[string]any { return map[string]any{"type": a.name} }
func (a *stubAction) Deserialize(reg *blueprint.Registry, data map[string]any) error {
	return blueprint.CheckDocType(a, data)
}
func (a *stubAction) Run(ctx context.Context) error { return a.fail }

func TestCollector_GathersResults(t *testing.T) {
	b := blueprint.New()
	require.NoError(t, b.RootGroup().AddChild(&stubAction{name: "first"}))
	require.NoError(t, b.RootGroup().AddChild(&stubAction{name: "second", fail: errors.New("boom")}))

	c := NewCollector()
	r := runner.New(nil)
	r.ContinueOnError = true
	r.Hooks = c.Hooks()

	err := r.Run(context.Background(), b)
	require.Error(t, err)

	report := c.Report()
	assert.Equal(t, 1, report.Groups)
	assert.Equal(t, 1, report.Failures())
	require.Len(t, report.Results, 2)
	assert.Equal(t, "first", report.Results[0].Type)
	assert.NoError(t, report.Results[0].Err)
	assert.Error(t, report.Results[1].Err)
	assert.Greater(t, report.Elapsed, report.Results[0].Elapsed)
}

func TestCollector_EmptyReport(t *testing.T) {
	report := NewCollector().Report()

	assert.Zero(t, report.Groups)
	assert.Empty(t, report.Results)
	assert.Zero(t, report.Elapsed)
	assert.Zero(t, report.Failures())
}
