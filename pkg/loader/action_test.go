package loader

import (
	"testing"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mirrorChainDef() Def {
	return Def{
		Name:        "MirrorChain",
		DisplayName: "Mirror Chain",
		Attrs: schema.Schema{
			{Name: "axis", Type: schema.KindOption, Options: []string{"x", "y", "z"}},
			{Name: "behavior", Type: schema.KindBool, Default: true},
			{Name: "targets", Type: schema.KindNodeList, Optional: true},
		},
	}
}

func TestDeclaredAction_DefaultsApplied(t *testing.T) {
	a := NewDeclaredAction(mirrorChainDef(), nil)

	behavior, ok := a.Value("behavior")
	require.True(t, ok)
	assert.Equal(t, true, behavior)

	axis, ok := a.Value("axis")
	require.True(t, ok)
	assert.Equal(t, 0, axis)
}

func TestDeclaredAction_SetValue(t *testing.T) {
	a := NewDeclaredAction(mirrorChainDef(), nil)

	require.NoError(t, a.SetValue("axis", 1))
	assert.Error(t, a.SetValue("axis", 7), "out of option range")
	assert.Error(t, a.SetValue("unknown", 1), "undeclared attribute")

	axis, _ := a.Value("axis")
	assert.Equal(t, 1, axis)
}

func TestDeclaredAction_RoundTrip(t *testing.T) {
	reg := blueprint.NewRegistry()
	def := mirrorChainDef()
	require.NoError(t, reg.Register(func() blueprint.Item { return NewDeclaredAction(def, nil) }))

	a := NewDeclaredAction(def, nil)
	require.NoError(t, a.SetValue("axis", 2))
	require.NoError(t, a.SetValue("targets", []string{"arm_l"}))

	restored, err := reg.Create(a.Serialize())
	require.NoError(t, err)

	assert.Equal(t, a.Serialize(), restored.Serialize())
}

func TestDeclaredAction_DeserializeValidates(t *testing.T) {
	a := NewDeclaredAction(mirrorChainDef(), nil)

	err := a.Deserialize(blueprint.NewRegistry(), map[string]any{
		"type": "MirrorChain",
		"axis": "sideways",
	})
	require.Error(t, err)

	// Prior values survive a failed load.
	axis, _ := a.Value("axis")
	assert.Equal(t, 0, axis)
}

func TestDeclaredAction_DeserializeKeepsExtras(t *testing.T) {
	a := NewDeclaredAction(mirrorChainDef(), nil)

	require.NoError(t, a.Deserialize(blueprint.NewRegistry(), map[string]any{
		"type":     "MirrorChain",
		"axis":     1,
		"hostNote": "left side only",
	}))

	extra, ok := a.Value("hostNote")
	require.True(t, ok)
	assert.Equal(t, "left side only", extra)
}

func TestDeclaredAction_TypeMismatch(t *testing.T) {
	a := NewDeclaredAction(mirrorChainDef(), nil)

	err := a.Deserialize(blueprint.NewRegistry(), map[string]any{"type": "group"})

	var mismatch *blueprint.TypeMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestDecodeAttrs(t *testing.T) {
	type config struct {
		Axis     int      `mapstructure:"axis"`
		Behavior bool     `mapstructure:"behavior"`
		Targets  []string `mapstructure:"targets"`
	}

	values := map[string]any{
		"axis":     float64(2), // JSON numbers decode as float64
		"behavior": true,
		"targets":  []any{"arm_l", "arm_r"},
	}

	var cfg config
	require.NoError(t, DecodeAttrs(values, &cfg))
	assert.Equal(t, 2, cfg.Axis)
	assert.True(t, cfg.Behavior)
	assert.Equal(t, []string{"arm_l", "arm_r"}, cfg.Targets)
}
