package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlueprint_Defaults(t *testing.T) {
	b := New()

	assert.Equal(t, DefaultName, b.Name)
	assert.Equal(t, Version, b.Version)
	require.NotNil(t, b.RootGroup())
	assert.Zero(t, b.RootGroup().Len())
}

func TestBlueprint_SerializeScenario(t *testing.T) {
	b := New()
	b.Name = "rig_arm"
	b.Version = "1.0.0"
	b.RootGroup().SetDisplayName("Root")

	arm := NewGroup()
	arm.SetDisplayName("Arm")
	require.NoError(t, b.RootGroup().AddChild(arm))

	want := map[string]any{
		"name":    "rig_arm",
		"version": "1.0.0",
		"buildItems": map[string]any{
			"type":        "group",
			"displayName": "Root",
			"children": []any{
				map[string]any{
					"type":        "group",
					"displayName": "Arm",
					"children":    []any{},
				},
			},
		},
	}
	assert.Equal(t, want, b.Serialize())
}

func TestBlueprint_RoundTrip(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(func() Item { return newFakeAction("mirror") }))

	b := New()
	b.Name = "rig_arm"
	b.RootGroup().SetDisplayName("Root")

	arm := NewGroup()
	arm.SetDisplayName("Arm")
	require.NoError(t, arm.AddChild(newFakeAction("mirror")))
	require.NoError(t, b.RootGroup().AddChild(arm))

	restored, err := FromData(reg, b.Serialize())
	require.NoError(t, err)

	assert.Equal(t, b.Serialize(), restored.Serialize())
}

func TestBlueprint_DeserializeMissingKeys(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name string
		data map[string]any
	}{
		{"missing name", map[string]any{"version": "1.0.0", "buildItems": map[string]any{}}},
		{"missing version", map[string]any{"name": "x", "buildItems": map[string]any{}}},
		{"missing buildItems", map[string]any{"name": "x", "version": "1.0.0"}},
		{"buildItems not a mapping", map[string]any{"name": "x", "version": "1.0.0", "buildItems": "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var schemaErr *SchemaError
			_, err := FromData(reg, tt.data)
			assert.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestBlueprint_DeserializeNonGroupRoot(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(func() Item { return newFakeAction("mirror") }))

	data := map[string]any{
		"name":       "broken",
		"version":    "1.0.0",
		"buildItems": map[string]any{"type": "mirror"},
	}

	var schemaErr *SchemaError
	_, err := FromData(reg, data)
	assert.ErrorAs(t, err, &schemaErr)
}

func TestBlueprint_DeserializeUnknownRootType(t *testing.T) {
	data := map[string]any{
		"name":       "broken",
		"version":    "1.0.0",
		"buildItems": map[string]any{"type": "ghost"},
	}

	var schemaErr *SchemaError
	_, err := FromData(NewRegistry(), data)
	assert.ErrorAs(t, err, &schemaErr)
}

func TestBlueprint_DeserializeFailureLeavesBlueprintUsable(t *testing.T) {
	b := New()
	b.Name = "keepMe"
	require.NoError(t, b.RootGroup().AddChild(NewGroup()))

	err := b.Deserialize(NewRegistry(), map[string]any{"name": "x"})
	require.Error(t, err)

	// A failed load must not tear down the existing tree.
	assert.Equal(t, "keepMe", b.Name)
	assert.Equal(t, 1, b.RootGroup().Len())
}

func TestBlueprint_VersionCarriedThrough(t *testing.T) {
	data := map[string]any{
		"name":    "old",
		"version": "0.3.7",
		"buildItems": map[string]any{
			"type":        "group",
			"displayName": "Root",
			"children":    []any{},
		},
	}

	b, err := FromData(NewRegistry(), data)
	require.NoError(t, err)

	assert.Equal(t, "0.3.7", b.Version, "version is carried losslessly, never migrated")
}
