package validator

import (
	"testing"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/loader"
	"github.com/dkealton/rigforge/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *blueprint.Registry {
	t.Helper()

	reg := blueprint.NewRegistry()
	def := loader.Def{
		Name: "MirrorChain",
		Attrs: schema.Schema{
			{Name: "axis", Type: schema.KindOption, Options: []string{"x", "y", "z"}},
		},
	}
	require.NoError(t, reg.Register(func() blueprint.Item {
		return loader.NewDeclaredAction(def, nil)
	}))
	return reg
}

func groupDoc(children ...any) map[string]any {
	return map[string]any{
		"type":        "group",
		"displayName": "Root",
		"children":    children,
	}
}

func blueprintDoc(items map[string]any) map[string]any {
	return map[string]any{
		"name":       "rig_arm",
		"version":    "1.0.0",
		"buildItems": items,
	}
}

func TestCheck_CleanDocument(t *testing.T) {
	doc := blueprintDoc(groupDoc(
		map[string]any{"type": "MirrorChain", "axis": 1},
	))

	issues := Check(testRegistry(t), doc)
	assert.Empty(t, issues)
}

func TestCheck_MissingTopLevelKeys(t *testing.T) {
	issues := Check(testRegistry(t), map[string]any{})

	require.Len(t, issues, 3)
	assert.True(t, HasErrors(issues))
}

func TestCheck_NonGroupRoot(t *testing.T) {
	doc := blueprintDoc(map[string]any{"type": "MirrorChain", "axis": 0})

	issues := Check(testRegistry(t), doc)
	assert.True(t, HasErrors(issues))
}

func TestCheck_UnknownTypeIsWarning(t *testing.T) {
	doc := blueprintDoc(groupDoc(
		map[string]any{"type": "RetiredAction"},
	))

	issues := Check(testRegistry(t), doc)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.False(t, HasErrors(issues))
}

func TestCheck_BadAttrValueIsError(t *testing.T) {
	doc := blueprintDoc(groupDoc(
		map[string]any{"type": "MirrorChain", "axis": 9},
	))

	issues := Check(testRegistry(t), doc)
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "buildItems.children[0]", issues[0].Path)
}

func TestCheck_NestedGroupIssuesCarryPaths(t *testing.T) {
	inner := map[string]any{
		"type":     "group",
		"children": []any{}, // displayName missing
	}
	doc := blueprintDoc(groupDoc(inner))

	issues := Check(testRegistry(t), doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "buildItems.children[0].displayName", issues[0].Path)
}
