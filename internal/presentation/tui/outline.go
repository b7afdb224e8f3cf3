// Package tui renders blueprints for terminal display.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkealton/rigforge/pkg/blueprint"
	"github.com/dkealton/rigforge/pkg/loader"
)

// Outline renders a blueprint as a markdown document: a heading with the
// name and version, then a nested bullet list of the tree in build order.
func Outline(b *blueprint.Blueprint) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\nversion `%s`\n\n", b.Name, b.Version)
	writeGroup(&sb, b.RootGroup(), 0)
	return sb.String()
}

func writeGroup(sb *strings.Builder, g *blueprint.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s- **%s**\n", indent, g.DisplayName())

	for _, child := range g.Children() {
		if childGroup, ok := child.(*blueprint.Group); ok {
			writeGroup(sb, childGroup, depth+1)
			continue
		}
		fmt.Fprintf(sb, "%s  - %s `%s`%s\n",
			indent, child.DisplayName(), child.TypeName(), attrSummary(child))
	}
}

// attrSummary lists a declared action's values inline, sorted by name so
// output is stable.
func attrSummary(item blueprint.Item) string {
	action, ok := item.(*loader.DeclaredAction)
	if !ok {
		return ""
	}
	values := action.Values()
	if len(values) == 0 {
		return ""
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, values[name]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
