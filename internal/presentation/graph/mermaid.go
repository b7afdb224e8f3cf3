// Package graph renders blueprints as Mermaid diagrams for docs and
// review tooling.
package graph

import (
	"fmt"
	"strings"

	"github.com/dkealton/rigforge/pkg/blueprint"
)

// GenerateMermaid produces a Mermaid flowchart of the blueprint tree.
// Groups render as subroutine boxes, actions as rectangles; edges follow
// ownership, so reading top to bottom follows build order.
func GenerateMermaid(b *blueprint.Blueprint) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	counter := 0
	rootID := nextID(&counter)
	fmt.Fprintf(&sb, "    %s((\"%s\"))\n", rootID, escapeLabel(b.Name))

	writeGroup(&sb, b.RootGroup(), rootID, &counter)
	return sb.String()
}

func writeGroup(sb *strings.Builder, g *blueprint.Group, parentID string, counter *int) {
	groupID := nextID(counter)
	fmt.Fprintf(sb, "    %s[[\"%s\"]]\n", groupID, escapeLabel(g.DisplayName()))
	fmt.Fprintf(sb, "    %s --> %s\n", parentID, groupID)

	for _, child := range g.Children() {
		if childGroup, ok := child.(*blueprint.Group); ok {
			writeGroup(sb, childGroup, groupID, counter)
			continue
		}
		childID := nextID(counter)
		fmt.Fprintf(sb, "    %s[\"%s\"]\n", childID, escapeLabel(child.DisplayName()))
		fmt.Fprintf(sb, "    %s --> %s\n", groupID, childID)
	}
}

// nextID hands out sequential node identifiers. Display names are not
// usable as Mermaid IDs and need not be unique anyway.
func nextID(counter *int) string {
	*counter++
	return fmt.Sprintf("n%d", *counter)
}

func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
