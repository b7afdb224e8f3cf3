// Package validator pre-flights raw blueprint documents before they are
// loaded, reporting every problem at once instead of failing on the
// first. Unknown action types are warnings, because loading degrades
// gracefully by skipping them; structural breakage is an error.
package validator

import (
	"fmt"

	"github.com/dkealton/rigforge/pkg/blueprint"
)

// Severity classifies an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding at a path inside the document.
type Issue struct {
	Severity Severity
	Path     string
	Msg      string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Msg)
}

// HasErrors reports whether any issue is an error (warnings alone still
// load cleanly).
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check walks a raw blueprint document without constructing a tree and
// returns every issue found, in document order.
func Check(reg *blueprint.Registry, doc map[string]any) []Issue {
	var issues []Issue

	if _, ok := doc["name"].(string); !ok {
		issues = append(issues, Issue{SeverityError, "name", "missing or not a string"})
	}
	if _, ok := doc["version"].(string); !ok {
		issues = append(issues, Issue{SeverityError, "version", "missing or not a string"})
	}

	items, ok := doc["buildItems"].(map[string]any)
	if !ok {
		issues = append(issues, Issue{SeverityError, "buildItems", "missing or not a mapping"})
		return issues
	}

	if typeName, err := blueprint.DocType(items); err == nil && typeName != blueprint.TypeGroup {
		issues = append(issues, Issue{SeverityError, "buildItems", "root item is not a group"})
	}

	checkItem(reg, "buildItems", items, &issues)
	return issues
}

func checkItem(reg *blueprint.Registry, path string, doc map[string]any, issues *[]Issue) {
	typeName, err := blueprint.DocType(doc)
	if err != nil {
		*issues = append(*issues, Issue{SeverityError, path, err.Error()})
		return
	}

	if typeName == blueprint.TypeGroup {
		checkGroup(reg, path, doc, issues)
		return
	}

	factory, ok := reg.Lookup(typeName)
	if !ok {
		*issues = append(*issues, Issue{SeverityWarning, path,
			fmt.Sprintf("unknown type %q: item will be skipped on load", typeName)})
		return
	}

	// Dry-run the action's own deserialization to surface attribute
	// validation failures with their document path attached.
	if err := factory().Deserialize(reg, doc); err != nil {
		*issues = append(*issues, Issue{SeverityError, path, err.Error()})
	}
}

func checkGroup(reg *blueprint.Registry, path string, doc map[string]any, issues *[]Issue) {
	if _, ok := doc["displayName"].(string); !ok {
		*issues = append(*issues, Issue{SeverityError, path + ".displayName", "missing or not a string"})
	}

	rawChildren, ok := doc["children"].([]any)
	if !ok {
		if _, isTyped := doc["children"].([]map[string]any); !isTyped {
			*issues = append(*issues, Issue{SeverityError, path + ".children", "missing or not a list"})
			return
		}
		for i, child := range doc["children"].([]map[string]any) {
			checkItem(reg, fmt.Sprintf("%s.children[%d]", path, i), child, issues)
		}
		return
	}

	for i, raw := range rawChildren {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		child, ok := raw.(map[string]any)
		if !ok {
			*issues = append(*issues, Issue{SeverityError, childPath, "entry is not a mapping"})
			continue
		}
		checkItem(reg, childPath, child, issues)
	}
}
