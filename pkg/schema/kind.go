package schema

import "fmt"

// Kind tags the value type of an attribute.
type Kind string

const (
	// KindBool accepts true/false values.
	KindBool Kind = "bool"
	// KindInt accepts integer values. Whole floats are tolerated because
	// JSON decoding produces float64 for all numbers.
	KindInt Kind = "int"
	// KindFloat accepts any numeric value.
	KindFloat Kind = "float"
	// KindString accepts string values.
	KindString Kind = "string"
	// KindOption accepts an integer index into the attribute's Options list.
	KindOption Kind = "option"
	// KindNode accepts a single node path string. Resolving the path against
	// a live scene is the host's concern; here it is just a string.
	KindNode Kind = "node"
	// KindNodeList accepts an ordered list of node path strings.
	KindNodeList Kind = "nodeList"
)

// ParseKind converts a type tag string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindBool, KindInt, KindFloat, KindString, KindOption, KindNode, KindNodeList:
		return k, nil
	default:
		return "", fmt.Errorf("unknown attribute kind: %q", s)
	}
}

// Validate checks that value structurally conforms to the kind.
// Constraints that need the full spec (ranges, option lists) are applied
// by Attr.ValidateValue.
func (k Kind) Validate(value any) error {
	switch k {
	case KindBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
	case KindInt, KindOption:
		return validateInt(value)
	case KindFloat:
		switch value.(type) {
		case float32, float64, int, int8, int16, int32, int64:
		default:
			return fmt.Errorf("expected float, got %T", value)
		}
	case KindString, KindNode:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case KindNodeList:
		switch v := value.(type) {
		case []string:
		case []any:
			for i, elem := range v {
				if _, ok := elem.(string); !ok {
					return fmt.Errorf("element %d: expected string, got %T", i, elem)
				}
			}
		default:
			return fmt.Errorf("expected list of strings, got %T", value)
		}
	default:
		return fmt.Errorf("unknown attribute kind: %q", string(k))
	}
	return nil
}

// zero returns the default value for a kind when the spec declares none.
func (k Kind) zero() any {
	switch k {
	case KindBool:
		return false
	case KindInt, KindOption:
		return 0
	case KindFloat:
		return 0.0
	case KindString, KindNode:
		return ""
	case KindNodeList:
		return []string{}
	}
	return nil
}

func validateInt(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// Accept whole numbers coming from JSON unmarshaling.
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// asInt converts tolerated integer representations to int.
// Callers must have validated the value first.
func asInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// asFloat converts tolerated numeric representations to float64.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
