package blueprint

// DefaultGroupName is the placeholder display name for new groups.
const DefaultGroupName = "New Group"

const (
	keyDisplayName = "displayName"
	keyChildren    = "children"
)

// Group is a composite item holding an ordered list of children that are
// built in sequence. Groups own their children exclusively; an item must
// not appear under two parents.
type Group struct {
	displayName string
	children    []Item
}

var _ Item = (*Group)(nil)

// NewGroup creates an empty group with the placeholder display name.
func NewGroup() *Group {
	return &Group{displayName: DefaultGroupName}
}

// DisplayName returns the group's presentation label.
func (g *Group) DisplayName() string { return g.displayName }

// SetDisplayName updates the group's presentation label.
func (g *Group) SetDisplayName(name string) { g.displayName = name }

// TypeName returns the reserved group type name.
func (g *Group) TypeName() string { return TypeGroup }

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// Children returns a copy of the child list. The copy keeps ownership
// with the group; mutating the returned slice does not edit the tree.
func (g *Group) Children() []Item {
	children := make([]Item, len(g.children))
	copy(children, g.children)
	return children
}

// AddChild appends item to the end of the child list.
// Adding a group to itself or adding nil fails with *InvalidChildError.
func (g *Group) AddChild(item Item) error {
	if err := g.checkChild(item); err != nil {
		return err
	}
	g.children = append(g.children, item)
	return nil
}

// InsertChild inserts item at index, shifting later children. The index
// is clamped to the valid range, matching a plain slice insert. The same
// checks as AddChild apply, including the self-reference guard.
func (g *Group) InsertChild(index int, item Item) error {
	if err := g.checkChild(item); err != nil {
		return err
	}
	if index < 0 {
		index = 0
	}
	if index > len(g.children) {
		index = len(g.children)
	}
	g.children = append(g.children[:index], append([]Item{item}, g.children[index:]...)...)
	return nil
}

// RemoveChild removes the first occurrence of item, compared by identity.
// A missing item is a no-op, not an error.
func (g *Group) RemoveChild(item Item) {
	for i, child := range g.children {
		if child == item {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return
		}
	}
}

// ClearChildren resets the child list, releasing ownership of all former
// children.
func (g *Group) ClearChildren() {
	g.children = nil
}

func (g *Group) checkChild(item Item) error {
	if item == nil {
		return &InvalidChildError{Reason: "nil item"}
	}
	if item == Item(g) {
		return &InvalidChildError{Reason: "a group cannot contain itself"}
	}
	return nil
}

// Serialize renders the group with its display name and each child's own
// serialized form, in order. Child order is build execution order.
func (g *Group) Serialize() map[string]any {
	children := make([]any, 0, len(g.children))
	for _, child := range g.children {
		children = append(children, child.Serialize())
	}

	data := baseDocument(g)
	data[keyDisplayName] = g.displayName
	data[keyChildren] = children
	return data
}

// Deserialize restores the display name and rebuilds the child list via
// the registry, preserving order. Children with unregistered types are
// skipped silently; any other child error aborts the load.
func (g *Group) Deserialize(reg *Registry, data map[string]any) error {
	if err := CheckDocType(g, data); err != nil {
		return err
	}

	name, ok := data[keyDisplayName].(string)
	if !ok {
		return &SchemaError{Field: keyDisplayName, Reason: "missing or not a string"}
	}

	rawChildren, err := childDocs(data)
	if err != nil {
		return err
	}

	children := make([]Item, 0, len(rawChildren))
	for _, rawChild := range rawChildren {
		child, err := reg.Create(rawChild)
		if err != nil {
			if IsUnknownType(err) {
				continue
			}
			return err
		}
		children = append(children, child)
	}

	g.displayName = name
	g.children = children
	return nil
}

// childDocs reads the "children" entry as a list of item documents.
// Both []any (decoded JSON/YAML) and []map[string]any are accepted.
func childDocs(data map[string]any) ([]map[string]any, error) {
	switch raw := data[keyChildren].(type) {
	case nil:
		return nil, &SchemaError{Field: keyChildren, Reason: "missing"}
	case []map[string]any:
		return raw, nil
	case []any:
		docs := make([]map[string]any, 0, len(raw))
		for _, entry := range raw {
			doc, ok := entry.(map[string]any)
			if !ok {
				return nil, &SchemaError{Field: keyChildren, Reason: "entry is not a mapping"}
			}
			docs = append(docs, doc)
		}
		return docs, nil
	default:
		return nil, &SchemaError{Field: keyChildren, Reason: "not a list"}
	}
}
