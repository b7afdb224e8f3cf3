package blueprint

// Version is the current schema version written into serialized
// blueprints. Compatibility decisions between versions belong to the
// caller; the field is only carried through.
const Version = "1.0.0"

// DefaultName is the placeholder name for new blueprints.
const DefaultName = "untitled"

const (
	keyName       = "name"
	keyVersion    = "version"
	keyBuildItems = "buildItems"
)

// Blueprint is the root container of a build plan: a name, the schema
// version of its serialized form, and exactly one owned root group.
// The root group is never nil.
type Blueprint struct {
	Name    string
	Version string

	root *Group
}

// New creates a blueprint with placeholder name, current schema version,
// and an empty root group.
func New() *Blueprint {
	return &Blueprint{
		Name:    DefaultName,
		Version: Version,
		root:    NewGroup(),
	}
}

// FromData is a convenience factory: default-construct then deserialize.
func FromData(reg *Registry, data map[string]any) (*Blueprint, error) {
	b := New()
	if err := b.Deserialize(reg, data); err != nil {
		return nil, err
	}
	return b, nil
}

// RootGroup returns the owned tree root.
func (b *Blueprint) RootGroup() *Group { return b.root }

// Serialize renders the whole blueprint, bottom-up through the tree.
func (b *Blueprint) Serialize() map[string]any {
	return map[string]any{
		keyName:       b.Name,
		keyVersion:    b.Version,
		keyBuildItems: b.root.Serialize(),
	}
}

// Deserialize overwrites name and version and replaces the root group
// wholesale from data["buildItems"]. The reconstructed root must be a
// group; anything else, including an unregistered root type, fails with
// *SchemaError so a successful load always leaves a usable tree.
func (b *Blueprint) Deserialize(reg *Registry, data map[string]any) error {
	name, ok := data[keyName].(string)
	if !ok {
		return &SchemaError{Field: keyName, Reason: "missing or not a string"}
	}
	version, ok := data[keyVersion].(string)
	if !ok {
		return &SchemaError{Field: keyVersion, Reason: "missing or not a string"}
	}
	rawItems, ok := data[keyBuildItems].(map[string]any)
	if !ok {
		return &SchemaError{Field: keyBuildItems, Reason: "missing or not a mapping"}
	}

	item, err := reg.Create(rawItems)
	if err != nil {
		if IsUnknownType(err) {
			return &SchemaError{Field: keyBuildItems, Reason: "root type is not registered"}
		}
		return err
	}
	root, ok := item.(*Group)
	if !ok {
		return &SchemaError{Field: keyBuildItems, Reason: "root item is not a group"}
	}

	b.Name = name
	b.Version = version
	b.root = root
	return nil
}
