package blueprint

import "context"

// keyType is the discriminator key present in every serialized item.
const keyType = "type"

// Item is the contract every tree node satisfies.
//
// Serialize and Deserialize must mirror each other: for any item i,
// deserializing i.Serialize() into a fresh instance of the same type
// yields an equivalent item.
type Item interface {
	// DisplayName returns the presentation label. It is never used for
	// identity or registry lookup.
	DisplayName() string

	// TypeName returns the stable, unique serialization discriminator
	// for this item kind. It doubles as the registry key.
	TypeName() string

	// Serialize renders the item as a nested document. Implementations
	// start from a base {"type": name} map and add their own fields.
	Serialize() map[string]any

	// Deserialize restores the item from a document. Implementations
	// must verify the document's declared type first (see CheckDocType)
	// and then populate their own fields. The registry is passed down so
	// composite items can rebuild children.
	Deserialize(reg *Registry, data map[string]any) error
}

// Action is a leaf Item representing one concrete, runnable build
// operation. Each action kind registers under its own type name.
type Action interface {
	Item

	// Run performs the operation. What "performing" means is host
	// specific; the tree model only guarantees invocation order.
	Run(ctx context.Context) error
}

// Factory produces a default-constructed item of one registered kind.
type Factory func() Item

// baseDocument starts a serialized form with the type discriminator.
func baseDocument(item Item) map[string]any {
	return map[string]any{keyType: item.TypeName()}
}

// DocType extracts the type discriminator from a serialized item.
func DocType(data map[string]any) (string, error) {
	raw, ok := data[keyType]
	if !ok {
		return "", &SchemaError{Field: keyType, Reason: "missing"}
	}
	name, ok := raw.(string)
	if !ok {
		return "", &SchemaError{Field: keyType, Reason: "not a string"}
	}
	return name, nil
}

// CheckDocType verifies that a document targets the given item's type.
// Every Deserialize implementation calls this before reading any fields.
func CheckDocType(item Item, data map[string]any) error {
	name, err := DocType(data)
	if err != nil {
		return err
	}
	if name != item.TypeName() {
		return &TypeMismatchError{Want: item.TypeName(), Got: name}
	}
	return nil
}
