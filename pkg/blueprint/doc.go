/*
Package blueprint models a rig-construction plan as a serializable tree of
typed build items.

# Key Entities

  - Item: the polymorphic tree-node contract (display name, type name,
    serialize/deserialize round-trip).
  - Group: a composite item holding an ordered list of children; order is
    build execution order.
  - Action: a leaf item representing one concrete, runnable operation.
  - Blueprint: the root container with a name, a schema version, and
    exactly one owned root Group.
  - Registry: the mapping from serialized type names to item factories.

Ownership is strictly tree shaped: a Blueprint owns its root group and each
group exclusively owns its children. Documents passed to Deserialize are
treated as immutable inputs and never modified.

Serialization uses plain nested maps so documents can be carried through
JSON, YAML, or any host document store unchanged:

	{
	  "name": "rig_arm",
	  "version": "1.0.0",
	  "buildItems": {
	    "type": "group",
	    "displayName": "Root",
	    "children": [...]
	  }
	}

Unknown item types encountered while rebuilding a tree are skipped rather
than failing the whole load, so documents referencing since-removed action
kinds still open. Callers that need strictness can pre-flight a document
with the validator.
*/
package blueprint
