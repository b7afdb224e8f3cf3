/*
Package loader discovers action definitions and registers them as build
item types.

An action definition is a small YAML document declaring a type name, a
display name, and an attribute schema:

	name: MirrorChain
	displayName: Mirror Chain
	category: joints
	attrs:
	  - name: axis
	    type: option
	    options: [x, y, z]
	  - name: targets
	    type: nodeList

Definitions are loaded from designated directories (and from the built-in
set shipped with the module) once at session start, then registered into a
blueprint.Registry. Each definition becomes a DeclaredAction factory whose
instances validate their attribute values against the schema during
deserialization.

Definitions only describe configuration. A host that can actually execute
an action binds a RunFunc to its type name before registration; unbound
actions deserialize and serialize normally but refuse to run.
*/
package loader
