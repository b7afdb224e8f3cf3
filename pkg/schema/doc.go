/*
Package schema describes the configuration attributes of build actions.

Every action kind declares an ordered list of attribute specs. Each spec
carries a kind tag (bool, int, float, string, option, node, nodeList), an
optional default, and kind-specific constraints such as numeric ranges or
option lists. Values supplied for an action are validated against its
schema at deserialization time, so malformed documents fail before they
reach an editor or a build run.

Basic usage:

	attrs := schema.Schema{
	    {Name: "keepOffsets", Type: schema.KindBool, Default: true},
	    {Name: "smoothing", Type: schema.KindInt, Min: schema.Num(0), Max: schema.Num(5)},
	    {Name: "mirrorAxis", Type: schema.KindOption, Options: []string{"x", "y", "z"}},
	}

	values := map[string]any{
	    "keepOffsets": false,
	    "smoothing":   2,
	    "mirrorAxis":  1,
	}

	if err := attrs.Validate(values); err != nil {
	    // one *ValidationError per failing attribute, aggregated
	}

Schemas are plain data and round-trip through YAML and JSON, which is how
action definition files declare them.
*/
package schema
