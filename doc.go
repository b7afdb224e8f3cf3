/*
Package rigforge ties the blueprint core together for hosts: one call
builds a registry populated with the built-in action definitions and any
extension directories, and small helpers read and write blueprint
documents as files.

	setup, err := rigforge.Bootstrap(logger, "./actions")
	if err != nil { ... }

	b, err := rigforge.LoadBlueprintFile(setup.Registry, "rig_arm.yaml")

The heavy lifting lives in the subpackages: pkg/blueprint for the tree
model and registry, pkg/schema for action attribute specs, pkg/loader
for definition discovery, pkg/runner for executing builds, and
pkg/adapters for persistence backends.
*/
package rigforge
