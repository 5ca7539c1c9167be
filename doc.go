/*
Package forgeutils assembles nested declarative prefab trees for train-car
entities in a scene/entity-component authoring pipeline.

ForgeUtils is a pure data-shaping layer: every builder takes plain parameters
(names, counts, vectors) and returns a fresh Prefab Node for the caller to
embed into a larger authored tree. Nothing here simulates, renders, or talks
to the host engine; the engine consumes the returned structures after the
caller hands them over.

Core Concepts:

  - Node: an entity template with a prefab reference, components, exposed
    properties, and named children.
  - Component: a typed record stored in a Node under its component-type name.
  - Relative path depth: builders compute "../../.." style references from an
    integer depth so path strings always match the authored nesting.
  - Child naming: repeated children use stable 1-based names (Wheel1, Wheel2).

Basic Usage:

	// Build a wheel assembly with three wheels
	assembly := forgeutils.WheelAssembly("FrontBogieWheels", 3)

	// Attach it under a bogie bone
	bogie := forgeutils.BoneAttachmentWithChildren("BogieFront", forgeutils.Children{
		"Wheels": assembly,
	})

	// Dump the result through the configured trace sink
	forgeutils.PrintPrefab(bogie)

Builders never validate their input; malformed hex colors or negative depths
produce garbage rather than errors, matching the permissive authoring contract
of the host. Strict variants (HexColorToNormalizedColorStrict, ParentPathStrict,
WheelAssemblyStrict, TrainCarComponentsStrict) return descriptive errors for
callers that want early failure.
*/
package forgeutils
