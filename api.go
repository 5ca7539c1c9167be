package forgeutils

// Vec3 is a 3-component vector. Rotations are in radians.
type Vec3 struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

// Component is a typed record stored in a Node under its component-type name.
// Host-defined components not modeled by this package can be passed through
// any value implementing Kind (see RawComponent).
type Component interface {
	Kind() string
}

// Components maps component-type names to component records.
type Components map[string]Component

// Properties maps property names to exposed-property descriptors.
type Properties map[string]Property

// Children maps child names (unique within the parent) to child nodes.
type Children map[string]*Node

// Node is a prefab node: an entity template the host engine interprets into
// runtime entities. All fields are optional; builders only set what they use.
type Node struct {
	Prefab     string     `json:"Prefab,omitempty"`
	Components Components `json:"Components,omitempty"`
	Properties Properties `json:"Properties,omitempty"`
	Children   Children   `json:"Children,omitempty"`
}

// Property exposes a configurable field on a referenced prefab.
type Property struct {
	Default  any            `json:"Default"`
	Type     string         `json:"Type,omitempty"`
	Contents map[string]any `json:"Contents,omitempty"`
}

// InheritMode controls how a property default combines with an inherited one.
type InheritMode string

const (
	// InheritReplace discards any inherited default.
	InheritReplace InheritMode = "Replace"
	// InheritAppend appends new values to the inherited default list.
	InheritAppend InheritMode = "Append"
)

// Uint64ArrayDefault is the default value for array-of-uint64 properties.
// Inherit decides whether Values extend or replace an inherited list.
type Uint64ArrayDefault struct {
	Inherit InheritMode `json:"Inherit,omitempty"`
	Values  []uint64    `json:"Values,omitempty"`
}

// NewComponents builds a Components map keyed by each component's Kind.
func NewComponents(comps ...Component) Components {
	out := make(Components, len(comps))
	for _, c := range comps {
		out[c.Kind()] = c
	}
	return out
}
