package forgeutils

// Transform places a node relative to its parent. A node with the zero value
// is "empty": the host applies its own defaults when all fields are zero.
type Transform struct {
	Position Vec3    `json:"Position"`
	Rotation Vec3    `json:"Rotation"`
	Scale    float64 `json:"Scale"`
}

func (Transform) Kind() string { return "Transform" }

// BoneTransform parents a node to a named skeletal bone on the animated
// entity found at AnimatedEntity (a relative path).
type BoneTransform struct {
	AnimatedEntity string `json:"AnimatedEntity"`
	BoneName       string `json:"BoneName"`
}

func (BoneTransform) Kind() string { return "BoneTransform" }

// RenderMaterialEffects wires a node to the material customisation provider
// found at the given relative path.
type RenderMaterialEffects struct {
	MaterialCustomisationProvider string `json:"MaterialCustomisationProvider"`
}

func (RenderMaterialEffects) Kind() string { return "RenderMaterialEffects" }

// Model names the render model for an entity.
type Model struct {
	Name                string `json:"Name"`
	UpdateCullingVolume bool   `json:"UpdateCullingVolume"`
}

func (Model) Kind() string { return "Model" }

// ModelSkeleton names the skeleton matching a Model of the same name.
type ModelSkeleton struct {
	Name string `json:"Name"`
}

func (ModelSkeleton) Kind() string { return "ModelSkeleton" }

// PhysicsMass marks an entity with a physics mass in kilograms.
type PhysicsMass struct {
	Mass float64 `json:"Mass"`
}

func (PhysicsMass) Kind() string { return "PhysicsMass" }

// WheelPhysics marks a wheel-assembly carrier for wheel physics. No fields;
// presence is the signal.
type WheelPhysics struct{}

func (WheelPhysics) Kind() string { return "WheelPhysics" }

// AssetPackageProvider exposes loaded asset packages to descendants.
// LoaderPath is the relative path to the node carrying the loader.
type AssetPackageProvider struct {
	LoaderPath string `json:"LoaderPath"`
}

func (AssetPackageProvider) Kind() string { return "AssetPackageProvider" }

// AssetPackageLoader is a simple loader configuration naming the asset
// package to load. Hosts with richer loader schemas pass their own Component
// instead.
type AssetPackageLoader struct {
	Package string `json:"Package,omitempty"`
}

func (AssetPackageLoader) Kind() string { return "AssetPackageLoader" }

// SemanticTag is one entry in a SemanticTagMap. The slot is present only for
// entries carrying a material customisation channel beyond the primary one.
type SemanticTag struct {
	MaterialCustomisationProviderSlot *int `json:"MaterialCustomisationProviderSlot,omitempty"`
}

// SemanticTagMap tags an entity with named semantic entries, one per
// customisation channel.
type SemanticTagMap map[string]SemanticTag

func (SemanticTagMap) Kind() string { return "SemanticTagMap" }

// PlatformFinder locates the walkable platform surface on a mesh.
type PlatformFinder struct {
	MeshName           string  `json:"MeshName"`
	DisplayPlaneOffset float64 `json:"DisplayPlaneOffset"`
}

func (PlatformFinder) Kind() string { return "PlatformFinder" }

// SceneryPlatform declares a dynamic scenery platform with the twinning
// groups it joins and its per-train platform name. Format strings use {0} as
// the train-index placeholder, substituted by the host.
type SceneryPlatform struct {
	TwinningGroupNames []string `json:"TwinningGroupNames"`
	PlatformNameFormat string   `json:"PlatformNameFormat"`
}

func (SceneryPlatform) Kind() string { return "SceneryPlatform" }

// TriggerContext points trigger evaluation at the tracked-ride-car entity
// found at the given relative path.
type TriggerContext struct {
	TrackedRideCar string `json:"TrackedRideCar"`
}

func (TriggerContext) Kind() string { return "TriggerContext" }

// PlatformIDProvider wires a platform to the ID provider found at the given
// relative path.
type PlatformIDProvider struct {
	ProviderEntity string `json:"ProviderEntity"`
}

func (PlatformIDProvider) Kind() string { return "PlatformIDProvider" }

// SceneryDuplicationContext configures rotational duplication around the
// axis entity at the given relative path.
type SceneryDuplicationContext struct {
	RotationalSymmetryAxisEntity string `json:"RotationalSymmetryAxisEntity"`
}

func (SceneryDuplicationContext) Kind() string { return "SceneryDuplicationContext" }

// RawComponent passes an arbitrary host-defined component through a builder.
// Name becomes the component-type key; Fields are handed over untouched.
type RawComponent struct {
	Name   string         `json:"-"`
	Fields map[string]any `json:"Fields,omitempty"`
}

func (r RawComponent) Kind() string { return r.Name }

// Simplify flattens a RawComponent to its fields when decomposed, so dumps
// show the host's component data without a wrapper.
func (r RawComponent) Simplify() any {
	out := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		out[k] = v
	}
	return out
}
