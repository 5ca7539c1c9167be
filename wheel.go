package forgeutils

// Fixed nesting between a wheel and the shared customisation provider:
// wheel -> assembly -> bogie -> car provider. The assembly node sits one
// level below the bogie, each wheel one level below that.
const (
	assemblyProviderDepth = 2
	wheelProviderDepth    = 3
)

// wheelChildPrefab is the base prefab every WheelChild references.
const wheelChildPrefab = "TrackedRideCarWheel"

// WheelAssembly returns an assembly node referencing the given prefab with
// wheelCount children named Wheel1..WheelN. Each wheel carries a material
// customisation reference three levels up; the assembly root carries one two
// levels up alongside an empty Transform.
func WheelAssembly(prefabName string, wheelCount int) *Node {
	children := make(Children, wheelCount)
	for i := 1; i <= wheelCount; i++ {
		children[ChildName("Wheel", i)] = &Node{
			Components: NewComponents(
				RenderMaterialEffects{MaterialCustomisationProvider: ParentPath(wheelProviderDepth)},
			),
		}
	}
	return &Node{
		Prefab: prefabName,
		Components: NewComponents(
			RenderMaterialEffects{MaterialCustomisationProvider: ParentPath(assemblyProviderDepth)},
			Transform{},
		),
		Children: children,
	}
}

// WheelChild returns a node referencing the wheel base prefab, exposing the
// bone and model names as properties. A WheelRadius property is added only
// when a radius argument is given; omitting it leaves the referenced
// prefab's own default in force (absent key, not zero).
func WheelChild(boneName, modelName string, wheelRadius ...float64) *Node {
	props := Properties{
		"BoneName":  {Default: boneName},
		"ModelName": {Default: modelName},
	}
	if len(wheelRadius) > 0 {
		props["WheelRadius"] = Property{Default: wheelRadius[0]}
	}
	return &Node{
		Prefab:     wheelChildPrefab,
		Properties: props,
	}
}

// BogieComponents returns the fixed component set for a wheel-assembly
// carrier: empty Transform, wheel-physics marker, the caller's asset loader
// configuration, and an asset package provider rooted at the node itself.
func BogieComponents(assetPackageLoader Component) Components {
	return NewComponents(
		Transform{},
		WheelPhysics{},
		assetPackageLoader,
		AssetPackageProvider{LoaderPath: ParentPath(0)},
	)
}
