package forgeutils

// displayPlaneOffset drops the platform display plane slightly below the
// located mesh surface.
const displayPlaneOffset = -0.2

// platformIDProviderDepth is the fixed nesting from a platform node to the
// shared platform-ID provider.
const platformIDProviderDepth = 4

// symmetryAxisChild names the child node added by
// RotationalSymmetrySceneryPlatform; the duplication context references it
// by relative path.
const symmetryAxisChild = "RotationalSymmetryAxis"

// SimpleSceneryPlatform returns a scenery-platform node for the given mesh.
// Twinning groups use {0} as the train-index placeholder: cars of one train,
// the suffixed global group, and all cars of all trains. The InputValues
// property appends to any inherited default list rather than replacing it.
func SimpleSceneryPlatform(meshName, nameSuffix string) *Node {
	return &Node{
		Components: NewComponents(
			PlatformFinder{
				MeshName:           meshName,
				DisplayPlaneOffset: displayPlaneOffset,
			},
			SceneryPlatform{
				TwinningGroupNames: []string{
					"Train{0}_AllCars",
					"AllTrains_" + nameSuffix,
					"AllTrains_AllCars",
				},
				PlatformNameFormat: "Train{0}_" + nameSuffix,
			},
			TriggerContext{TrackedRideCar: ParentPath(1)},
			Transform{},
			AssetPackageProvider{LoaderPath: ParentPath(1)},
			PlatformIDProvider{ProviderEntity: ParentPath(platformIDProviderDepth)},
		),
		Properties: Properties{
			"InputValues": {
				Type:    "Uint64Array",
				Default: Uint64ArrayDefault{Inherit: InheritAppend},
			},
		},
	}
}

// RotationalSymmetrySceneryPlatform extends SimpleSceneryPlatform with a
// duplication context referencing a new RotationalSymmetryAxis child, and
// adds that child holding only the given transform.
func RotationalSymmetrySceneryPlatform(meshName, nameSuffix string, symmetryAxis Transform) *Node {
	n := SimpleSceneryPlatform(meshName, nameSuffix)
	ctx := SceneryDuplicationContext{
		RotationalSymmetryAxisEntity: "./" + symmetryAxisChild,
	}
	n.Components[ctx.Kind()] = ctx
	n.Children = Children{
		symmetryAxisChild: {
			Components: NewComponents(symmetryAxis),
		},
	}
	return n
}
