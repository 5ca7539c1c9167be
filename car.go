package forgeutils

// semanticTagPrefix names the per-channel semantic tag entries.
const semanticTagPrefix = "CoasterCar"

// TrainCarComponents returns the component set for a train car: model and
// skeleton sharing modelName, physics mass, the asset loader/provider pair,
// an empty Transform, and one semantic tag per customisation channel.
//
// Tags are named CoasterCar1..CoasterCarN. Every entry past the first
// carries MaterialCustomisationProviderSlot = i-1; slot 0 is implicitly the
// primary channel. Channel counts above 4 keep the same linear slot
// assignment but are unverified against the host.
func TrainCarComponents(modelName string, assetPackageLoader Component, channelCount int, mass float64) Components {
	tags := make(SemanticTagMap, channelCount)
	for i := 1; i <= channelCount; i++ {
		tag := SemanticTag{}
		if i > 1 {
			slot := i - 1
			tag.MaterialCustomisationProviderSlot = &slot
		}
		tags[ChildName(semanticTagPrefix, i)] = tag
	}
	return NewComponents(
		Model{Name: modelName, UpdateCullingVolume: false},
		ModelSkeleton{Name: modelName},
		PhysicsMass{Mass: mass},
		assetPackageLoader,
		AssetPackageProvider{LoaderPath: ParentPath(0)},
		tags,
		Transform{},
	)
}
