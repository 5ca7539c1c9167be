package forgeutils

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HexColorToNormalizedColorStrict is HexColorToNormalizedColor with input
// validation: anything other than exactly 6 hex digits (a leading '#' is
// allowed) returns an InvalidHexColorError.
func HexColorToNormalizedColorStrict(hex string) (Vec3, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return Vec3{}, InvalidHexColorError{Value: hex}
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return Vec3{}, InvalidHexColorError{Value: hex}
	}
	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return Vec3{}, InvalidHexColorError{Value: hex}
	}
	return Vec3{X: c.R, Y: c.G, Z: c.B}, nil
}

// ParentPathStrict is ParentPath with negative levels rejected.
func ParentPathStrict(levels int) (string, error) {
	if levels < 0 {
		return "", NegativePathDepthError{Levels: levels}
	}
	return ParentPath(levels), nil
}

// WheelAssemblyStrict is WheelAssembly with non-positive wheel counts
// rejected.
func WheelAssemblyStrict(prefabName string, wheelCount int) (*Node, error) {
	if wheelCount < 1 {
		return nil, InvalidCountError{What: "wheel", Count: wheelCount}
	}
	return WheelAssembly(prefabName, wheelCount), nil
}

// TrainCarComponentsStrict is TrainCarComponents with non-positive channel
// counts rejected.
func TrainCarComponentsStrict(modelName string, assetPackageLoader Component, channelCount int, mass float64) (Components, error) {
	if channelCount < 1 {
		return nil, InvalidCountError{What: "channel", Count: channelCount}
	}
	return TrainCarComponents(modelName, assetPackageLoader, channelCount, mass), nil
}
