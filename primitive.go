package forgeutils

import (
	"strconv"
	"strings"
)

// TransformComponent combines the given position, rotation (radians), and
// scale verbatim. No defaulting: a zero scale or negative rotation passes
// through unchanged.
func TransformComponent(position, rotation Vec3, scale float64) Transform {
	return Transform{
		Position: position,
		Rotation: rotation,
		Scale:    scale,
	}
}

// HexColorToNormalizedColor converts a 6-hex-digit color string (with or
// without a leading '#') to per-channel values in [0, 1]. Input is not
// validated: short or malformed strings yield zeroed channels rather than an
// error. Use HexColorToNormalizedColorStrict for early failure.
func HexColorToNormalizedColor(hex string) Vec3 {
	s := strings.TrimPrefix(hex, "#")
	return Vec3{
		X: hexChannel(s, 0),
		Y: hexChannel(s, 2),
		Z: hexChannel(s, 4),
	}
}

func hexChannel(s string, start int) float64 {
	if len(s) < start+2 {
		return 0
	}
	v, _ := strconv.ParseUint(s[start:start+2], 16, 16)
	return float64(v) / 255
}

// ParentPath returns the relative path climbing the given number of levels:
// "." for 0, "..", "../..", and so on. Negative input is not meaningful and
// also yields ".".
func ParentPath(levels int) string {
	if levels < 1 {
		return "."
	}
	return strings.TrimSuffix(strings.Repeat("../", levels), "/")
}

// ChildName forms the stable 1-based name for a repeated child, e.g.
// ChildName("Wheel", 2) == "Wheel2". Every repeated-child builder goes
// through this so naming stays consistent across the package.
func ChildName(prefix string, index int) string {
	return prefix + strconv.Itoa(index)
}
