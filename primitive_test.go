package forgeutils

import (
	"strings"
	"testing"
)

// TestParentPath tests relative path construction from a depth parameter
func TestParentPath(t *testing.T) {
	tests := []struct {
		name     string
		levels   int
		expected string
	}{
		{name: "Zero levels", levels: 0, expected: "."},
		{name: "One level", levels: 1, expected: ".."},
		{name: "Two levels", levels: 2, expected: "../.."},
		{name: "Four levels", levels: 4, expected: "../../../.."},
		{name: "Negative levels", levels: -3, expected: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParentPath(tt.levels)
			if got != tt.expected {
				t.Errorf("ParentPath(%d) = %q, expected %q", tt.levels, got, tt.expected)
			}
		})
	}

	// Path segment count matches the requested depth
	for levels := 1; levels <= 8; levels++ {
		got := ParentPath(levels)
		if n := strings.Count(got, ".."); n != levels {
			t.Errorf("ParentPath(%d) has %d '..' segments, expected %d", levels, n, levels)
		}
	}
}

// TestHexColorToNormalizedColor tests permissive hex color conversion
func TestHexColorToNormalizedColor(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		expected Vec3
	}{
		{name: "Red with hash", hex: "#FF0000", expected: Vec3{X: 1, Y: 0, Z: 0}},
		{name: "Green without hash", hex: "00FF00", expected: Vec3{X: 0, Y: 1, Z: 0}},
		{name: "Blue with hash", hex: "#0000FF", expected: Vec3{X: 0, Y: 0, Z: 1}},
		{name: "Grey", hex: "808080", expected: Vec3{X: 128.0 / 255, Y: 128.0 / 255, Z: 128.0 / 255}},
		{name: "Lowercase", hex: "#ffffff", expected: Vec3{X: 1, Y: 1, Z: 1}},
		{name: "Short input yields zeroed tail channels", hex: "FF", expected: Vec3{X: 1, Y: 0, Z: 0}},
		{name: "Empty input", hex: "", expected: Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexColorToNormalizedColor(tt.hex)
			if got != tt.expected {
				t.Errorf("HexColorToNormalizedColor(%q) = %+v, expected %+v", tt.hex, got, tt.expected)
			}
		})
	}
}

// TestHexColorRange verifies channels stay in [0, 1] for well-formed input
func TestHexColorRange(t *testing.T) {
	for _, hex := range []string{"000000", "FFFFFF", "#123456", "#ABCDEF", "7f7f7f"} {
		c := HexColorToNormalizedColor(hex)
		for _, v := range []float64{c.X, c.Y, c.Z} {
			if v < 0 || v > 1 {
				t.Errorf("HexColorToNormalizedColor(%q) channel %v out of [0,1]", hex, v)
			}
		}
	}
}

// TestChildName tests the shared 1-based naming convention
func TestChildName(t *testing.T) {
	if got := ChildName("Wheel", 1); got != "Wheel1" {
		t.Errorf("ChildName = %q, expected Wheel1", got)
	}
	if got := ChildName("CoasterCar", 12); got != "CoasterCar12" {
		t.Errorf("ChildName = %q, expected CoasterCar12", got)
	}
}

// TestTransformComponent verifies values pass through verbatim
func TestTransformComponent(t *testing.T) {
	pos := Vec3{X: 1, Y: 2, Z: 3}
	rot := Vec3{X: -0.5, Y: 0, Z: 3.14}
	tr := TransformComponent(pos, rot, 0)

	if tr.Position != pos {
		t.Errorf("Position = %+v, expected %+v", tr.Position, pos)
	}
	if tr.Rotation != rot {
		t.Errorf("Rotation = %+v, expected %+v", tr.Rotation, rot)
	}
	if tr.Scale != 0 {
		t.Errorf("Scale = %v, expected 0 (no defaulting)", tr.Scale)
	}
}
