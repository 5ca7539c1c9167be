package forgeutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecompose(t *testing.T) {
	n := SimpleAttachPoint("CatchCarBone")
	v := Decompose(n)

	m, ok := v.(map[string]any)
	require.True(t, ok, "decomposed node should be a mapping")

	assert.Equal(t, "AttachPoint", m["Prefab"])
	assert.NotContains(t, m, "Children", "empty fields stay absent")

	comps, ok := m["Components"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, comps, "Transform")

	props, ok := m["Properties"].(map[string]any)
	require.True(t, ok)
	attach, ok := props["AttachBone"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CatchCarBone", attach["Default"])
	assert.NotContains(t, attach, "Type")
}

func TestDecomposeRawComponent(t *testing.T) {
	n := &Node{
		Components: NewComponents(RawComponent{
			Name:   "HostOnlyComponent",
			Fields: map[string]any{"Speed": 4.5},
		}),
	}
	m := Decompose(n).(map[string]any)
	comps := m["Components"].(map[string]any)

	raw, ok := comps["HostOnlyComponent"].(map[string]any)
	require.True(t, ok, "raw component should flatten to its fields")
	assert.Equal(t, 4.5, raw["Speed"])
	assert.NotContains(t, raw, "Name")
}

func TestEncodeJSON(t *testing.T) {
	axis := TransformComponent(Vec3{Z: 1.5}, Vec3{}, 1)
	n := RotationalSymmetrySceneryPlatform("StationMesh", "LoadBay", axis)

	out := EncodeJSON(n, 2)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	children, ok := parsed["Children"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, children, "RotationalSymmetryAxis")

	comps := parsed["Components"].(map[string]any)
	dup, ok := comps["SceneryDuplicationContext"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "./RotationalSymmetryAxis", dup["RotationalSymmetryAxisEntity"])
}

func TestEncodeYAML(t *testing.T) {
	n := WheelChild("WheelBone", "WheelModel", 0.5)

	out, err := EncodeYAML(n)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "TrackedRideCarWheel", parsed["Prefab"])

	props := parsed["Properties"].(map[string]any)
	radius := props["WheelRadius"].(map[string]any)
	assert.Equal(t, 0.5, radius["Default"])
}

func TestQueryPrefab(t *testing.T) {
	n := WheelAssembly("BogieWheels", 3)

	got, err := QueryPrefab(n, "$.Children.Wheel1.Components.RenderMaterialEffects.MaterialCustomisationProvider")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "../../..", got[0])

	// Recursive descent finds the root reference plus one per wheel.
	got, err = QueryPrefab(n, "$..MaterialCustomisationProvider")
	require.NoError(t, err)
	assert.Len(t, got, 4)

	_, err = QueryPrefab(n, "[")
	assert.Error(t, err)
}

func TestPrintPrefab(t *testing.T) {
	var lines []string
	Config.SetTraceSink(func(msg string) { lines = append(lines, msg) })
	defer Config.SetTraceSink(nil)

	PrintPrefab(SimpleBoneAttachment("SeatBase"))

	expected := []string{
		"Components:",
		"  BoneTransform:",
		"    AnimatedEntity: ..",
		"    BoneName: SeatBase",
		"  Transform:",
		"    Position:",
		"      X: 0",
		"      Y: 0",
		"      Z: 0",
		"    Rotation:",
		"      X: 0",
		"      Y: 0",
		"      Z: 0",
		"    Scale: 0",
	}
	assert.Equal(t, expected, lines)
}
