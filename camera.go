package forgeutils

// defaultCameraFieldOfView is the fixed field-of-view exposed on camera
// children.
const defaultCameraFieldOfView = 1.0

// SimpleCameraChild returns a node referencing the given camera prefab.
// Cameras are configured through exposed properties, not a Transform
// component, so position and rotation land in Properties.
func SimpleCameraChild(prefabName string, position, rotation Vec3) *Node {
	return &Node{
		Prefab: prefabName,
		Properties: Properties{
			"FieldOfView": {Default: defaultCameraFieldOfView},
			"Position":    {Default: position},
			"Rotation":    {Default: rotation},
		},
	}
}
