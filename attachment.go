package forgeutils

// attachPointPrefab is the prefab referenced by SimpleAttachPoint for
// elements attached outside the main hierarchy (catch cars and the like).
const attachPointPrefab = "AttachPoint"

// SimpleBoneAttachment returns a node parented to the named bone on the
// immediate animated parent, with an empty Transform on top.
func SimpleBoneAttachment(boneName string) *Node {
	return &Node{
		Components: NewComponents(
			BoneTransform{
				AnimatedEntity: ParentPath(1),
				BoneName:       boneName,
			},
			Transform{},
		),
	}
}

// BoneAttachmentWithChildren is SimpleBoneAttachment with the supplied
// children injected. The map is used as-is, not copied.
func BoneAttachmentWithChildren(boneName string, children Children) *Node {
	n := SimpleBoneAttachment(boneName)
	n.Children = children
	return n
}

// SimpleAttachPoint returns a node referencing the attach-point prefab with
// its AttachBone property set to the given bone name.
func SimpleAttachPoint(boneName string) *Node {
	return &Node{
		Prefab:     attachPointPrefab,
		Components: NewComponents(Transform{}),
		Properties: Properties{
			"AttachBone": {Default: boneName},
		},
	}
}
