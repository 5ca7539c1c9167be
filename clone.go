package forgeutils

import "github.com/jinzhu/copier"

// Clone returns a deep copy sharing no mutable sub-structure with the
// original, so a built subtree can be embedded in several places and
// mutated independently.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{}
	// IgnoreEmpty keeps nil containers nil instead of materializing empty
	// maps and slices, so a clone stays deep-equal to its source.
	if err := copier.CopyWithOption(out, n, copier.Option{DeepCopy: true, IgnoreEmpty: true}); err != nil {
		// nodes are plain data; only a bug in this package lands here
		panic(err)
	}
	return out
}
