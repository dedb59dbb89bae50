package avl

// dir addresses the two subtrees of a node.
type dir int

const (
	left  dir = 0
	right dir = 1
)

func (d dir) opposite() dir { return 1 - d }

func (d dir) String() string {
	if d == left {
		return "left"
	}
	return "right"
}

// sign is the contribution of growing the subtree on side d to the balance
// factor of its parent.
func (d dir) sign() int {
	if d == left {
		return -1
	}
	return +1
}
