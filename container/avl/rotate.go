package avl

// rotate performs a single rotation of the subtree rooted at root in
// direction d, and returns the new root of the subtree. For d == left:
//
//	    root              c
//	   /    \            / \
//	  a      c   ->  root   e
//	        / \      /  \
//	       b   e    a    b
//
// Only links are modified; the balance factors are maintained by the callers.
func rotate[E any](root *node[E], d dir) *node[E] {
	o := d.opposite()
	top := root.link[o]
	root.link[o] = top.link[d]
	top.link[d] = root
	return top
}

// rotateTwice first rotates the child of root on the side opposite to d away
// from root, then rotates root in direction d. The grandchild on the inner
// side becomes the new root of the subtree.
func rotateTwice[E any](root *node[E], d dir) *node[E] {
	o := d.opposite()
	root.link[o] = rotate(root.link[o], o)
	return rotate(root, d)
}

// adjustBalance sets the balance factors of root, its child on side d and the
// inner grandchild to the values they will have once rotateTwice promotes the
// grandchild. bal is the sign of a lean toward d.
func adjustBalance[E any](root *node[E], d dir, bal int) {
	n := root.link[d]
	nn := n.link[d.opposite()]

	switch nn.balance {
	case 0:
		root.balance, n.balance = 0, 0
	case bal:
		root.balance, n.balance = -bal, 0
	default:
		root.balance, n.balance = 0, bal
	}

	nn.balance = 0
}

// rotateHeight is the rotate variant used by HeightTree: after relinking, the
// heights of the demoted root and of the new root are recomputed, in that
// order.
func rotateHeight[E any](root *node[E], d dir) *node[E] {
	top := rotate(root, d)
	fixHeight(root)
	fixHeight(top)
	return top
}

func rotateTwiceHeight[E any](root *node[E], d dir) *node[E] {
	o := d.opposite()
	root.link[o] = rotateHeight(root.link[o], o)
	return rotateHeight(root, d)
}
