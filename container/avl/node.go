package avl

import "fmt"

// node is shared by both trees of the package. In a Tree, balance holds the
// balance factor of the node; in a HeightTree it holds the height of the
// subtree rooted at the node.
type node[E any] struct {
	link    [2]*node[E]
	value   E
	balance int
}

// height returns the height stored in n, or -1 for the empty subtree. It is
// only meaningful for nodes of a HeightTree.
func height[E any](n *node[E]) int {
	if n == nil {
		return -1
	}
	return n.balance
}

// fixHeight recomputes the height of n from the heights of its children.
func fixHeight[E any](n *node[E]) {
	n.balance = max(height(n.link[left]), height(n.link[right])) + 1
}

func lookup[E any](n *node[E], elem E, cmp func(E, E) int) bool {
	for n != nil {
		switch c := cmp(elem, n.value); {
		case c < 0:
			n = n.link[left]
		case c > 0:
			n = n.link[right]
		default:
			return true
		}
	}
	return false
}

func inorder[E any](n *node[E], f func(E) bool) bool {
	return n == nil || (inorder(n.link[left], f) && f(n.value) && inorder(n.link[right], f))
}

// predecessor returns the value of the rightmost node of the subtree rooted
// at n.
func predecessor[E any](n *node[E]) E {
	for n.link[right] != nil {
		n = n.link[right]
	}
	return n.value
}

// route returns the subtree elem belongs to when compared against the value of
// n. Equal elements go right.
func route[E any](n *node[E], elem E, cmp func(E, E) int) dir {
	if cmp(elem, n.value) < 0 {
		return left
	}
	return right
}

func child[E any](n *node[E], i int) *node[E] { return n.link[i] }

func label[E any](format string) func(*node[E]) string {
	return func(n *node[E]) string { return fmt.Sprintf(format, n.value, n.balance) }
}
