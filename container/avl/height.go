package avl

import "github.com/segmentio/avltree/container/tree"

// HeightTree is an AVL tree of elements of type E which tracks the height of
// each subtree.
//
// The zero-value is a valid empty tree which supports lookups and removals,
// but must be initialized prior to inserting any elements.
type HeightTree[E any] struct {
	cmp  func(E, E) int
	root *node[E]
	len  int
}

var _ tree.Interface[int] = (*HeightTree[int])(nil)

// NewHeightTree constructs a new tree using the comparison function passed as
// argument to order the elements.
func NewHeightTree[E any](cmp func(E, E) int) *HeightTree[E] {
	t := new(HeightTree[E])
	t.Init(cmp)
	return t
}

// Init initializes (or re-initializes) the tree. The comparison function passed
// as argument will be used to order the elements.
//
// Complexity: O(1)
func (t *HeightTree[E]) Init(cmp func(E, E) int) {
	t.cmp = cmp
	t.root = nil
	t.len = 0
}

// Len returns the number of elements in the tree.
//
// Complexity: O(1)
func (t *HeightTree[E]) Len() int { return t.len }

// Height returns the number of edges on the longest path from the root to a
// leaf: 0 for a tree holding a single element, -1 for the empty tree.
//
// Complexity: O(1)
func (t *HeightTree[E]) Height() int { return height(t.root) }

// Contains returns true if an element equal to elem exists in the tree.
//
// Complexity: O(log n)
func (t *HeightTree[E]) Contains(elem E) bool { return lookup(t.root, elem, t.cmp) }

// Range calls f for each element of the tree in ascending order. If f returns
// false, the iteration is stopped.
//
// Complexity: O(N)
func (t *HeightTree[E]) Range(f func(E) bool) { inorder(t.root, f) }

// Insert inserts elem in the tree. The operation always succeeds; elements
// equal to ones already in the tree are retained as duplicates.
//
// The tree must have been initialized by a call to NewHeightTree or Init or the
// call to Insert will panic.
//
// Complexity: O(log n)
func (t *HeightTree[E]) Insert(elem E) {
	t.root, _ = t.insert(t.root, elem)
	t.len++
}

func (t *HeightTree[E]) insert(n *node[E], elem E) (_ *node[E], done bool) {
	if n == nil {
		return &node[E]{value: elem}, false
	}

	d := route(n, elem, t.cmp)
	o := d.opposite()
	n.link[d], done = t.insert(n.link[d], elem)
	if done {
		return n, true
	}

	before := n.balance

	if height(n.link[d])-height(n.link[o]) >= 2 {
		outer := n.link[d].link[d]
		inner := n.link[d].link[o]
		if height(outer) >= height(inner) {
			n = rotateHeight(n, o)
		} else {
			n = rotateTwiceHeight(n, o)
		}
	} else {
		fixHeight(n)
	}

	return n, n.balance == before
}

// Remove removes one element equal to elem from the tree. If no such element
// exists, the tree is not modified. The method returns whether an element was
// removed.
//
// Complexity: O(log n)
func (t *HeightTree[E]) Remove(elem E) (removed bool) {
	if t.root == nil {
		return false
	}
	t.root, _, removed = t.remove(t.root, elem)
	if removed {
		t.len--
	}
	return removed
}

func (t *HeightTree[E]) remove(n *node[E], elem E) (_ *node[E], done, removed bool) {
	if n == nil {
		return nil, true, false
	}

	var d dir
	if t.cmp(elem, n.value) == 0 {
		if n.link[left] == nil {
			return n.link[right], false, true
		}
		if n.link[right] == nil {
			return n.link[left], false, true
		}
		n.value = predecessor(n.link[left])
		elem, d = n.value, left
	} else {
		d = route(n, elem, t.cmp)
	}

	o := d.opposite()
	n.link[d], done, removed = t.remove(n.link[d], elem)
	if done {
		return n, true, removed
	}

	before := n.balance

	if height(n.link[d])-height(n.link[o]) <= -2 {
		inner := n.link[o].link[d]
		outer := n.link[o].link[o]
		if height(inner) <= height(outer) {
			n = rotateHeight(n, d)
		} else {
			n = rotateTwiceHeight(n, d)
		}
	} else {
		fixHeight(n)
	}

	return n, n.balance == before, removed
}

// String returns a rendering of the tree structure, each node annotated with
// the height of its subtree.
func (t *HeightTree[E]) String() string {
	return tree.Render(t.root, label[E]("%v [h=%d]"), child[E])
}
