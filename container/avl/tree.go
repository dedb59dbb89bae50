package avl

import "github.com/segmentio/avltree/container/tree"

// Tree is an AVL tree of elements of type E which tracks the balance factor of
// each node.
//
// The zero-value is a valid empty tree which supports lookups and removals,
// but must be initialized prior to inserting any elements.
type Tree[E any] struct {
	cmp  func(E, E) int
	root *node[E]
	len  int
}

var _ tree.Interface[int] = (*Tree[int])(nil)

// New constructs a new tree using the comparison function passed as argument
// to order the elements.
func New[E any](cmp func(E, E) int) *Tree[E] {
	t := new(Tree[E])
	t.Init(cmp)
	return t
}

// Init initializes (or re-initializes) the tree. The comparison function passed
// as argument will be used to order the elements.
//
// Complexity: O(1)
func (t *Tree[E]) Init(cmp func(E, E) int) {
	t.cmp = cmp
	t.root = nil
	t.len = 0
}

// Len returns the number of elements in the tree.
//
// Complexity: O(1)
func (t *Tree[E]) Len() int { return t.len }

// Height returns the balance factor stored at the root of the tree, or -1 if
// the tree is empty.
//
// Tree does not track heights: the returned value is not the height of the
// tree. Programs which need it should use a HeightTree instead.
func (t *Tree[E]) Height() int {
	if t.root == nil {
		return -1
	}
	return t.root.balance
}

// Contains returns true if an element equal to elem exists in the tree.
//
// Complexity: O(log n)
func (t *Tree[E]) Contains(elem E) bool { return lookup(t.root, elem, t.cmp) }

// Range calls f for each element of the tree in ascending order. If f returns
// false, the iteration is stopped.
//
// Complexity: O(N)
func (t *Tree[E]) Range(f func(E) bool) { inorder(t.root, f) }

// Insert inserts elem in the tree. The operation always succeeds; elements
// equal to ones already in the tree are retained as duplicates.
//
// The tree must have been initialized by a call to New or Init or the call
// to Insert will panic.
//
// Complexity: O(log n)
func (t *Tree[E]) Insert(elem E) {
	t.root, _ = t.insert(t.root, elem)
	t.len++
}

// insert returns the new root of the subtree and whether the insertion has been
// absorbed. done is false when the subtree grew taller and the caller must
// adjust its own balance factor.
func (t *Tree[E]) insert(n *node[E], elem E) (_ *node[E], done bool) {
	if n == nil {
		return &node[E]{value: elem}, false
	}

	d := route(n, elem, t.cmp)
	n.link[d], done = t.insert(n.link[d], elem)

	if !done {
		n.balance += d.sign()

		switch n.balance {
		case 0:
			done = true
		case -1, +1:
		default:
			n = insertBalance(n, d)
			done = true
		}
	}

	return n, done
}

// insertBalance restores the balance of root after its subtree on side d grew
// two levels taller than the other one.
func insertBalance[E any](root *node[E], d dir) *node[E] {
	n := root.link[d]
	bal := d.sign()

	if n.balance == bal {
		root.balance, n.balance = 0, 0
		return rotate(root, d.opposite())
	}

	adjustBalance(root, d, bal)
	return rotateTwice(root, d.opposite())
}

// Remove removes one element equal to elem from the tree. If no such element
// exists, the tree is not modified. The method returns whether an element was
// removed.
//
// Complexity: O(log n)
func (t *Tree[E]) Remove(elem E) (removed bool) {
	if t.root == nil {
		return false
	}
	t.root, _, removed = t.remove(t.root, elem)
	if removed {
		t.len--
	}
	return removed
}

// remove returns the new root of the subtree, whether the rebalancing is
// complete, and whether a node was removed. done is false when the subtree got
// shorter and the caller must adjust its own balance factor.
func (t *Tree[E]) remove(n *node[E], elem E) (_ *node[E], done, removed bool) {
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
		// Take the value of the in-order predecessor, then remove the node
		// holding it from the left subtree.
		n.value = predecessor(n.link[left])
		elem, d = n.value, left
	} else {
		d = route(n, elem, t.cmp)
	}

	n.link[d], done, removed = t.remove(n.link[d], elem)

	if !done {
		n.balance -= d.sign()

		switch n.balance {
		case -1, +1:
			done = true
		case 0:
		default:
			n, done = removeBalance(n, d)
		}
	}

	return n, done, removed
}

// removeBalance restores the balance of root after its subtree on side d got
// two levels shorter than the other one. It returns the new subtree root and
// whether the subtree kept its height.
func removeBalance[E any](root *node[E], d dir) (*node[E], bool) {
	o := d.opposite()
	n := root.link[o]
	bal := d.sign()

	switch n.balance {
	case -bal:
		root.balance, n.balance = 0, 0
		return rotate(root, d), false
	case bal:
		adjustBalance(root, o, -bal)
		return rotateTwice(root, d), false
	default:
		root.balance, n.balance = -bal, bal
		return rotate(root, d), true
	}
}

// String returns a rendering of the tree structure, each node annotated with
// its balance factor.
func (t *Tree[E]) String() string {
	return tree.Render(t.root, label[E]("%v [%+d]"), child[E])
}
