// Package bst contains the implementation of an unbalanced binary search tree.
//
// The tree does not restructure itself, so its height depends on the order in
// which elements are inserted: inserting sorted sequences degenerates it into
// a linked list. It is mostly useful as a reference to check the balanced
// trees of the avl package against, and for small or randomly ordered data
// sets.
package bst

import (
	"fmt"

	"github.com/segmentio/avltree/container/tree"
)

// Tree is an unbalanced binary search tree of elements of type E.
//
// The zero-value is a valid empty tree which supports lookups and deletes, but
// must be initialized prior to inserting any elements.
type Tree[E any] struct {
	cmp  func(E, E) int
	root *node[E]
	len  int
}

type node[E any] struct {
	left  *node[E]
	right *node[E]
	value E
}

var _ tree.Interface[int] = (*Tree[int])(nil)

// New constructs a new tree using the comparison function passed as argument
// to order the elements.
func New[E any](cmp func(E, E) int) *Tree[E] {
	t := new(Tree[E])
	t.Init(cmp)
	return t
}

// Init initializes (or re-initializes) the tree with the given comparison
// function. Elements previously held by the tree are discarded.
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

// Insert inserts elem in the tree. Elements comparing equal to an existing one
// are placed in its left subtree.
//
// The tree must have been initialized by a call to New or Init or the call
// to Insert will panic.
//
// Complexity: O(h)
func (t *Tree[E]) Insert(elem E) {
	t.root = t.insert(t.root, elem)
	t.len++
}

func (t *Tree[E]) insert(n *node[E], elem E) *node[E] {
	if n == nil {
		return &node[E]{value: elem}
	}
	if t.cmp(elem, n.value) > 0 {
		n.right = t.insert(n.right, elem)
	} else {
		n.left = t.insert(n.left, elem)
	}
	return n
}

// Find returns the element of the tree comparing equal to elem.
//
// Complexity: O(h)
func (t *Tree[E]) Find(elem E) (match E, found bool) {
	for n := t.root; n != nil; {
		switch cmp := t.cmp(elem, n.value); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	return match, false
}

// Contains returns true if an element equal to elem exists in the tree.
func (t *Tree[E]) Contains(elem E) bool {
	_, found := t.Find(elem)
	return found
}

// Delete removes one element equal to elem from the tree. If no such element
// exists, the tree is not modified. The method returns whether an element was
// removed.
//
// A node with two children is replaced by its in-order successor, the
// smallest element of its right subtree.
//
// Complexity: O(h)
func (t *Tree[E]) Delete(elem E) (deleted bool) {
	t.root, deleted = t.delete(t.root, elem)
	if deleted {
		t.len--
	}
	return deleted
}

func (t *Tree[E]) delete(n *node[E], elem E) (*node[E], bool) {
	if n == nil {
		return nil, false
	}
	deleted := false
	switch cmp := t.cmp(elem, n.value); {
	case cmp < 0:
		n.left, deleted = t.delete(n.left, elem)
	case cmp > 0:
		n.right, deleted = t.delete(n.right, elem)
	default:
		if n.right == nil {
			return n.left, true
		}
		if n.left == nil {
			return n.right, true
		}
		var successor *node[E]
		n.right, successor = deleteMin(n.right)
		successor.left, successor.right = n.left, n.right
		return successor, true
	}
	return n, deleted
}

// deleteMin detaches the smallest node of the subtree rooted at n, returning
// the new subtree root and the detached node.
func deleteMin[E any](n *node[E]) (root, min *node[E]) {
	if n.left == nil {
		return n.right, n
	}
	n.left, min = deleteMin(n.left)
	return n, min
}

// Min returns the smallest element of the tree.
//
// Complexity: O(h)
func (t *Tree[E]) Min() (min E, found bool) {
	if n := t.root; n != nil {
		for n.left != nil {
			n = n.left
		}
		return n.value, true
	}
	return min, false
}

// Max returns the largest element of the tree.
//
// Complexity: O(h)
func (t *Tree[E]) Max() (max E, found bool) {
	if n := t.root; n != nil {
		for n.right != nil {
			n = n.right
		}
		return n.value, true
	}
	return max, false
}

// Height returns the number of edges on the longest path from the root to a
// leaf. A tree with a single element has a height of zero, the empty tree a
// height of -1.
//
// Complexity: O(N)
func (t *Tree[E]) Height() int { return height(t.root) }

func height[E any](n *node[E]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.left), height(n.right))
}

// PreOrder calls f for each element, visiting nodes before their subtrees. If
// f returns false, the iteration is stopped.
//
// Complexity: O(N)
func (t *Tree[E]) PreOrder(f func(E) bool) { preorder(t.root, f) }

// InOrder calls f for each element in ascending order. If f returns false, the
// iteration is stopped.
//
// Complexity: O(N)
func (t *Tree[E]) InOrder(f func(E) bool) { inorder(t.root, f) }

// PostOrder calls f for each element, visiting nodes after their subtrees. If
// f returns false, the iteration is stopped.
//
// Complexity: O(N)
func (t *Tree[E]) PostOrder(f func(E) bool) { postorder(t.root, f) }

// Range is an alias of InOrder.
func (t *Tree[E]) Range(f func(E) bool) { inorder(t.root, f) }

func preorder[E any](n *node[E], f func(E) bool) bool {
	return n == nil || (f(n.value) && preorder(n.left, f) && preorder(n.right, f))
}

func inorder[E any](n *node[E], f func(E) bool) bool {
	return n == nil || (inorder(n.left, f) && f(n.value) && inorder(n.right, f))
}

func postorder[E any](n *node[E], f func(E) bool) bool {
	return n == nil || (postorder(n.left, f) && postorder(n.right, f) && f(n.value))
}

// String returns a rendering of the tree structure.
func (t *Tree[E]) String() string {
	return tree.Render(t.root,
		func(n *node[E]) string { return fmt.Sprint(n.value) },
		func(n *node[E], i int) *node[E] {
			if i == 0 {
				return n.left
			}
			return n.right
		},
	)
}
