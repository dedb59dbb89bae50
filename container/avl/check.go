package avl

import (
	"errors"
	"fmt"
)

var (
	// ErrUnordered is returned by Check when the in-order sequence of a tree
	// decreases.
	ErrUnordered = errors.New("avl: elements out of order")

	// ErrUnbalanced is returned by Check when the heights of the two subtrees
	// of a node differ by more than one.
	ErrUnbalanced = errors.New("avl: subtree heights differ by more than one")

	// ErrBalance is returned by Check when the balance factor stored in a
	// node of a Tree does not match the heights of its subtrees.
	ErrBalance = errors.New("avl: stored balance factor does not match subtree heights")

	// ErrHeight is returned by Check when the height stored in a node of a
	// HeightTree does not match the height of its subtree.
	ErrHeight = errors.New("avl: stored height does not match subtree")

	// ErrLen is returned by Check when the element count of a tree does not
	// match the number of nodes.
	ErrLen = errors.New("avl: element count does not match number of nodes")
)

// Check verifies the invariants of the tree by walking all of its nodes and
// recomputing the heights of every subtree, independently of the balance
// factors stored in them.
//
// Complexity: O(N)
func (t *Tree[E]) Check() error {
	return check(t.root, t.cmp, t.len, func(n *node[E], lh, rh int) error {
		if n.balance != rh-lh {
			return fmt.Errorf("%w: value=%v balance=%d want=%d", ErrBalance, n.value, n.balance, rh-lh)
		}
		return nil
	})
}

// Check verifies the invariants of the tree by walking all of its nodes and
// recomputing the heights of every subtree, independently of the heights
// stored in them.
//
// Complexity: O(N)
func (t *HeightTree[E]) Check() error {
	return check(t.root, t.cmp, t.len, func(n *node[E], lh, rh int) error {
		if h := max(lh, rh) + 1; n.balance != h {
			return fmt.Errorf("%w: value=%v height=%d want=%d", ErrHeight, n.value, n.balance, h)
		}
		return nil
	})
}

func check[E any](root *node[E], cmp func(E, E) int, size int, visit func(*node[E], int, int) error) error {
	if root == nil {
		if size != 0 {
			return fmt.Errorf("%w: len=%d nodes=0", ErrLen, size)
		}
		return nil
	}

	count, first := 0, true
	var prev E
	var err error
	inorder(root, func(elem E) bool {
		if !first && cmp(prev, elem) > 0 {
			err = fmt.Errorf("%w: %v precedes %v", ErrUnordered, prev, elem)
			return false
		}
		prev, first = elem, false
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != size {
		return fmt.Errorf("%w: len=%d nodes=%d", ErrLen, size, count)
	}

	_, err = measure(root, visit)
	return err
}

// measure returns the height of the subtree rooted at n, computed from its
// structure only.
func measure[E any](n *node[E], visit func(*node[E], int, int) error) (int, error) {
	if n == nil {
		return -1, nil
	}
	lh, err := measure(n.link[left], visit)
	if err != nil {
		return 0, err
	}
	rh, err := measure(n.link[right], visit)
	if err != nil {
		return 0, err
	}
	if rh-lh > 1 || lh-rh > 1 {
		return 0, fmt.Errorf("%w: value=%v left=%d right=%d", ErrUnbalanced, n.value, lh, rh)
	}
	if err := visit(n, lh, rh); err != nil {
		return 0, err
	}
	return max(lh, rh) + 1, nil
}
