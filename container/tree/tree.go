// Package tree contains the contract shared by the ordered binary trees of the
// container packages, and generic helpers operating on them.
package tree

// Interface is implemented by ordered trees holding elements of type E.
//
// The avl and bst packages provide implementations with different balancing
// guarantees. None of them are safe to use concurrently from multiple
// goroutines.
type Interface[E any] interface {
	// Returns the number of elements in the tree.
	Len() int

	// Inserts an element in the tree. Duplicates are retained.
	Insert(elem E)

	// Returns true if an element comparing equal to elem exists in the tree.
	Contains(elem E) bool

	// Calls f for each element in the order defined by the comparison
	// function. If f returns false, the iteration is stopped.
	Range(f func(E) bool)
}

// Slice returns the elements of t in order.
//
// Complexity: O(N)
func Slice[E any](t Interface[E]) []E {
	elems := make([]E, 0, t.Len())
	t.Range(func(elem E) bool {
		elems = append(elems, elem)
		return true
	})
	return elems
}

// Sorted returns true if ranging over t yields a non-decreasing sequence
// according to cmp.
//
// Complexity: O(N)
func Sorted[E any](t Interface[E], cmp func(E, E) int) bool {
	sorted, first := true, true
	var prev E
	t.Range(func(elem E) bool {
		if !first && cmp(prev, elem) > 0 {
			sorted = false
		}
		prev, first = elem, false
		return sorted
	})
	return sorted
}
