// Package avl contains two implementations of AVL trees, binary search trees
// which keep the heights of the two subtrees of every node within one of each
// other by applying local rotations after each insertion and removal.
//
// Tree stores a balance factor in each node: the height of its right subtree
// minus the height of its left subtree, which is always -1, 0 or +1 once a
// call has returned. Insertions and removals report to their caller whether the
// height of the subtree they modified changed, which lets the rebalancing stop
// as early as possible on the way back to the root.
//
// HeightTree stores the exact height of each subtree instead, recomputing it
// after every structural change and detecting imbalance by comparing the
// heights of the two children of a node.
//
// Both trees accept duplicate elements, which are placed in the right subtree
// of the elements they compare equal to. Removing an element which does not
// exist in a tree is a no-op.
//
// Trees are not safe to use concurrently from multiple goroutines; programs
// that share a tree must synchronize accesses to it.
package avl
