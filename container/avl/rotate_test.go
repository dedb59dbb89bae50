package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(v int) *node[int] { return &node[int]{value: v} }

func branch(v int, l, r *node[int]) *node[int] {
	return &node[int]{value: v, link: [2]*node[int]{l, r}}
}

func preorderValues(n *node[int]) []int {
	if n == nil {
		return nil
	}
	values := []int{n.value}
	values = append(values, preorderValues(n.link[left])...)
	return append(values, preorderValues(n.link[right])...)
}

func inorderValues(n *node[int]) []int {
	var values []int
	inorder(n, func(v int) bool {
		values = append(values, v)
		return true
	})
	return values
}

func TestDir(t *testing.T) {
	assert.Equal(t, right, left.opposite())
	assert.Equal(t, left, right.opposite())
	assert.Equal(t, -1, left.sign())
	assert.Equal(t, +1, right.sign())
	assert.Equal(t, "left", left.String())
	assert.Equal(t, "right", right.String())
}

func TestRotate(t *testing.T) {
	tests := []struct {
		scenario string
		dir      dir
		preorder []int
	}{
		{
			scenario: "rotating left promotes the right child",
			dir:      left,
			preorder: []int{4, 2, 1, 3, 5},
		},
		{
			scenario: "rotating right promotes the left child",
			dir:      right,
			preorder: []int{2, 1, 4, 3, 5},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			//	    2
			//	   / \
			//	  1   4
			//	     / \
			//	    3   5
			root := branch(2, leaf(1), branch(4, leaf(3), leaf(5)))
			if test.dir == right {
				//	      4
				//	     / \
				//	    2   5
				//	   / \
				//	  1   3
				root = branch(4, branch(2, leaf(1), leaf(3)), leaf(5))
			}

			top := rotate(root, test.dir)
			assert.Equal(t, test.preorder, preorderValues(top))
			assert.Equal(t, []int{1, 2, 3, 4, 5}, inorderValues(top))
		})
	}
}

func TestRotateTwice(t *testing.T) {
	//	  3
	//	 /
	//	1
	//	 \
	//	  2
	root := branch(3, branch(1, nil, leaf(2)), nil)

	top := rotateTwice(root, right)
	assert.Equal(t, []int{2, 1, 3}, preorderValues(top))

	//	1
	//	 \
	//	  3
	//	 /
	//	2
	root = branch(1, nil, branch(3, leaf(2), nil))

	top = rotateTwice(root, left)
	assert.Equal(t, []int{2, 1, 3}, preorderValues(top))
}

func TestRotateHeight(t *testing.T) {
	root := branch(1, nil, branch(2, nil, leaf(3)))
	root.link[right].balance = 1
	root.balance = 2

	top := rotateHeight(root, left)
	require.Equal(t, 2, top.value)
	assert.Equal(t, 1, top.balance)
	assert.Equal(t, 0, top.link[left].balance)
	assert.Equal(t, 0, top.link[right].balance)
}

func TestRotateTwiceHeight(t *testing.T) {
	root := branch(3, branch(1, nil, leaf(2)), nil)
	root.link[left].balance = 1
	root.balance = 2

	top := rotateTwiceHeight(root, right)
	require.Equal(t, []int{2, 1, 3}, preorderValues(top))
	assert.Equal(t, 1, top.balance)
	assert.Equal(t, 0, top.link[left].balance)
	assert.Equal(t, 0, top.link[right].balance)
}

func TestAdjustBalance(t *testing.T) {
	tests := []struct {
		scenario    string
		grandchild  int
		rootBalance int
		childBal    int
	}{
		{
			scenario:    "an even grandchild leaves both nodes even",
			grandchild:  0,
			rootBalance: 0,
			childBal:    0,
		},
		{
			scenario:    "a grandchild leaning toward the grown side tips the root the other way",
			grandchild:  -1,
			rootBalance: +1,
			childBal:    0,
		},
		{
			scenario:    "a grandchild leaning away from the grown side tips the child toward it",
			grandchild:  +1,
			rootBalance: 0,
			childBal:    -1,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			nn := leaf(2)
			nn.balance = test.grandchild
			n := branch(1, nil, nn)
			root := branch(3, n, nil)

			adjustBalance(root, left, left.sign())
			assert.Equal(t, test.rootBalance, root.balance)
			assert.Equal(t, test.childBal, n.balance)
			assert.Equal(t, 0, nn.balance)
		})
	}
}
