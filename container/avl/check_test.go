package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segmentio/avltree/compare"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		scenario string
		corrupt  func(*Tree[int], *HeightTree[int])
		err      error
	}{
		{
			scenario: "swapping values breaks the ordering",
			corrupt: func(tr *Tree[int], ht *HeightTree[int]) {
				tr.root.value, tr.root.link[left].value = tr.root.link[left].value, tr.root.value
				ht.root.value, ht.root.link[left].value = ht.root.link[left].value, ht.root.value
			},
			err: ErrUnordered,
		},
		{
			scenario: "detaching a subtree unbalances the root",
			corrupt: func(tr *Tree[int], ht *HeightTree[int]) {
				tr.root.link[left] = nil
				ht.root.link[left] = nil
				tr.len, ht.len = 4, 4
			},
			err: ErrUnbalanced,
		},
		{
			scenario: "a wrong element count is detected",
			corrupt: func(tr *Tree[int], ht *HeightTree[int]) {
				tr.len++
				ht.len++
			},
			err: ErrLen,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			tr := New[int](compare.Function[int])
			ht := NewHeightTree[int](compare.Function[int])
			for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
				tr.Insert(v)
				ht.Insert(v)
			}
			assert.NoError(t, tr.Check())
			assert.NoError(t, ht.Check())

			test.corrupt(tr, ht)
			assert.ErrorIs(t, tr.Check(), test.err)
			assert.ErrorIs(t, ht.Check(), test.err)
		})
	}
}

func TestCheckStoredFields(t *testing.T) {
	tr := New[int](compare.Function[int])
	ht := NewHeightTree[int](compare.Function[int])
	for _, v := range []int{2, 1, 3} {
		tr.Insert(v)
		ht.Insert(v)
	}

	tr.root.balance = 1
	assert.ErrorIs(t, tr.Check(), ErrBalance)

	ht.root.balance = 5
	assert.ErrorIs(t, ht.Check(), ErrHeight)
}
