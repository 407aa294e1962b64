package overlay

import (
	"slices"
	"testing"

	"github.com/eth2030/merklepartial/gindex"
	"github.com/stretchr/testify/require"
)

func walkIndices(o Overlay, depth uint8) []gindex.Index {
	var got []gindex.Index
	Walk(o, depth, func(n Node) bool {
		got = append(got, n.Index)
		return true
	})
	return got
}

func TestWalkList(t *testing.T) {
	l := NewList(Uint256, 2)
	require.Equal(t, []gindex.Index{0, 1, 2, 3, 4}, walkIndices(l, 10))
	require.Equal(t, []gindex.Index{0, 1, 2}, walkIndices(l, 1))
	require.Equal(t, []gindex.Index{0}, walkIndices(l, 0))
}

func TestWalkNestedList(t *testing.T) {
	l := NewList(NewList(Uint256, 2), 2)
	require.Equal(t,
		[]gindex.Index{0, 1, 2, 3, 4, 7, 8, 9, 10, 15, 16, 19, 20},
		walkIndices(l, 10),
	)

	var kinds []NodeKind
	Walk(l, 10, func(n Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})
	require.Equal(t, []NodeKind{
		KindComposite, KindIntermediate, KindLengthLeaf,
		KindComposite, KindComposite,
		KindIntermediate, KindLengthLeaf, KindIntermediate, KindLengthLeaf,
		KindBasicLeaf, KindBasicLeaf, KindBasicLeaf, KindBasicLeaf,
	}, kinds)
}

func TestWalkBasic(t *testing.T) {
	require.Equal(t, []gindex.Index{0}, walkIndices(Uint64, 5))
}

func TestWalkStops(t *testing.T) {
	l := NewList(Uint256, 1024)
	n := 0
	Walk(l, 64, func(Node) bool {
		n++
		return n < 5
	})
	require.Equal(t, 5, n)
}

func TestLeaves(t *testing.T) {
	l := NewList(Uint256, 8)
	var idents []string
	for n := range Leaves(l) {
		require.Equal(t, KindBasicLeaf, n.Kind)
		idents = append(idents, n.Basics[0].Ident)
	}
	require.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7"}, idents)

	nested := NewList(NewList(Uint8, 4), 3)
	var indices []gindex.Index
	for n := range Leaves(nested) {
		require.Equal(t, KindComposite, n.Kind)
		indices = append(indices, n.Index)
	}
	require.Equal(t, []gindex.Index{7, 8, 9, 10}, indices)

	basics := slices.Collect(Leaves(Bool))
	require.Len(t, basics, 1)
	requireNode(t, Bool.GetNode(0), basics[0])
}

func TestLeavesEarlyBreak(t *testing.T) {
	l := NewList(Uint256, 1<<40)
	n := 0
	for range Leaves(l) {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}
