// Package gindex implements generalized-index arithmetic for SSZ merkle
// trees.
//
// A generalized index addresses a node of an implicit, unbounded complete
// binary tree. The root of the value being merkleized is index 0 and the
// children of node i are 2i+1 and 2i+2, so every level d holds the indices
// [2^d - 1, 2^(d+1) - 2]. None of the functions here materialize a tree;
// they only move between positions.
//
// Indices are 64 bits wide. Arithmetic that would leave that range is a
// caller contract violation: capacities and nesting must be chosen so the
// deepest addressable node still fits in a uint64.
package gindex

import (
	"fmt"
	"math"
	"math/bits"
)

// Index is a generalized index.
type Index = uint64

// Root is the index of the whole value's root node.
const Root Index = 0

// IsPowerOfTwo reports whether n is a non-zero power of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. NextPowerOfTwo(0)
// is 1.
func NextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}

// LogBaseTwo returns e such that 2^e == p. It panics if p is not a power of
// two.
func LogBaseTwo(p uint64) uint8 {
	if !IsPowerOfTwo(p) {
		panic(fmt.Sprintf("gindex: %d is not a power of two", p))
	}
	return uint8(bits.TrailingZeros64(p))
}

// Depth returns the level of index below the root, floor(log2(index+1)).
func Depth(index Index) uint8 {
	if index == math.MaxUint64 {
		return 64
	}
	return uint8(bits.Len64(index+1) - 1)
}

// RelativeDepth returns the number of levels separating index from
// ancestor. The result is only meaningful when index lies at or below the
// level of ancestor.
func RelativeDepth(ancestor, index Index) uint8 {
	return Depth(index) - Depth(ancestor)
}

// RootFromDepth returns the ancestor of index that sits depth levels above
// it. Walking past the root saturates at the root.
func RootFromDepth(index Index, depth uint8) Index {
	for ; depth > 0 && index > 0; depth-- {
		index = Parent(index)
	}
	return index
}

// GeneralIndexToSubtree rebases index into the local numbering of the
// subtree rooted at root, so that root itself maps to 0 and its children to
// 1 and 2. index must be a descendant of root (or root itself).
func GeneralIndexToSubtree(root, index Index) Index {
	d := RelativeDepth(root, index)
	return index - root<<d
}

// Parent returns the parent of index. The root is its own parent.
func Parent(index Index) Index {
	if index == 0 {
		return 0
	}
	return (index - 1) / 2
}

// LeftChild returns the left child of index.
func LeftChild(index Index) Index {
	return 2*index + 1
}

// RightChild returns the right child of index.
func RightChild(index Index) Index {
	return 2*index + 2
}

// Sibling returns the other child of index's parent. The root has no
// sibling and is returned unchanged.
func Sibling(index Index) Index {
	switch {
	case index == 0:
		return 0
	case index%2 == 1:
		return index + 1
	default:
		return index - 1
	}
}
