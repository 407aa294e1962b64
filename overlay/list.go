package overlay

import (
	"fmt"
	"strconv"

	"github.com/eth2030/merklepartial/gindex"
	"github.com/eth2030/merklepartial/ssz"
)

// MaxListCapacity is the largest capacity whose tree still fits 64-bit
// generalized indices.
const MaxListCapacity = 1 << 62

// List is the overlay of a variable-length list holding up to Capacity
// elements of one element type.
//
// The list root has the data subtree on its left and the length leaf on its
// right:
//
//	            root(0)
//	          /         \
//	     data_root(1)  len(2)
//	       /   \
//	     . . . . .  <= intermediate nodes
//	     / \   / \
//	    x   x x   x <= leaf nodes
//
// The leaves sit at depth Height(). Only the left half of that level belongs
// to the data subtree; the right half lies under the length leaf and is
// unattached.
type List struct {
	elem     Overlay
	capacity uint64
	height   uint8
}

// NewList returns the overlay of a list of up to capacity elements of elem.
// It panics if elem is nil or capacity exceeds MaxListCapacity.
func NewList(elem Overlay, capacity uint64) *List {
	if elem == nil {
		panic("overlay: list element type is nil")
	}
	if capacity > MaxListCapacity {
		panic(fmt.Sprintf("overlay: list capacity %d exceeds %d", capacity, uint64(MaxListCapacity)))
	}
	slots := gindex.NextPowerOfTwo(capacity)
	return &List{
		elem:     elem,
		capacity: capacity,
		height:   gindex.LogBaseTwo(slots) + 1,
	}
}

// Elem returns the element type.
func (l *List) Elem() Overlay { return l.elem }

// Capacity returns the maximum number of elements.
func (l *List) Capacity() uint64 { return l.capacity }

// Height is the data tree height plus one level for the split between the
// data root and the length leaf.
func (l *List) Height() uint8 { return l.height }

// FirstLeaf returns 2^h - 1, the first index at depth h.
func (l *List) FirstLeaf() gindex.Index {
	return 1<<l.height - 1
}

// LastLeaf returns 2^h + 2^(h-1) - 2: the first leaf plus half of the
// leaves at depth h, less one.
func (l *List) LastLeaf() gindex.Index {
	return 1<<l.height + 1<<(l.height-1) - 2
}

func (l *List) String() string {
	return "List[" + l.elem.String() + ", " + strconv.FormatUint(l.capacity, 10) + "]"
}

// GetNode classifies index within the list's tree. Indices past the list's
// own leaves are resolved by the element type when they fall under one of
// the data leaves.
func (l *List) GetNode(index gindex.Index) Node {
	firstLeaf := l.FirstLeaf()
	lastLeaf := l.LastLeaf()
	const firstInternal = 3
	lastInternal := gindex.Index(1)<<l.height - 2

	switch {
	case index == 0:
		return CompositeNode("", 0, l.height)
	case index == 1:
		return IntermediateNode(1)
	case index == 2:
		return LengthLeaf(2)
	case index >= firstInternal && index <= lastInternal:
		return IntermediateNode(index)
	case index >= firstLeaf && index <= lastLeaf:
		return l.dataLeaf(index)
	}

	// Either index lies inside the subtree of one of the data leaves or it
	// is not attached to this tree at all.
	subtreeRoot := gindex.RootFromDepth(index, gindex.RelativeDepth(firstLeaf, index))
	if subtreeRoot < firstLeaf || subtreeRoot > lastLeaf {
		return UnattachedNode(index)
	}
	local := gindex.GeneralIndexToSubtree(subtreeRoot, index)
	return ReplaceIndex(l.elem.GetNode(local), index)
}

// dataLeaf returns the node for a leaf index within [FirstLeaf, LastLeaf].
func (l *List) dataLeaf(index gindex.Index) Node {
	pos := index - l.FirstLeaf()
	root := mustElementRoot(l.elem)
	if root.Kind == KindComposite {
		return CompositeNode(strconv.FormatUint(pos, 10), index, root.Height)
	}

	size := root.Basics[0].Size
	if size == 0 || size > ssz.BytesPerChunk {
		panic(fmt.Sprintf("overlay: element %s has size %d", l.elem, size))
	}
	perChunk := ssz.BytesPerChunk / size
	basics := make([]Basic, perChunk)
	for i := range basics {
		basics[i] = Basic{
			Ident:  strconv.FormatUint(pos*uint64(perChunk)+uint64(i), 10),
			Index:  index,
			Size:   size,
			Offset: uint8(i) * size,
		}
	}
	return BasicLeaf(index, basics...)
}
