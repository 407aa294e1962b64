// Package overlay maps generalized indices onto the merkle tree of an SSZ
// type without building the tree.
//
// Every type, basic or composite, is described by an Overlay. Asking an
// Overlay for the node at a generalized index classifies that position as
// the type's root, an intermediate hashing node, a data leaf (possibly
// several packed scalars), a length leaf, or Unattached. Composite overlays
// answer for positions inside their elements by translating the index into
// the element's own numbering and asking the element's Overlay, so nesting
// composes to any depth.
//
// Overlays are immutable once built and safe for concurrent use.
package overlay

import (
	"fmt"
	"strconv"

	"github.com/eth2030/merklepartial/gindex"
)

// Overlay describes the merkle tree shape of one SSZ type.
type Overlay interface {
	// Height is the number of levels between the type's root and its
	// deepest own leaves.
	Height() uint8
	// FirstLeaf is the generalized index of the first data leaf.
	FirstLeaf() gindex.Index
	// LastLeaf is the generalized index of the last data leaf.
	LastLeaf() gindex.Index
	// GetNode classifies index. Every index has an answer; indices with no
	// node yield KindUnattached.
	GetNode(index gindex.Index) Node
	// String returns the type expression, as accepted by ParseType.
	String() string
}

// basic is the overlay of a fixed-width scalar. A scalar is its own single
// leaf at index 0.
type basic struct {
	name string
	size uint8
}

// Overlays of the SSZ basic types.
var (
	Bool    Overlay = basic{"bool", 1}
	Uint8   Overlay = basic{"uint8", 1}
	Uint16  Overlay = basic{"uint16", 2}
	Uint32  Overlay = basic{"uint32", 4}
	Uint64  Overlay = basic{"uint64", 8}
	Uint128 Overlay = basic{"uint128", 16}
	Uint256 Overlay = basic{"uint256", 32}
	// Usize is the native word, as wide as Go's uint.
	Usize Overlay = basic{"usize", strconv.IntSize / 8}
)

var basicTypes = map[string]Overlay{
	"bool":    Bool,
	"uint8":   Uint8,
	"uint16":  Uint16,
	"uint32":  Uint32,
	"uint64":  Uint64,
	"uint128": Uint128,
	"uint256": Uint256,
	"usize":   Usize,
}

// BasicType returns the overlay of the named basic type.
func BasicType(name string) (Overlay, bool) {
	o, ok := basicTypes[name]
	return o, ok
}

func (basic) Height() uint8 { return 0 }

func (basic) FirstLeaf() gindex.Index { return 0 }

func (basic) LastLeaf() gindex.Index { return 0 }

func (b basic) String() string { return b.name }

func (b basic) GetNode(index gindex.Index) Node {
	if index != 0 {
		return UnattachedNode(index)
	}
	return BasicLeaf(0, Basic{Ident: "", Index: 0, Size: b.size, Offset: 0})
}

// mustElementRoot returns the node at the root of an element type, which
// must be either a single basic leaf or a composite.
func mustElementRoot(elem Overlay) Node {
	root := elem.GetNode(0)
	switch root.Kind {
	case KindComposite:
		return root
	case KindBasicLeaf:
		if len(root.Basics) != 1 {
			panic(fmt.Sprintf("overlay: element %s has %d values at its root, want 1", elem, len(root.Basics)))
		}
		return root
	default:
		panic(fmt.Sprintf("overlay: element %s has a %s root, want basic or composite", elem, root.Kind))
	}
}
