package overlay

import (
	"fmt"
	"slices"
	"strings"

	"github.com/eth2030/merklepartial/gindex"
)

// NodeKind tags the variant held by a Node.
type NodeKind uint8

const (
	// KindUnattached marks an index with no node for the queried type.
	KindUnattached NodeKind = iota
	// KindComposite is the root of a container's subtree.
	KindComposite
	// KindIntermediate is a hashing node with no payload of its own.
	KindIntermediate
	// KindBasicLeaf is a data chunk holding one or more packed scalars.
	KindBasicLeaf
	// KindLengthLeaf is the chunk mixing in a list's element count.
	KindLengthLeaf
	// KindPaddingLeaf is a zero chunk carrying no data.
	KindPaddingLeaf
)

// String returns the lowercase name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindUnattached:
		return "unattached"
	case KindComposite:
		return "composite"
	case KindIntermediate:
		return "intermediate"
	case KindBasicLeaf:
		return "basic"
	case KindLengthLeaf:
		return "length"
	case KindPaddingLeaf:
		return "padding"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// LengthIdent is the identifier carried by every length leaf.
const LengthIdent = "len"

// Basic describes one scalar value packed into a leaf chunk.
type Basic struct {
	// Ident is the field name or the element position as decimal text.
	Ident string
	// Index is the generalized index of the enclosing leaf.
	Index gindex.Index
	// Size is the width of the value in bytes.
	Size uint8
	// Offset is the byte offset of the value within its chunk.
	Offset uint8
}

func (b Basic) String() string {
	return fmt.Sprintf("%q@%d+%d", b.Ident, b.Offset, b.Size)
}

// Node classifies what occupies a generalized index for a given type.
//
// Only the fields relevant to Kind are populated: Ident and Height for
// composites, Basics for basic leaves (one entry per packed value) and for
// length leaves (exactly one entry). Index is set for every kind.
type Node struct {
	Kind   NodeKind
	Index  gindex.Index
	Ident  string
	Height uint8
	Basics []Basic
}

// CompositeNode returns the root node of a container subtree.
func CompositeNode(ident string, index gindex.Index, height uint8) Node {
	return Node{Kind: KindComposite, Index: index, Ident: ident, Height: height}
}

// IntermediateNode returns a pure hashing node.
func IntermediateNode(index gindex.Index) Node {
	return Node{Kind: KindIntermediate, Index: index}
}

// BasicLeaf returns a data leaf. All basics must share index.
func BasicLeaf(index gindex.Index, basics ...Basic) Node {
	return Node{Kind: KindBasicLeaf, Index: index, Basics: basics}
}

// LengthLeaf returns the length leaf of a variable-length container at
// index.
func LengthLeaf(index gindex.Index) Node {
	return Node{
		Kind:  KindLengthLeaf,
		Index: index,
		Basics: []Basic{{
			Ident:  LengthIdent,
			Index:  index,
			Size:   32,
			Offset: 0,
		}},
	}
}

// PaddingLeaf returns an empty leaf.
func PaddingLeaf(index gindex.Index) Node {
	return Node{Kind: KindPaddingLeaf, Index: index}
}

// UnattachedNode reports that nothing exists at index.
func UnattachedNode(index gindex.Index) Node {
	return Node{Kind: KindUnattached, Index: index}
}

// IsLeaf reports whether n is a basic, length or padding leaf.
func (n Node) IsLeaf() bool {
	switch n.Kind {
	case KindBasicLeaf, KindLengthLeaf, KindPaddingLeaf:
		return true
	}
	return false
}

// Attached reports whether n is anything other than Unattached.
func (n Node) Attached() bool {
	return n.Kind != KindUnattached
}

// Equal reports whether n and o describe the same node.
func (n Node) Equal(o Node) bool {
	return n.Kind == o.Kind &&
		n.Index == o.Index &&
		n.Ident == o.Ident &&
		n.Height == o.Height &&
		slices.Equal(n.Basics, o.Basics)
}

func (n Node) String() string {
	switch n.Kind {
	case KindComposite:
		return fmt.Sprintf("composite(%d ident=%q height=%d)", n.Index, n.Ident, n.Height)
	case KindBasicLeaf, KindLengthLeaf:
		parts := make([]string, len(n.Basics))
		for i, b := range n.Basics {
			parts[i] = b.String()
		}
		return fmt.Sprintf("%s(%d [%s])", n.Kind, n.Index, strings.Join(parts, " "))
	default:
		return fmt.Sprintf("%s(%d)", n.Kind, n.Index)
	}
}

// ReplaceIndex returns a copy of node with every positional index set to
// index. Identifiers, sizes and offsets are kept. It is applied to nodes
// returned from a nested element so they carry the caller's global index
// instead of the element-local one.
func ReplaceIndex(node Node, index gindex.Index) Node {
	node.Index = index
	if node.Basics != nil {
		basics := make([]Basic, len(node.Basics))
		for i, b := range node.Basics {
			b.Index = index
			basics[i] = b
		}
		node.Basics = basics
	}
	return node
}
