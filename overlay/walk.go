package overlay

import (
	"iter"

	"github.com/eth2030/merklepartial/gindex"
)

// MaxWalkDepth is the deepest level Walk descends to.
const MaxWalkDepth = 62

// Walk visits the attached nodes of o breadth-first, starting at the root
// and descending at most depth levels. Nested element subtrees are followed
// through GetNode like any other index. Walk stops early when fn returns
// false.
//
// The number of nodes grows with 2^depth; callers pick depth accordingly.
// depth is capped at MaxWalkDepth so child indices stay in range.
func Walk(o Overlay, depth uint8, fn func(Node) bool) {
	depth = min(depth, MaxWalkDepth)
	queue := []gindex.Index{gindex.Root}
	for len(queue) > 0 {
		index := queue[0]
		queue = queue[1:]

		node := o.GetNode(index)
		if !node.Attached() {
			continue
		}
		if !fn(node) {
			return
		}
		if node.IsLeaf() || gindex.Depth(index) >= depth {
			continue
		}
		queue = append(queue, gindex.LeftChild(index), gindex.RightChild(index))
	}
}

// Leaves yields the data leaves of o's own tree, from FirstLeaf to
// LastLeaf. For a list of composites these are the element roots.
func Leaves(o Overlay) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for index := o.FirstLeaf(); ; index++ {
			if !yield(o.GetNode(index)) || index == o.LastLeaf() {
				return
			}
		}
	}
}
