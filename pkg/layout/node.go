package layout

import (
	"fmt"
	"strings"
)

// Node is the layout output for one component occurrence in a frame.
//
// A parent lays out each child into a node obtained from NewChild, then
// positions it with SetOffset. The tree mirrors the component tree for a
// single frame and is discarded after draw.
type Node struct {
	size     Size
	offset   Offset
	label    string
	depth    int
	limit    int
	children []*Node
}

// NewNode returns an empty root node.
func NewNode() *Node {
	return &Node{}
}

// Size returns the resolved size recorded for this node.
func (n *Node) Size() Size {
	return n.size
}

// SetSize records the resolved size.
func (n *Node) SetSize(size Size) {
	n.size = size
}

// Offset returns the position relative to the parent node.
func (n *Node) Offset() Offset {
	return n.offset
}

// SetOffset positions the node relative to its parent.
func (n *Node) SetOffset(offset Offset) {
	n.offset = offset
}

// Rect returns the node's rectangle in parent coordinates.
func (n *Node) Rect() Rect {
	return RectFromOffsetSize(n.offset, n.size)
}

// Label returns the debug label, typically the component type name.
func (n *Node) Label() string {
	return n.label
}

// SetLabel sets the debug label printed by String.
func (n *Node) SetLabel(label string) {
	n.label = label
}

// NewChild appends a fresh child node and returns it.
func (n *Node) NewChild() *Node {
	child := &Node{depth: n.depth + 1, limit: n.limit}
	n.children = append(n.children, child)
	return child
}

// Depth returns the distance from the root node.
func (n *Node) Depth() int {
	return n.depth
}

// SetDepthLimit sets the maximum depth inherited by children created
// afterwards. Zero means no limit.
func (n *Node) SetDepthLimit(limit int) {
	n.limit = limit
}

// ExceedsDepth reports whether the node sits deeper than its limit.
func (n *Node) ExceedsDepth() bool {
	return n.limit > 0 && n.depth > n.limit
}

// Child returns the i-th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the child nodes in layout order.
func (n *Node) Children() []*Node {
	return n.children
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Reset clears the size and children but keeps the offset, which belongs
// to the parent. Laying out into a reset node twice with the same inputs
// produces identical trees.
func (n *Node) Reset() {
	n.size = Size{}
	n.label = ""
	clear(n.children)
	n.children = n.children[:0]
}

// Count returns the number of nodes in the subtree, including n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Equal reports whether two trees have identical sizes, offsets and shape.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.size != other.size || n.offset != other.offset || len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// String returns an indented dump of the tree.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if n.label != "" {
		sb.WriteString(n.label)
		sb.WriteString(" ")
	}
	fmt.Fprintf(sb, "%s\n", n.Rect())
	for _, c := range n.children {
		c.dump(sb, depth+1)
	}
}
