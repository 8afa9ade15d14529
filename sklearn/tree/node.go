package tree

import (
	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// NodeKind distinguishes leaves from internal nodes.
type NodeKind int

const (
	// LeafNode carries a class label.
	LeafNode NodeKind = iota
	// InternalNode splits on one attribute.
	InternalNode
)

func (k NodeKind) String() string {
	switch k {
	case LeafNode:
		return "leaf"
	case InternalNode:
		return "internal"
	default:
		return "unknown"
	}
}

// Node is a decision tree node. A leaf holds a label, possibly NoLabel. An
// internal node holds the index of the attribute it splits on and one child
// per observed value of that attribute, in first-seen order.
//
// Nodes are immutable after construction.
type Node struct {
	kind      NodeKind
	label     Label
	attribute int
	values    []string
	children  map[string]*Node
}

// NewLeaf returns a leaf predicting label.
func NewLeaf(label Label) *Node {
	return &Node{kind: LeafNode, label: label, attribute: -1}
}

// NewInternal returns a node splitting on attribute with children[i] as the
// subtree for values[i]. Values must be distinct and non-empty in number, and
// every child must be non-nil.
func NewInternal(attribute int, values []string, children []*Node) (*Node, error) {
	if attribute < 0 {
		return nil, errors.NewValidationError("attribute", "must be non-negative", attribute)
	}
	if len(values) == 0 {
		return nil, errors.NewValidationError("values", "an internal node needs at least one branch", len(values))
	}
	if len(values) != len(children) {
		return nil, errors.NewDimensionError("NewInternal", len(values), len(children), 0)
	}
	n := &Node{
		kind:      InternalNode,
		attribute: attribute,
		values:    make([]string, len(values)),
		children:  make(map[string]*Node, len(values)),
	}
	copy(n.values, values)
	for i, v := range values {
		if _, dup := n.children[v]; dup {
			return nil, errors.NewValidationError("values", "duplicate branch value", v)
		}
		if children[i] == nil {
			return nil, errors.NewValidationError("children", "nil subtree", v)
		}
		n.children[v] = children[i]
	}
	return n, nil
}

// Kind reports whether n is a leaf or an internal node.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// IsLeaf is shorthand for n.Kind() == LeafNode.
func (n *Node) IsLeaf() bool {
	return n.kind == LeafNode
}

// Label returns the label of a leaf, or NoLabel for an internal node.
func (n *Node) Label() Label {
	if n.kind != LeafNode {
		return NoLabel
	}
	return n.label
}

// Attribute returns the split attribute index of an internal node, or -1.
func (n *Node) Attribute() int {
	if n.kind != InternalNode {
		return -1
	}
	return n.attribute
}

// Values returns a copy of the branch values in first-seen order.
func (n *Node) Values() []string {
	out := make([]string, len(n.values))
	copy(out, n.values)
	return out
}

// Child returns the subtree for value.
func (n *Node) Child(value string) (*Node, bool) {
	c, ok := n.children[value]
	return c, ok
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil || n.kind == LeafNode {
		return 0
	}
	deepest := 0
	for _, c := range n.children {
		if d := c.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// NLeaves returns the number of leaves under n.
func (n *Node) NLeaves() int {
	if n == nil {
		return 0
	}
	if n.kind == LeafNode {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += c.NLeaves()
	}
	return total
}

// Walk visits n and its descendants depth first, children in branch order.
// depth is 0 at n. Returning false from fn prunes the walk below that node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, v := range n.values {
		n.children[v].walk(fn, depth+1)
	}
}
