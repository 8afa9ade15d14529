package tree

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/simpledt/dataset"
)

// String renders the tree with attribute indexes.
func (n *Node) String() string {
	return n.Format(nil)
}

// Format renders the tree one node per line. When attrs covers a split
// attribute its name is printed instead of the index, and branch values are
// annotated with their descriptions.
//
//	[cap-shape]
//	|__convex (x): e
//	|__bell (b)
//	   [odor]
//	   |__none (n): e
//	   |__foul (f): p
func (n *Node) Format(attrs []dataset.Attribute) string {
	var sb strings.Builder
	if n == nil {
		sb.WriteString("<empty>\n")
		return sb.String()
	}
	n.format(&sb, attrs, "")
	return sb.String()
}

func (n *Node) format(sb *strings.Builder, attrs []dataset.Attribute, indent string) {
	if n.kind == LeafNode {
		fmt.Fprintf(sb, "%s%s\n", indent, n.label)
		return
	}
	fmt.Fprintf(sb, "%s[%s]\n", indent, attributeName(attrs, n.attribute))
	for _, v := range n.values {
		child := n.children[v]
		branch := describeValue(attrs, n.attribute, v)
		if child.kind == LeafNode {
			fmt.Fprintf(sb, "%s|__%s: %s\n", indent, branch, child.label)
			continue
		}
		fmt.Fprintf(sb, "%s|__%s\n", indent, branch)
		child.format(sb, attrs, indent+"   ")
	}
}

func attributeName(attrs []dataset.Attribute, index int) string {
	if index < len(attrs) && attrs[index].Name != "" {
		return attrs[index].Name
	}
	return fmt.Sprintf("attr %d", index)
}

func describeValue(attrs []dataset.Attribute, index int, value string) string {
	if index < len(attrs) {
		if d := attrs[index].Describe(value); d != value {
			return fmt.Sprintf("%s (%s)", d, value)
		}
	}
	return value
}
