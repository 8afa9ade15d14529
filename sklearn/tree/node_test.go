package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/simpledt/dataset"
)

func TestLabel(t *testing.T) {
	l := NewLabel("yes")
	assert.True(t, l.Is("yes"))
	assert.False(t, l.Is("no"))
	assert.Equal(t, "yes", l.String())

	assert.False(t, NoLabel.Is(""))
	assert.Equal(t, "<none>", NoLabel.String())
	assert.NotEqual(t, NewLabel(""), NoLabel)
}

func TestNewInternal(t *testing.T) {
	yes, no := NewLeaf(NewLabel("yes")), NewLeaf(NewLabel("no"))

	n, err := NewInternal(1, []string{"sunny", "rainy"}, []*Node{yes, no})
	require.NoError(t, err)
	assert.Equal(t, InternalNode, n.Kind())
	assert.False(t, n.IsLeaf())
	assert.Equal(t, 1, n.Attribute())
	assert.Equal(t, NoLabel, n.Label())

	child, ok := n.Child("rainy")
	require.True(t, ok)
	assert.Same(t, no, child)

	_, err = NewInternal(1, nil, nil)
	assert.Error(t, err)
	_, err = NewInternal(1, []string{"a", "a"}, []*Node{yes, no})
	assert.Error(t, err)
	_, err = NewInternal(1, []string{"a"}, []*Node{yes, no})
	assert.Error(t, err)
	_, err = NewInternal(1, []string{"a"}, []*Node{nil})
	assert.Error(t, err)
	_, err = NewInternal(-1, []string{"a"}, []*Node{yes})
	assert.Error(t, err)
}

func TestNodeImmutability(t *testing.T) {
	values := []string{"a", "b"}
	n, err := NewInternal(0, values, []*Node{NewLeaf(NewLabel("x")), NewLeaf(NewLabel("y"))})
	require.NoError(t, err)

	values[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, n.Values())

	got := n.Values()
	got[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, n.Values())
}

func TestLeaf(t *testing.T) {
	leaf := NewLeaf(NewLabel("p"))
	assert.Equal(t, LeafNode, leaf.Kind())
	assert.Equal(t, -1, leaf.Attribute())
	assert.Empty(t, leaf.Values())
	assert.Equal(t, 0, leaf.Depth())
	assert.Equal(t, 1, leaf.NLeaves())
	assert.Equal(t, "leaf", leaf.Kind().String())
}

func TestNodeFormat(t *testing.T) {
	root, err := BuildTree(weather(), []int{1}, 0, NoLabel)
	require.NoError(t, err)

	assert.Equal(t, "[attr 1]\n|__sunny: yes\n|__rainy: no\n", root.String())

	attrs := []dataset.Attribute{
		{Name: "play"},
		{Name: "outlook", Values: map[string]string{"sunny": "Sunny"}},
	}
	assert.Equal(t, "[outlook]\n|__Sunny (sunny): yes\n|__rainy: no\n", root.Format(attrs))

	var empty *Node
	assert.Equal(t, "<empty>\n", empty.Format(nil))
}

func TestNodeFormatNested(t *testing.T) {
	root, err := BuildTree(playTennis(), []int{0, 1, 2, 3}, tennisClass, NoLabel)
	require.NoError(t, err)

	want := "[attr 0]\n" +
		"|__sunny\n" +
		"   [attr 2]\n" +
		"   |__high: no\n" +
		"   |__normal: yes\n" +
		"|__overcast: yes\n" +
		"|__rain\n" +
		"   [attr 3]\n" +
		"   |__weak: yes\n" +
		"   |__strong: no\n"
	assert.Equal(t, want, root.String())
}

func TestNodeWalk(t *testing.T) {
	root, err := BuildTree(playTennis(), []int{0, 1, 2, 3}, tennisClass, NoLabel)
	require.NoError(t, err)

	var leaves, internal, maxDepth int
	root.Walk(func(n *Node, depth int) bool {
		if n.IsLeaf() {
			leaves++
		} else {
			internal++
		}
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	assert.Equal(t, 5, leaves)
	assert.Equal(t, 3, internal)
	assert.Equal(t, root.Depth(), maxDepth)

	visited := 0
	root.Walk(func(*Node, int) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}
