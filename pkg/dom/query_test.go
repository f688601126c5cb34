package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tagtree/pkg/dom"
)

func TestGetElementByAttribute_ImmediateChildrenOnly(t *testing.T) {
	t.Parallel()

	tree, ids := buildTestTree(t)

	found, ok := tree.GetElementByAttribute(ids["body"], "class", "x")
	require.True(t, ok)
	assert.Equal(t, ids["p"], found)

	// span is a grandchild of body and a child of div.
	_, ok = tree.GetElementByAttribute(ids["html"], "class", "x")
	assert.False(t, ok)

	found, ok = tree.GetElementByAttribute(ids["div"], "class", "x")
	require.True(t, ok)
	assert.Equal(t, ids["span"], found)
}

func TestGetElementByAttribute_NoMatch(t *testing.T) {
	t.Parallel()

	tree, ids := buildTestTree(t)

	found, ok := tree.GetElementByAttribute(ids["body"], "class", "y")
	assert.False(t, ok)
	assert.Equal(t, dom.NoNode, found)

	_, ok = tree.GetElementByAttribute(ids["body"], "id", "x")
	assert.False(t, ok)
}

func TestGetElementsByAttribute(t *testing.T) {
	t.Parallel()

	tree, ids := buildTestTree(t)

	assert.Equal(t, []dom.NodeID{ids["p"], ids["div"]},
		tree.GetElementsByAttribute(ids["body"], "class", "x"))
	assert.Empty(t, tree.GetElementsByAttribute(ids["html"], "class", "x"))
	assert.Empty(t, tree.GetElementsByAttribute(ids["title"], "class", "x"))
}

func TestFindByAttribute_SearchesSubtree(t *testing.T) {
	t.Parallel()

	tree, ids := buildTestTree(t)

	assert.Equal(t, []dom.NodeID{ids["p"], ids["div"], ids["span"]},
		tree.FindByAttribute(ids["html"], "class", "x"))

	// The starting node itself is excluded.
	assert.Empty(t, tree.FindByAttribute(ids["span"], "class", "x"))
}
