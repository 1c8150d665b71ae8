package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildrenVisitsFixedFieldOrderThenFallbackList(t *testing.T) {
	name := &Node{Kind: KindIdentifier, Text: "name"}
	typ := &Node{Kind: KindTypeNode, Text: "type"}
	expr := &Node{Kind: KindIdentifier, Text: "expr"}
	fallback := &Node{Kind: KindIdentifier, Text: "fallback"}

	n := &Node{Name: name, Type: typ, Expression: expr}
	n.AddChild(fallback)

	var order []string
	n.Children(func(c *Node) { order = append(order, c.Text) })

	require.Len(t, order, 4)
	assert.Equal(t, []string{"name", "type", "expr", "fallback"}, order)
}

func TestHasModifier(t *testing.T) {
	n := &Node{Modifiers: []Modifier{{Text: "public"}, {Text: "readonly"}}}
	assert.True(t, n.HasModifier("readonly"))
	assert.False(t, n.HasModifier("private"))
}

func TestIsFunctionLike(t *testing.T) {
	for _, k := range []Kind{KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction, KindMethodDeclaration, KindConstructor, KindGetAccessor, KindSetAccessor} {
		assert.True(t, (&Node{Kind: k}).IsFunctionLike(), "kind %v should be function-like", k)
	}
	assert.False(t, (&Node{Kind: KindClassDeclaration}).IsFunctionLike())
}

func TestChildrenSkipsNilFields(t *testing.T) {
	n := &Node{}
	var count int
	n.Children(func(*Node) { count++ })
	assert.Zero(t, count)
}
