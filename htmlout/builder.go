// Package htmlout materializes renderer output as golang.org/x/net/html
// node trees.
package htmlout

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/rtfdom/render"
)

// Builder implements render.Output with *html.Node values.
type Builder struct{}

// NewBuilder returns an HTML node builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Element creates an element node. Known tag names get their atom.
func (b *Builder) Element(tag string) render.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// Text creates a text node.
func (b *Builder) Text(s string) render.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// SetAttr sets or replaces an attribute.
func (b *Builder) SetAttr(n render.Node, key, val string) {
	node := n.(*html.Node)
	for i := range node.Attr {
		if node.Attr[i].Namespace == "" && node.Attr[i].Key == key {
			node.Attr[i].Val = val
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: val})
}

// AppendChild appends child to parent, detaching it from its current parent.
func (b *Builder) AppendChild(parent, child render.Node) {
	c := child.(*html.Node)
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	parent.(*html.Node).AppendChild(c)
}

// MoveChildren moves every child of from to the end of to, keeping order.
func (b *Builder) MoveChildren(from, to render.Node) {
	src, dst := from.(*html.Node), to.(*html.Node)
	for c := src.FirstChild; c != nil; {
		next := c.NextSibling
		src.RemoveChild(c)
		dst.AppendChild(c)
		c = next
	}
}

// Render writes the nodes as HTML in order.
func Render(w io.Writer, nodes []render.Node) error {
	for i, n := range nodes {
		node, ok := n.(*html.Node)
		if !ok {
			return fmt.Errorf("htmlout: node %d is %T, not *html.Node", i, n)
		}
		if err := html.Render(w, node); err != nil {
			return fmt.Errorf("rendering node %d: %w", i, err)
		}
	}
	return nil
}

// String renders the nodes to a string.
func String(nodes []render.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, nodes); err != nil {
		return "", err
	}
	return buf.String(), nil
}
