package render

import (
	"sort"
	"strings"
)

// fakeNode is an in-memory tree node for exercising the renderer without a
// real presentation layer.
type fakeNode struct {
	tag      string // "" for text nodes
	text     string
	attrs    map[string]string
	parent   *fakeNode
	children []*fakeNode
}

type fakeOutput struct{}

func (fakeOutput) Element(tag string) Node {
	return &fakeNode{tag: tag, attrs: map[string]string{}}
}

func (fakeOutput) Text(s string) Node {
	return &fakeNode{text: s}
}

func (fakeOutput) SetAttr(n Node, key, val string) {
	n.(*fakeNode).attrs[key] = val
}

func (fakeOutput) AppendChild(parent, child Node) {
	p, c := parent.(*fakeNode), child.(*fakeNode)
	if old := c.parent; old != nil {
		for i, sib := range old.children {
			if sib == c {
				old.children = append(old.children[:i], old.children[i+1:]...)
				break
			}
		}
	}
	c.parent = p
	p.children = append(p.children, c)
}

func (fakeOutput) MoveChildren(from, to Node) {
	f, t := from.(*fakeNode), to.(*fakeNode)
	for _, c := range f.children {
		c.parent = t
	}
	t.children = append(t.children, f.children...)
	f.children = nil
}

// dump renders a node as compact markup: <tag k="v">children</tag>.
func dump(n Node) string {
	var b strings.Builder
	dumpTo(&b, n.(*fakeNode))
	return b.String()
}

func dumpAll(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = dump(n)
	}
	return strings.Join(parts, "")
}

func dumpTo(b *strings.Builder, n *fakeNode) {
	if n.tag == "" {
		b.WriteString(n.text)
		return
	}
	b.WriteString("<" + n.tag)
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + "=\"" + n.attrs[k] + "\"")
	}
	b.WriteString(">")
	for _, c := range n.children {
		dumpTo(b, c)
	}
	b.WriteString("</" + n.tag + ">")
}
