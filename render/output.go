package render

// Node is an element or text node owned by an Output. The renderer only
// passes nodes back to the Output that created them.
type Node any

// Output constructs and links tree nodes.
type Output interface {
	// Element creates an unattached element with the given tag name.
	Element(tag string) Node
	// Text creates an unattached text node.
	Text(s string) Node
	// SetAttr sets an attribute, replacing any previous value.
	SetAttr(n Node, key, val string)
	// AppendChild appends child as the last child of parent, detaching it
	// from any previous parent first.
	AppendChild(parent, child Node)
	// MoveChildren moves all children of from, in order, to the end of to.
	MoveChildren(from, to Node)
}

// Container is a nestable scope. Element is attached to the enclosing scope
// and Content receives the children; they may be the same node.
type Container struct {
	Element Node
	Content Node
}
