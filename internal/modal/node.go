package modal

// Node is an element of the layer tree that surfaces, subtrees and
// controllers are mounted into.
type Node interface {
	Name() string
	Parent() Node
}

// Container is a Node that accepts children.
type Container interface {
	Node
	AppendChild(child Node)
	RemoveChild(child Node)
}

// attachable is implemented by every node type of this package through treeNode.
type attachable interface {
	setParent(parent Node)
}

// treeNode holds the structural links shared by all node types.
type treeNode struct {
	parent   Node
	children []Node
}

// Parent returns the structural parent, or nil when detached.
func (t *treeNode) Parent() Node {
	return t.parent
}

// Children returns a copy of the child list.
func (t *treeNode) Children() []Node {
	out := make([]Node, len(t.children))
	copy(out, t.children)
	return out
}

func (t *treeNode) setParent(parent Node) {
	t.parent = parent
}

// appendChild links child under self. A child that already has a parent is
// moved, matching DOM appendChild.
func (t *treeNode) appendChild(self Container, child Node) {
	if child == nil {
		return
	}
	if old := child.Parent(); old != nil {
		if c, ok := old.(Container); ok {
			c.RemoveChild(child)
		}
	}
	t.children = append(t.children, child)
	if a, ok := child.(attachable); ok {
		a.setParent(self)
	}
}

func (t *treeNode) removeChild(child Node) {
	for i, c := range t.children {
		if c == child {
			t.children = append(t.children[:i], t.children[i+1:]...)
			if a, ok := child.(attachable); ok {
				a.setParent(nil)
			}
			return
		}
	}
}

// Element is a plain host page node (a panel, a page root, a form row).
type Element struct {
	treeNode
	name string
}

// NewElement creates a detached element with the given tag name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the tag name.
func (e *Element) Name() string {
	return e.name
}

// AppendChild attaches child to the element.
func (e *Element) AppendChild(child Node) {
	e.appendChild(e, child)
}

// RemoveChild detaches child from the element.
func (e *Element) RemoveChild(child Node) {
	e.removeChild(child)
}

// Contains reports whether target is root or one of its descendants.
func Contains(root, target Node) bool {
	for n := target; n != nil; n = n.Parent() {
		if n == root {
			return true
		}
	}
	return false
}

// nameOf returns a printable tag name for n, tolerating nil.
func nameOf(n Node) string {
	if n == nil {
		return "nothing"
	}
	return n.Name()
}
