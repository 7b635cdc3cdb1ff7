// Package ptree implements the hierarchical property tree consumed by the
// schema layer: an ordered, string-keyed node that carries an optional data
// string and any number of (key, child) pairs. Keys are not unique and child
// order is the order of insertion, which for the parsers in this package is
// the order of the source document.
package ptree

// Child is one (key, subtree) pair of a node.
type Child struct {
	Key  string
	Node *Node
}

// Node is a property-tree node. Every node carries a data string (empty for
// pure containers) and an ordered list of children.
type Node struct {
	value    string
	children []Child
}

// New returns an empty node.
func New() *Node { return &Node{} }

// Leaf returns a node holding value and no children.
func Leaf(value string) *Node { return &Node{value: value} }

// Value returns the node's own data string.
func (n *Node) Value() string { return n.value }

// SetValue replaces the node's data string.
func (n *Node) SetValue(v string) { n.value = v }

// Add appends child under key, preserving insertion order, and returns child.
func (n *Node) Add(key string, child *Node) *Node {
	if child == nil {
		child = New()
	}
	n.children = append(n.children, Child{Key: key, Node: child})
	return child
}

// Child returns the first child stored under key, in tree order.
func (n *Node) Child(key string) (*Node, bool) {
	for _, c := range n.children {
		if c.Key == key {
			return c.Node, true
		}
	}
	return nil, false
}

// Children returns the node's (key, subtree) pairs in tree order. The returned
// slice is shared with the node and must not be mutated.
func (n *Node) Children() []Child { return n.children }

// Len returns the number of immediate children.
func (n *Node) Len() int { return len(n.children) }
