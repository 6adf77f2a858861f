package trie

import (
	"fmt"
	"slices"
	"strings"
)

// Node is a single unit of an ordinal tree.
type Node struct {
	value    string   // one character for word nodes, any label for the root
	children []*Node  // ordered by pattern, unique by value
	parent   *Node    // nil if the node is the root or detached
	pattern  []string // the pattern that placed the node, plus every later one passing through it
	terminal bool     // a word ends at this node
}

// NewNode creates a detached node with the provided value.
func NewNode(value string) *Node {
	return &Node{value: value}
}

func (n *Node) Value() string {
	return n.value
}

// Parent returns nil for the root and for detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the ordered children.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Pattern returns a copy of the accumulated pattern.
func (n *Node) Pattern() []string {
	return slices.Clone(n.pattern)
}

// IsRoot checks if the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf checks if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// IsTerminal reports whether an inserted word ends at this node.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

func (n *Node) ChildCount() int {
	return len(n.children)
}

// returns the child at the position index in sibling order
//
//	node.ChildAt(0) // the first child by pattern
func (n *Node) ChildAt(index int) (*Node, error) {
	if index < 0 || index >= len(n.children) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(n.children))
	}
	return n.children[index], nil
}

// FindChild returns the first direct child with the value, or nil.
func (n *Node) FindChild(value string) *Node {
	for _, child := range n.children {
		if child.value == value {
			return child
		}
	}
	return nil
}

// Siblings returns the parent's children without n, empty for the root.
func (n *Node) Siblings() []*Node {
	siblings := []*Node{}
	if n.parent == nil {
		return siblings
	}
	for _, sibling := range n.parent.children {
		if sibling != n {
			siblings = append(siblings, sibling)
		}
	}
	return siblings
}

// AddChild attaches child under n and re-sorts all the children of n using the pattern.
// a child attached somewhere else is detached from its old parent first.
// nothing changes if an error is returned
func (n *Node) AddChild(child *Node, pattern []string) error {
	for ancestor := n; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return fmt.Errorf("%w: %q under %q", ErrCycle, child.value, n.value)
		}
	}
	if existing := n.FindChild(child.value); existing != nil {
		if existing == child {
			return nil
		}
		return fmt.Errorf("%w: %q under %q", ErrDuplicateSibling, child.value, n.value)
	}

	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	n.attach(child, pattern)
	return nil
}

// attach links a detached child with a value not yet used among the children of n.
func (n *Node) attach(child *Node, pattern []string) {
	child.parent = n
	n.children = append(n.children, child)
	n.sortChildren(pattern)
}

// RemoveChild removes the first reference to child and clears its parent.
// returns false if child is not a child of n
func (n *Node) RemoveChild(child *Node) bool {
	index := slices.Index(n.children, child)
	if index < 0 {
		return false
	}
	n.children = slices.Delete(n.children, index, index+1)
	child.parent = nil
	return true
}

// DetachChild is an alias of RemoveChild.
func (n *Node) DetachChild(child *Node) bool {
	return n.RemoveChild(child)
}

// Detach disconnects the node, and its whole subtree, from its parent.
// if nothing else references the node, it will be GC'ed
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// appendPattern concatenates the pattern onto the one already stored,
// it does not re-sort the siblings
func (n *Node) appendPattern(pattern []string) {
	n.pattern = append(n.pattern, pattern...)
}

// Depth returns the number of edges between the node and its root.
func (n *Node) Depth() int {
	depth := 0
	for current := n.parent; current != nil; current = current.parent {
		depth++
	}
	return depth
}

// Height returns 0 for a leaf, and 1 + the highest child otherwise.
// a nil node has a height of -1
func (n *Node) Height() int {
	if n == nil {
		return -1
	}
	height := -1
	for _, child := range n.children {
		height = max(height, child.Height())
	}
	return height + 1
}

// applies a function to each child of the node, in sibling order.
// will return the original node n
func (n *Node) ForEachChild(f func(node *Node)) *Node {
	for _, child := range n.children {
		f(child)
	}
	return n
}

// recursively applies a function (f) to the node and each of its descendants in pre-order,
// descending into a node only as long as a (while) condition holds for it.
// if no condition is needed you can pass nil as while parameter
// will return the original node n
func (n *Node) ForEachStepDown(f func(node *Node), while func(node *Node) bool) *Node {
	f(n)
	if while == nil || while(n) {
		for _, child := range n.children {
			child.ForEachStepDown(f, while)
		}
	}
	return n
}

// applies a function to the node and each ancestor, moving from the node to the root.
// will return the original node n
func (n *Node) ForEachStepUp(f func(node *Node), while func(node *Node) bool) *Node {
	for current := n; current != nil && (while == nil || while(current)); current = current.parent {
		f(current)
	}
	return n
}

// Find searches the subtree of n in pre-order and returns the first node with the value.
func (n *Node) Find(value string) *Node {
	return n.FindWhere(func(node *Node) bool {
		return node.value == value
	})
}

// FindWhere searches the subtree of n in pre-order and returns the first node matching the predicate.
func (n *Node) FindWhere(predicate func(node *Node) bool) *Node {
	if predicate(n) {
		return n
	}
	for _, child := range n.children {
		if found := child.FindWhere(predicate); found != nil {
			return found
		}
	}
	return nil
}

// Path returns the nodes from the root down to n, both included.
func (n *Node) Path() []*Node {
	path := []*Node{}
	n.ForEachStepUp(func(node *Node) {
		path = append(path, node)
	}, nil)
	slices.Reverse(path)
	return path
}

// Word joins the values on the path, leaving out the root.
func (n *Node) Word() string {
	var sb strings.Builder
	for _, node := range n.Path()[1:] {
		sb.WriteString(node.value)
	}
	return sb.String()
}

// Leafs returns every node without children in the subtree of n, in pre-order.
func (n *Node) Leafs() []*Node {
	leafs := []*Node{}
	n.ForEachStepDown(func(node *Node) {
		if node.IsLeaf() {
			leafs = append(leafs, node)
		}
	}, nil)
	return leafs
}

// String renders the node as "value (p1,p2)".
func (n *Node) String() string {
	return fmt.Sprintf("%s (%s)", n.value, strings.Join(n.pattern, ","))
}
