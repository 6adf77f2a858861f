package trie

import (
	"fmt"
	"log/slog"
	"slices"
)

// DefaultRootLabel is the value of the synthetic root created for word insertion.
const DefaultRootLabel = "Root"

// Tree owns the root of an ordinal tree and the tree-wide default pattern.
type Tree struct {
	root          *Node
	globalPattern []string
	sentinel      string
	synthetic     bool // root was created by the tree, not inserted
	logger        *slog.Logger
}

// NewTree creates an empty tree, configured by the options.
func NewTree(opts ...Option) *Tree {
	tree := DefaultOptions()
	for _, opt := range opts {
		tree = opt(tree)
	}
	return tree
}

// Root returns nil if the tree is empty.
func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) GlobalPattern() []string {
	return slices.Clone(t.globalPattern)
}

// newSentinel sets a synthetic root labeled by the sentinel label.
func (t *Tree) newSentinel() {
	t.root = NewNode(t.sentinel)
	t.synthetic = true
}

// resolvePattern picks the pattern that orders a new child under parent:
// the explicit one, then the parent's own, then the tree-wide default
func (t *Tree) resolvePattern(explicit []string, parent *Node) []string {
	if len(explicit) > 0 {
		return explicit
	}
	if len(parent.pattern) > 0 {
		return parent.pattern
	}
	return t.globalPattern
}

// InsertWord adds the word to the tree one rune per node, sharing existing prefixes.
//
// A node that already exists keeps its position and gets the pattern, if any,
// concatenated onto its own. A new node is ordered among its siblings by the
// pattern, by its parent's pattern, or by the global pattern, whichever is found
// first, and stores a copy of it, so its own children inherit it in turn.
//
// Returns the node where the word ends, or the root for an empty word.
func (t *Tree) InsertWord(word string, pattern ...string) *Node {
	if t.root == nil {
		t.newSentinel()
	}

	current := t.root
	for _, r := range word {
		value := string(r)
		if child := current.FindChild(value); child != nil {
			if len(pattern) > 0 {
				child.appendPattern(pattern)
				t.logger.Debug("pattern accumulated", "value", value, "pattern", child.pattern)
			}
			current = child
			continue
		}

		resolved := t.resolvePattern(pattern, current)
		child := NewNode(value)
		child.pattern = slices.Clone(resolved)
		current.attach(child, resolved)
		t.logger.Debug("node created", "value", value, "parent", current.value, "pattern", child.pattern)
		current = child
	}

	if current != t.root {
		current.terminal = true
	}
	return current
}

// InsertValue attaches a single node with the value under the first node
// holding parentValue. The first value inserted into an empty tree becomes its
// root, whatever parentValue is.
func (t *Tree) InsertValue(value string, parentValue string) (*Node, error) {
	node := NewNode(value)
	if t.root == nil {
		t.root = node
		t.synthetic = false
		return node, nil
	}

	parent := t.FindByValue(parentValue)
	if parent == nil {
		err := fmt.Errorf("%w: %q for %q", ErrParentNotFound, parentValue, value)
		t.logger.Warn("value not inserted", "value", value, "error", err)
		return nil, err
	}
	resolved := t.resolvePattern(nil, parent)
	node.pattern = slices.Clone(resolved)
	if err := parent.AddChild(node, resolved); err != nil {
		t.logger.Warn("value not inserted", "value", value, "error", err)
		return nil, err
	}
	return node, nil
}

// FindByValue returns the first node in pre-order holding the value, or nil.
func (t *Tree) FindByValue(value string) *Node {
	if t.root == nil {
		return nil
	}
	return t.root.Find(value)
}

// FindWhere returns the first node in pre-order matching the predicate, or nil.
func (t *Tree) FindWhere(predicate func(node *Node) bool) *Node {
	if t.root == nil {
		return nil
	}
	return t.root.FindWhere(predicate)
}

// Remove detaches the first node holding the value, with its whole subtree.
// Removing the root empties the tree.
// returns false if no node holds the value
func (t *Tree) Remove(value string) bool {
	node := t.FindByValue(value)
	if node == nil {
		return false
	}
	if node.parent == nil {
		t.root = nil
		t.synthetic = false
		return true
	}
	return node.parent.RemoveChild(node)
}

// Traverse visits every node, root included, in pre-order.
// the visitor must not change the tree
func (t *Tree) Traverse(visitor func(node *Node)) {
	if t.root == nil {
		return
	}
	t.root.ForEachStepDown(visitor, nil)
}

// AllValues returns the value of every node in pre-order.
func (t *Tree) AllValues() []string {
	values := []string{}
	t.Traverse(func(node *Node) {
		values = append(values, node.value)
	})
	return values
}

// Height returns -1 for an empty tree and 0 for a tree with only a root.
func (t *Tree) Height() int {
	return t.root.Height()
}

// Size returns the number of nodes, root included.
func (t *Tree) Size() int {
	size := 0
	t.Traverse(func(*Node) {
		size++
	})
	return size
}

// FindPrefix walks the prefix rune by rune from the root, returns nil if the path is missing.
func (t *Tree) FindPrefix(prefix string) *Node {
	current := t.root
	for _, r := range prefix {
		if current == nil {
			return nil
		}
		current = current.FindChild(string(r))
	}
	return current
}

// Contains checks if the word was inserted, a prefix of an inserted word does not count.
func (t *Tree) Contains(word string) bool {
	node := t.FindPrefix(word)
	return node != nil && node.terminal
}

// Words returns every inserted word, in tree order.
func (t *Tree) Words() []string {
	if t.root == nil {
		return []string{}
	}
	return t.root.terminalWords()
}

// WithPrefix returns the inserted words starting with prefix, in tree order.
func (t *Tree) WithPrefix(prefix string) []string {
	node := t.FindPrefix(prefix)
	if node == nil {
		return []string{}
	}
	return node.terminalWords()
}

func (n *Node) terminalWords() []string {
	words := []string{}
	n.ForEachStepDown(func(node *Node) {
		if node.terminal {
			words = append(words, node.Word())
		}
	}, nil)
	return words
}
