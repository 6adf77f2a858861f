package trie

import (
	"io"
	"strings"
)

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// PrettyPrint renders the tree, one node per line, as a box-drawing diagram.
//
//	├── B ()
//	│   └── A ()
//	└── C ()
//
// The synthetic root is not printed, its children start at the top level.
func (t *Tree) PrettyPrint() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}

// Fprint writes the PrettyPrint lines to w.
func (t *Tree) Fprint(w io.Writer) error {
	if t.root == nil {
		return nil
	}
	if !t.synthetic {
		if _, err := io.WriteString(w, t.root.String()+"\n"); err != nil {
			return err
		}
	}
	return t.root.printChildren(w, "")
}

func (n *Node) printChildren(w io.Writer, prefix string) error {
	for i, child := range n.children {
		branch, indent := branchMid, indentMid
		if i == len(n.children)-1 {
			branch, indent = branchLast, indentLast
		}
		if _, err := io.WriteString(w, prefix+branch+child.String()+"\n"); err != nil {
			return err
		}
		if err := child.printChildren(w, prefix+indent); err != nil {
			return err
		}
	}
	return nil
}
