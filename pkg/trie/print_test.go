package trie

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrettyPrintWords checks the connectors and the inherited pattern, the synthetic root is not printed.
func TestPrettyPrintWords(t *testing.T) {
	tree := NewTree(WithGlobalPattern("B", "A", "C"))
	tree.InsertWord("CAB")
	tree.InsertWord("BAB")

	expected := "" +
		"├── B (B,A,C)\n" +
		"│   └── A (B,A,C)\n" +
		"│       └── B (B,A,C)\n" +
		"└── C (B,A,C)\n" +
		"    └── A (B,A,C)\n" +
		"        └── B (B,A,C)\n"

	assert.Equal(t, expected, tree.PrettyPrint())
}

// TestPrettyPrintPatterns checks the accumulated pattern is shown on every line.
func TestPrettyPrintPatterns(t *testing.T) {
	tree := NewTree()
	tree.InsertWord("ab", "x")
	tree.InsertWord("ab", "y")

	assert.Equal(t, "└── a (x,y)\n    └── b (x,y)\n", tree.PrettyPrint())
}

// TestPrettyPrintValueRoot checks an inserted root is printed on the first line.
func TestPrettyPrintValueRoot(t *testing.T) {
	tree := newValueTree(t)

	var out bytes.Buffer
	require.NoError(t, tree.Fprint(&out))

	assert.Equal(t, "root ()\n├── child1 ()\n└── child2 ()\n", out.String())
	assert.Equal(t, out.String(), tree.PrettyPrint())
}
