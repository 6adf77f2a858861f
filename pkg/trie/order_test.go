package trie

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// TestCompare checks the three ordering rules and the case tie-break.
func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		pattern  []string
		a, b     string
		expected int
	}{
		{"both in pattern by index", []string{"B", "A", "C"}, "B", "A", -1},
		{"both in pattern reversed", []string{"B", "A", "C"}, "C", "B", 1},
		{"only a in pattern", []string{"B", "A", "C"}, "C", "a", -1},
		{"only b in pattern", []string{"B", "A", "C"}, "Z", "A", 1},
		{"neither falls back to case-insensitive", []string{"B"}, "a", "Z", -1},
		{"empty pattern", nil, "b", "A", 1},
		{"upper case first on tie", nil, "A", "a", -1},
		{"lower case after on tie", nil, "a", "A", 1},
		{"tie broken at first differing rune", nil, "ab", "aB", 1},
		{"same value", []string{"A"}, "A", "A", 0},
		{"same value not in pattern", nil, "x", "x", 0},
		{"first occurrence of repeated token", []string{"A", "B", "A"}, "B", "A", 1},
		{"non ascii", nil, "é", "É", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sign(Compare(tc.pattern, tc.a, tc.b)))
			assert.Equal(t, -tc.expected, sign(Compare(tc.pattern, tc.b, tc.a)), "Compare should be antisymmetric")
		})
	}
}

// TestSortChildren verifies that the whole sibling list is re-sorted under a pattern.
func TestSortChildren(t *testing.T) {
	parent := NewNode("Root")
	for _, value := range []string{"d", "a", "C", "b", "c", "B"} {
		parent.children = append(parent.children, NewNode(value))
	}

	parent.sortChildren([]string{"c", "a"})

	values := []string{}
	for _, child := range parent.children {
		values = append(values, child.value)
	}
	assert.Equal(t, []string{"c", "a", "B", "b", "C", "d"}, values)
	assert.True(t, slices.IsSortedFunc(parent.children, func(a, b *Node) int {
		return Compare([]string{"c", "a"}, a.value, b.value)
	}))
}
