package trie

import (
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alphabet = []string{"a", "b", "c", "d", "e", "A", "B", "C", "é", "É"}

// randomWord builds a word of 1..maxLen runes out of the alphabet
func randomWord(fake *gofakeit.Faker, maxLen int) string {
	word := ""
	for i := fake.Number(1, maxLen); i > 0; i-- {
		word += alphabet[fake.Number(0, len(alphabet)-1)]
	}
	return word
}

// randomPattern returns a shuffled subset of the alphabet, possibly empty
func randomPattern(fake *gofakeit.Faker) []string {
	pattern := slices.Clone(alphabet)
	fake.ShuffleStrings(pattern)
	return pattern[:fake.Number(0, len(pattern))]
}

// assertConsistent walks the tree and checks the parent links and sibling uniqueness.
func assertConsistent(t *testing.T, tree *Tree) {
	t.Helper()
	require.NotNil(t, tree.Root())
	assert.Nil(t, tree.Root().Parent())

	tree.Traverse(func(node *Node) {
		seen := map[string]bool{}
		for _, child := range node.children {
			assert.Same(t, node, child.parent, "child %q should point to its parent %q", child.value, node.value)
			assert.False(t, seen[child.value], "duplicate sibling %q under %q", child.value, node.value)
			seen[child.value] = true
		}
	})
}

// TestRandomWordsKeepInvariants inserts fake words under random patterns and checks the structure.
func TestRandomWordsKeepInvariants(t *testing.T) {
	t.Parallel()

	const (
		total = 2_000
		seed  = 1234567890
	)

	var (
		fake  = gofakeit.New(seed)
		tree  = NewTree(WithGlobalPattern(randomPattern(fake)...))
		words = map[string]bool{}
	)

	for i := 0; i < total; i++ {
		word := randomWord(fake, 6)
		tree.InsertWord(word, randomPattern(fake)...)
		words[word] = true
	}

	assertConsistent(t, tree)
	for word := range words {
		assert.True(t, tree.Contains(word), word)
	}
	assert.Len(t, tree.Words(), len(words))

	// inserting the same words again must not create any node
	size := tree.Size()
	for word := range words {
		tree.InsertWord(word)
	}
	assert.Equal(t, size, tree.Size())
}

// TestRandomWordsFollowGlobalPattern checks every sibling list is sorted when only the global pattern is used.
func TestRandomWordsFollowGlobalPattern(t *testing.T) {
	t.Parallel()

	var (
		fake    = gofakeit.New(987654321)
		pattern = randomPattern(fake)
		tree    = NewTree(WithGlobalPattern(pattern...))
	)

	for i := 0; i < 1_000; i++ {
		tree.InsertWord(randomWord(fake, 5))
	}

	tree.Traverse(func(node *Node) {
		assert.True(t, slices.IsSortedFunc(node.children, func(a, b *Node) int {
			return Compare(pattern, a.value, b.value)
		}), "children of %q should follow %v", node.value, pattern)
	})
}

// TestRandomRemovalsDetach verifies removed nodes are unlinked both ways.
func TestRandomRemovalsDetach(t *testing.T) {
	t.Parallel()

	fake := gofakeit.New(42)
	tree := NewTree()
	for i := 0; i < 500; i++ {
		tree.InsertWord(randomWord(fake, 4))
	}

	for i := 0; i < 20; i++ {
		value := alphabet[fake.Number(0, len(alphabet)-1)]
		node := tree.FindByValue(value)
		removed := tree.Remove(value)
		if node == nil {
			assert.False(t, removed)
			continue
		}
		assert.True(t, removed)
		assert.Nil(t, node.Parent())
		assertConsistent(t, tree)
	}
}
