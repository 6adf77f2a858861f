// ## Overview
// Package trie implements an ordinal tree: a character trie whose children are
// kept in the order given by a priority sequence (a pattern) instead of
// insertion order. Words are inserted rune by rune, shared prefixes share
// nodes, and every time a new child is attached its siblings are re-sorted.
//
// Ordering of two siblings under a pattern:
//   - both values in the pattern: the earlier index comes first
//   - only one value in the pattern: that one comes first
//   - neither: case-insensitive order, upper-case first on a tie
//
// ## Example usage:
//
//	tree := trie.NewTree(trie.WithGlobalPattern("B", "A", "C"))
//	tree.InsertWord("CAB")
//	tree.InsertWord("BAB")
//
//	fmt.Println(tree.Words()) // Output: [BAB CAB]
//
//	// a per-word pattern overrides the global one and is accumulated
//	// on every node the word passes through
//	tree.InsertWord("CAT", "T", "B")
//	fmt.Print(tree.PrettyPrint())
//
// A Tree is not safe for concurrent use.
package trie
