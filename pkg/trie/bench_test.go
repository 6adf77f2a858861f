package trie

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func generateWords(total int, seed int64) []string {
	fake := gofakeit.New(seed)
	words := make([]string, total)
	for i := range words {
		words[i] = fake.Word()
	}
	return words
}

func BenchmarkInsertWord(b *testing.B) {
	words := generateWords(b.N, 19)
	tree := NewTree(WithGlobalPattern("e", "t", "a", "o", "i", "n"))
	b.ResetTimer()

	for _, word := range words {
		tree.InsertWord(word)
	}
}

func BenchmarkContains(b *testing.B) {
	words := generateWords(10_000, 32)
	tree := NewTree()
	for _, word := range words {
		tree.InsertWord(word)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Contains(words[i%len(words)])
	}
}

func BenchmarkWords(b *testing.B) {
	tree := NewTree()
	for _, word := range generateWords(10_000, 7) {
		tree.InsertWord(word)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Words()
	}
}
