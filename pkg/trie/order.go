package trie

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Compare orders two sibling values under a pattern.
// It returns a negative number when a sorts before b, a positive number when
// b sorts before a, and zero when they are the same value.
func Compare(pattern []string, a, b string) int {
	return newOrdering(pattern).compare(a, b)
}

// ordering caches the first index of every token of a pattern,
// so a full sort does not rescan the pattern for each comparison
type ordering map[string]int

func newOrdering(pattern []string) ordering {
	ord := make(ordering, len(pattern))
	for i, token := range pattern {
		if _, seen := ord[token]; !seen {
			ord[token] = i
		}
	}
	return ord
}

func (ord ordering) compare(a, b string) int {
	ai, aIn := ord[a]
	bi, bIn := ord[b]

	switch {
	case aIn && bIn:
		return ai - bi
	case aIn:
		return -1
	case bIn:
		return 1
	}
	return compareFold(a, b)
}

// compareFold compares case-insensitively, and on a tie puts the upper-case
// rune first at the first position where the two strings differ.
func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}

	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			aUp, bUp := unicode.IsUpper(ra), unicode.IsUpper(rb)
			switch {
			case aUp && !bUp:
				return -1
			case bUp && !aUp:
				return 1
			case ra < rb:
				return -1
			default:
				return 1
			}
		}
		a, b = a[na:], b[nb:]
	}
	return len(a) - len(b)
}

// sortChildren re-sorts all the children of n under the pattern.
// the sort is stable, so values the comparator sees as equal keep their order
func (n *Node) sortChildren(pattern []string) {
	ord := newOrdering(pattern)
	slices.SortStableFunc(n.children, func(a, b *Node) int {
		return ord.compare(a.value, b.value)
	})
}
