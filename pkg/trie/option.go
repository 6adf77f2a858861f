package trie

import (
	"log/slog"
	"slices"
)

type Option func(*Tree) *Tree

func DefaultOptions() *Tree {
	return &Tree{
		sentinel: DefaultRootLabel,
		logger:   slog.Default(),
	}
}

// WithGlobalPattern sets the pattern used when neither the word nor the parent has one.
func WithGlobalPattern(pattern ...string) Option {
	return func(t *Tree) *Tree {
		t.globalPattern = slices.Clone(pattern)
		return t
	}
}

// WithSentinelRoot creates the synthetic root right away, labeled with label.
// an empty label keeps DefaultRootLabel
func WithSentinelRoot(label string) Option {
	return func(t *Tree) *Tree {
		if label != "" {
			t.sentinel = label
		}
		t.newSentinel()
		return t
	}
}

// WithRootLabel changes the label of the synthetic root, relabeling it if it already exists.
func WithRootLabel(label string) Option {
	return func(t *Tree) *Tree {
		if label != "" {
			t.sentinel = label
			if t.synthetic {
				t.root.value = label
			}
		}
		return t
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) *Tree {
		if logger != nil {
			t.logger = logger
		}
		return t
	}
}
