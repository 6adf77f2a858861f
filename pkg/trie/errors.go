package trie

import "errors"

var (
	ErrParentNotFound   = errors.New("parent not found")
	ErrDuplicateSibling = errors.New("a sibling with the same value already exists")
	ErrCycle            = errors.New("node can not be attached under itself or its descendants")
	ErrIndexOutOfRange  = errors.New("child index out of range")
)
