package graph

import "github.com/pkg/errors"

var (
	// ErrNotCompound is returned when hierarchy operations are used on a
	// graph that was not created with WithCompound(true).
	ErrNotCompound = errors.New("graph is not compound")

	// ErrCycle is returned when SetParent would make a node its own ancestor.
	ErrCycle = errors.New("parent would create a cycle")
)
