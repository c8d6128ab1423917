package graph

import "errors"

var (
	// ErrVertexCount indicates a constructor received a non-positive vertex count.
	ErrVertexCount = errors.New("graph: vertex count must be positive")
	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
	// ErrSelfLoop indicates an edge whose endpoints coincide, in a representation that forbids loops.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
	// ErrBadWeight indicates an edge weight the representation cannot store.
	ErrBadWeight = errors.New("graph: weight not supported by representation")
)
