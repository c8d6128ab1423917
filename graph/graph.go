package graph

import (
	"fmt"
	"io"
)

// Graph is the capability contract shared by all representations.
// Vertex count and directedness are fixed at construction; vertices are
// integer indices in [0, VertexCount()).
type Graph interface {
	// VertexCount returns the fixed number of vertices N.
	VertexCount() int

	// Directed reports whether edges have orientation. Undirected graphs
	// store every edge in both directions.
	Directed() bool

	// AddEdge inserts the edge from→to with the given weight, mirroring
	// to→from when the graph is undirected. Returns ErrVertexOutOfRange
	// for an invalid endpoint and ErrBadWeight for a weight the
	// representation cannot store. Adding the same edge twice is a no-op
	// beyond updating its weight.
	AddEdge(from, to int, weight int64) error

	// AdjacentVertices returns the vertices reachable from v by one
	// outgoing edge, in ascending order.
	AdjacentVertices(v int) ([]int, error)

	// Indegree counts the edges terminating at v.
	Indegree(v int) (int, error)

	// EdgeWeight returns the weight of edge from→to, or 0 when no such
	// edge exists.
	EdgeWeight(from, to int) (int64, error)

	// Display writes every directed edge to w, one "from-->to" line per
	// edge, in ascending (from, to) order.
	Display(w io.Writer) error
}

// Option configures a graph at construction time.
type Option func(*config)

type config struct {
	directed bool
}

// WithDirected sets edge orientation: true for directed edges, false for
// undirected (the default).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// checkCount validates a constructor's vertex count.
func checkCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrVertexCount, n)
	}

	return nil
}

// checkVertex validates 0 <= v < n.
func checkVertex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: vertex %d, want [0,%d)", ErrVertexOutOfRange, v, n)
	}

	return nil
}

// checkEndpoints validates both endpoints of an edge.
func checkEndpoints(from, to, n int) error {
	if err := checkVertex(from, n); err != nil {
		return err
	}

	return checkVertex(to, n)
}
