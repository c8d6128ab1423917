package graph

import (
	"fmt"
	"io"
)

// AdjacencyMatrix represents a graph as an N×N weight matrix.
// cells[i][j] > 0 is the weight of edge i→j; 0 means "no edge", so AddEdge
// rejects weights below 1. The diagonal is ordinary storage, so unlike
// AdjacencySet this representation permits self-loops.
//
// Memory O(V²) regardless of density; AdjacentVertices O(V); EdgeWeight
// O(1). Best suited to dense or weighted graphs.
type AdjacencyMatrix struct {
	n        int
	directed bool
	cells    [][]int64
}

var _ Graph = (*AdjacencyMatrix)(nil)

// NewAdjacencyMatrix builds an adjacency-matrix graph with n vertices,
// 0..n-1, all cells zero. Undirected unless WithDirected(true) is given.
// Returns ErrVertexCount when n <= 0.
func NewAdjacencyMatrix(n int, opts ...Option) (*AdjacencyMatrix, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	cells := make([][]int64, n)
	for i := range cells {
		cells[i] = make([]int64, n)
	}

	return &AdjacencyMatrix{n: n, directed: cfg.directed, cells: cells}, nil
}

// VertexCount returns the fixed number of vertices.
func (g *AdjacencyMatrix) VertexCount() int { return g.n }

// Directed reports whether edges have orientation.
func (g *AdjacencyMatrix) Directed() bool { return g.directed }

// AddEdge sets cells[from][to] = weight, mirroring cells[to][from] when
// undirected. weight must be >= 1 since 0 is the no-edge sentinel.
func (g *AdjacencyMatrix) AddEdge(from, to int, weight int64) error {
	if err := checkEndpoints(from, to, g.n); err != nil {
		return err
	}
	if weight < 1 {
		return fmt.Errorf("%w: matrix edge weight must be >= 1, got %d", ErrBadWeight, weight)
	}

	g.cells[from][to] = weight
	if !g.directed {
		g.cells[to][from] = weight
	}

	return nil
}

// AdjacentVertices returns the vertices reachable from v. The row scan
// runs over ascending indices, so the result is naturally ordered.
func (g *AdjacencyMatrix) AdjacentVertices(v int) ([]int, error) {
	if err := checkVertex(v, g.n); err != nil {
		return nil, err
	}

	out := make([]int, 0, g.n)
	for u, weight := range g.cells[v] {
		if weight > 0 {
			out = append(out, u)
		}
	}

	return out, nil
}

// Indegree counts the vertices u with cells[u][v] > 0.
func (g *AdjacencyMatrix) Indegree(v int) (int, error) {
	if err := checkVertex(v, g.n); err != nil {
		return 0, err
	}

	indegree := 0
	for u := 0; u < g.n; u++ {
		if g.cells[u][v] > 0 {
			indegree++
		}
	}

	return indegree, nil
}

// EdgeWeight returns the raw cell value: the weight of from→to, or 0 when
// no such edge exists.
func (g *AdjacencyMatrix) EdgeWeight(from, to int) (int64, error) {
	if err := checkEndpoints(from, to, g.n); err != nil {
		return 0, err
	}

	return g.cells[from][to], nil
}

// Display writes the edge list to w, one "from-->to" line per edge.
func (g *AdjacencyMatrix) Display(w io.Writer) error { return Display(g, w) }

// Clone returns a deep copy; mutating the copy never affects the original.
func (g *AdjacencyMatrix) Clone() *AdjacencyMatrix {
	cells := make([][]int64, g.n)
	for i, row := range g.cells {
		cells[i] = make([]int64, g.n)
		copy(cells[i], row)
	}

	return &AdjacencyMatrix{n: g.n, directed: g.directed, cells: cells}
}
