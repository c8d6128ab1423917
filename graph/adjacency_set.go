package graph

import (
	"fmt"
	"io"
	"sort"
)

// node is a single vertex of an AdjacencySet: its identifier plus the set
// of vertex identifiers it points to. Membership is unordered; ordering is
// imposed at read time.
type node struct {
	id       int
	adjacent map[int]struct{}
}

func newNode(id int) *node {
	return &node{id: id, adjacent: make(map[int]struct{})}
}

// addEdge records an outgoing edge to v. A node is never adjacent to itself.
func (n *node) addEdge(v int) error {
	if n.id == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, v)
	}
	n.adjacent[v] = struct{}{}

	return nil
}

// adjacentVertices materializes the set in ascending order.
func (n *node) adjacentVertices() []int {
	out := make([]int, 0, len(n.adjacent))
	for v := range n.adjacent {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// AdjacencySet represents a graph as one adjacency set per vertex.
// It stores edge presence only, so every edge has weight 1 and AddEdge
// rejects any other weight. Self-loops are rejected: the representation
// models a simple graph.
//
// Memory O(V+E); AdjacentVertices O(d log d) due to sort-on-read.
// Best suited to sparse unweighted graphs.
type AdjacencySet struct {
	n        int
	directed bool
	nodes    []*node
}

var _ Graph = (*AdjacencySet)(nil)

// NewAdjacencySet builds an adjacency-set graph with n vertices, 0..n-1.
// Undirected unless WithDirected(true) is given.
// Returns ErrVertexCount when n <= 0.
func NewAdjacencySet(n int, opts ...Option) (*AdjacencySet, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	nodes := make([]*node, n)
	for i := range nodes {
		nodes[i] = newNode(i)
	}

	return &AdjacencySet{n: n, directed: cfg.directed, nodes: nodes}, nil
}

// VertexCount returns the fixed number of vertices.
func (g *AdjacencySet) VertexCount() int { return g.n }

// Directed reports whether edges have orientation.
func (g *AdjacencySet) Directed() bool { return g.directed }

// AddEdge inserts the edge from→to, mirroring to→from when undirected.
// weight must be exactly 1; the set stores presence, not weights.
func (g *AdjacencySet) AddEdge(from, to int, weight int64) error {
	if err := checkEndpoints(from, to, g.n); err != nil {
		return err
	}
	if weight != 1 {
		return fmt.Errorf("%w: adjacency set is unweighted, got weight %d", ErrBadWeight, weight)
	}

	if err := g.nodes[from].addEdge(to); err != nil {
		return err
	}
	if !g.directed {
		// mirror; from != to already holds, so this cannot fail
		return g.nodes[to].addEdge(from)
	}

	return nil
}

// AdjacentVertices returns the vertices reachable from v, ascending.
func (g *AdjacencySet) AdjacentVertices(v int) ([]int, error) {
	if err := checkVertex(v, g.n); err != nil {
		return nil, err
	}

	return g.nodes[v].adjacentVertices(), nil
}

// Indegree counts the vertices whose adjacency set contains v.
func (g *AdjacencySet) Indegree(v int) (int, error) {
	if err := checkVertex(v, g.n); err != nil {
		return 0, err
	}

	indegree := 0
	for _, u := range g.nodes {
		if _, ok := u.adjacent[v]; ok {
			indegree++
		}
	}

	return indegree, nil
}

// EdgeWeight returns 1 when the edge from→to exists and 0 otherwise.
func (g *AdjacencySet) EdgeWeight(from, to int) (int64, error) {
	if err := checkEndpoints(from, to, g.n); err != nil {
		return 0, err
	}
	if _, ok := g.nodes[from].adjacent[to]; ok {
		return 1, nil
	}

	return 0, nil
}

// Display writes the edge list to w, one "from-->to" line per edge.
func (g *AdjacencySet) Display(w io.Writer) error { return Display(g, w) }

// Clone returns a deep copy; mutating the copy never affects the original.
func (g *AdjacencySet) Clone() *AdjacencySet {
	clone := &AdjacencySet{n: g.n, directed: g.directed, nodes: make([]*node, g.n)}
	for i, u := range g.nodes {
		c := newNode(i)
		for v := range u.adjacent {
			c.adjacent[v] = struct{}{}
		}
		clone.nodes[i] = c
	}

	return clone
}
