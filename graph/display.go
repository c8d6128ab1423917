package graph

import (
	"fmt"
	"io"
)

// Edge is one directed edge as reported by Edges.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Edges lists every directed edge of g in ascending (from, to) order.
// Undirected graphs report each edge twice, once per direction.
func Edges(g Graph) ([]Edge, error) {
	var out []Edge
	for v := 0; v < g.VertexCount(); v++ {
		adjacent, err := g.AdjacentVertices(v)
		if err != nil {
			return nil, err
		}
		for _, u := range adjacent {
			weight, err := g.EdgeWeight(v, u)
			if err != nil {
				return nil, err
			}
			out = append(out, Edge{From: v, To: u, Weight: weight})
		}
	}

	return out, nil
}

// Display writes every directed edge of g to w, one "from-->to" line per
// edge, in the same order as Edges.
func Display(g Graph, w io.Writer) error {
	edges, err := Edges(g)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if _, err = fmt.Fprintf(w, "%d-->%d\n", e.From, e.To); err != nil {
			return err
		}
	}

	return nil
}

// HasEdge reports whether g contains the directed edge from→to.
func HasEdge(g Graph, from, to int) (bool, error) {
	weight, err := g.EdgeWeight(from, to)
	if err != nil {
		return false, err
	}

	return weight != 0, nil
}

// Outdegree counts the edges leaving v.
func Outdegree(g Graph, v int) (int, error) {
	adjacent, err := g.AdjacentVertices(v)
	if err != nil {
		return 0, err
	}

	return len(adjacent), nil
}
