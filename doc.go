// Package gograph is a small in-memory graph library built around two
// interchangeable storage representations.
//
// What it offers:
//
//   - One capability contract (graph.Graph): add edges, list adjacency,
//     count indegree, read edge weights, dump the edge list as text.
//   - Two concrete representations with different trade-offs:
//     • graph.AdjacencySet — one adjacency set per vertex, O(V+E) memory,
//     unweighted edges only; best for sparse graphs.
//     • graph.AdjacencyMatrix — an N×N weight matrix, O(V²) memory,
//     weighted edges; best for dense or weighted graphs.
//   - Directed and undirected construction via functional options.
//
// Everything is plain in-memory data: no persistence, no serialization,
// no background goroutines. The structures are not synchronized; wrap a
// graph with your own mutex if you mutate it from several goroutines.
//
// All functionality lives under the graph subpackage:
//
//	graph/ — Graph contract, AdjacencySet, AdjacencyMatrix, edge helpers
package gograph
