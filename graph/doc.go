// Package graph provides two in-memory graph representations behind one
// capability contract.
//
// What:
//
//   - Graph is the contract: AddEdge, AdjacentVertices, Indegree,
//     EdgeWeight, Display — plus the fixed VertexCount and Directed flags
//     chosen at construction.
//   - AdjacencySet stores one adjacency set per vertex. Presence only:
//     every edge has weight 1 and self-loops are rejected.
//   - AdjacencyMatrix stores an N×N weight matrix. Cell [i][j] > 0 is the
//     weight of edge i→j, 0 means "no edge"; self-loops are permitted
//     because the diagonal is ordinary storage.
//   - Edges, Display, HasEdge and Outdegree are helpers written against
//     the contract, so they work with either representation.
//
// Why two representations:
//
//   - AdjacencySet: O(V+E) memory, adjacency in O(d log d) (sort-on-read);
//     the right shape for sparse unweighted graphs.
//   - AdjacencyMatrix: O(V²) memory regardless of density, adjacency in
//     O(V), weight lookup in O(1); the right shape for dense or weighted
//     graphs.
//
// Vertices are integer indices in [0, N) with N fixed at construction.
// Undirected graphs mirror every edge symmetrically. Mutation is rejected
// before any state changes, so a failed AddEdge leaves the graph intact.
// Instances are not synchronized; callers that share a graph across
// goroutines must add their own locking.
//
// Errors (sentinel):
//
//   - ErrVertexCount: constructor given a non-positive vertex count.
//   - ErrVertexOutOfRange: a vertex index outside [0, N).
//   - ErrSelfLoop: AdjacencySet edge with identical endpoints.
//   - ErrBadWeight: weight ≠ 1 for AdjacencySet, weight < 1 for
//     AdjacencyMatrix.
package graph
