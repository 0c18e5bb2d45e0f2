// Package core provides the fundamental in-memory Graph implementation:
// a fixed directed/undirected mode, a set of integer-labeled vertices, and
// a collection of weighted edges that is unique per vertex pair.
//
// Structural invariants enforced by every mutation:
//
//   - vertex identifiers are unique, non-negative integers;
//   - every edge endpoint references a vertex currently in the graph;
//   - at most one edge exists per ordered (directed) or unordered
//     (undirected) pair — re-inserting a pair overwrites its weight
//     ("last definition wins");
//   - self-loops are rejected at insertion with ErrSelfLoop;
//   - removing a vertex removes every incident edge.
//
// Determinism: Vertices() enumerates ascending, Edges() preserves first
// insertion order, and Neighbors() enumerates ascending by neighbor ID.
// Higher-level algorithms rely on these orders for reproducible results.
//
// A Graph has exactly one logical owner at a time (one interactive
// session); it is not safe for concurrent use.
package core
