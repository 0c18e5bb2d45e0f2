// Package grafo is an interactive workbench for building and analyzing
// graphs from a terminal: load a graph from a text description, mutate
// vertices and edges, and run structural queries over it.
//
// The engine is split into small, single-purpose packages:
//
//	core/         — the graph store: vertices, weighted edges, mutation ops
//	graphfile/    — the line-oriented load-file codec (n, then "u v [w]")
//	connectivity/ — connectivity test and component enumeration
//	dijkstra/     — single-pair and single-source shortest paths
//	mst/          — minimum spanning trees (Prim, Kruskal)
//	flow/         — maximum flow (Edmonds–Karp)
//	matching/     — bipartite check and maximum matching (Hopcroft–Karp)
//	grid/         — A* pathfinding over integer height grids
//
// Every engine package returns structured values and sentinel errors; it
// never prints, logs, or recovers. Rendering belongs entirely to the
// terminal layer under cmd/grafo and internal/repl.
//
//	go get github.com/grafo-dev/grafo
package grafo
