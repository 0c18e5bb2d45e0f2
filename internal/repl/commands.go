package repl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/grafo-dev/grafo/connectivity"
	"github.com/grafo-dev/grafo/core"
	"github.com/grafo-dev/grafo/dijkstra"
	"github.com/grafo-dev/grafo/flow"
	"github.com/grafo-dev/grafo/graphfile"
	"github.com/grafo-dev/grafo/grid"
	"github.com/grafo-dev/grafo/matching"
	"github.com/grafo-dev/grafo/mst"
)

// command describes one entry of the help table.
type command struct {
	name  string
	usage string
	desc  string
}

// commands lists every command in help order.
var commands = []command{
	{"create", "create <n> [directed|undirected]", "create a graph with n vertices"},
	{"load", "load <file> [directed|undirected]", "load a graph from an edge-list file"},
	{"add_vertex", "add_vertex <id>", "add a vertex"},
	{"add_edge", "add_edge <u> <v> [weight]", "add an edge (weight defaults to 1)"},
	{"remove_vertex", "remove_vertex <id>", "remove a vertex and its edges"},
	{"remove_edge", "remove_edge <u> <v>", "remove an edge"},
	{"list_vertices", "list_vertices", "print all vertices"},
	{"list_edges", "list_edges", "print all edges"},
	{"connected", "connected [strong]", "check whether the graph is connected"},
	{"components", "components [strong]", "print the connected components"},
	{"shortest_path", "shortest_path <from> <to>", "find the cheapest path between two vertices"},
	{"distances", "distances <from>", "find distances from a vertex to all reachable vertices"},
	{"mst", "mst [root] [prim|kruskal]", "build a minimum spanning tree"},
	{"max_flow", "max_flow <source> <sink>", "compute the maximum flow in a directed graph"},
	{"matching", "matching", "check bipartiteness and find a maximum matching"},
	{"route", "route <file> <r1> <c1> <r2> <c2> [manhattan|euclidean]", "find a route on a grid map"},
	{"info", "info", "print a summary of the current graph"},
	{"help", "help", "show this table"},
	{"exit", "exit", "leave the session"},
}

// Eval parses and executes one command line. It returns the rendered
// output, or ErrExit when the session should end. A blank line is a
// no-op.
func (s *Session) Eval(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug("eval", "command", name, "args", args)

	switch name {
	case "create":
		return s.cmdCreate(args)
	case "load":
		return s.cmdLoad(args)
	case "add_vertex":
		return s.cmdAddVertex(args)
	case "add_edge":
		return s.cmdAddEdge(args)
	case "remove_vertex":
		return s.cmdRemoveVertex(args)
	case "remove_edge":
		return s.cmdRemoveEdge(args)
	case "list_vertices":
		return s.cmdListVertices()
	case "list_edges":
		return s.cmdListEdges()
	case "connected":
		return s.cmdConnected(args)
	case "components":
		return s.cmdComponents(args)
	case "shortest_path":
		return s.cmdShortestPath(args)
	case "distances":
		return s.cmdDistances(args)
	case "mst":
		return s.cmdMST(args)
	case "max_flow":
		return s.cmdMaxFlow(args)
	case "matching":
		return s.cmdMatching()
	case "route":
		return s.cmdRoute(args)
	case "info":
		return s.cmdInfo()
	case "help":
		return s.cmdHelp(), nil
	case "exit", "quit":
		return "", ErrExit
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func (s *Session) cmdCreate(args []string) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", usage("create")
	}
	n, err := parseCount(args[0])
	if err != nil {
		return "", err
	}
	directed, err := s.parseMode(args[1:])
	if err != nil {
		return "", err
	}

	g, err := core.Load(directed, n, nil)
	if err != nil {
		return "", err
	}
	s.graph = g
	s.log.Info("graph created", "vertices", n, "directed", directed)

	return s.okf("created %s graph with %d vertices", modeName(directed), n), nil
}

func (s *Session) cmdLoad(args []string) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", usage("load")
	}
	directed, err := s.parseMode(args[1:])
	if err != nil {
		return "", err
	}

	g, err := graphfile.LoadFile(args[0], directed)
	if err != nil {
		return "", err
	}
	s.graph = g
	s.log.Info("graph loaded", "file", args[0],
		"vertices", g.VertexCount(), "edges", g.EdgeCount())

	summary, err := s.cmdInfo()
	if err != nil {
		return "", err
	}

	return s.okf("%s graph loaded from %s", modeName(directed), args[0]) + "\n" + summary, nil
}

func (s *Session) cmdAddVertex(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	if len(args) != 1 {
		return "", usage("add_vertex")
	}
	id, err := parseVertex(args[0])
	if err != nil {
		return "", err
	}
	if err := s.graph.AddVertex(id); err != nil {
		return "", err
	}

	return s.okf("vertex %d added", id), nil
}

func (s *Session) cmdAddEdge(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	if len(args) < 2 || len(args) > 3 {
		return "", usage("add_edge")
	}
	u, err := parseVertex(args[0])
	if err != nil {
		return "", err
	}
	v, err := parseVertex(args[1])
	if err != nil {
		return "", err
	}
	weight := 1.0
	if len(args) == 3 {
		weight, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return "", fmt.Errorf("%w: bad weight %q", ErrUsage, args[2])
		}
	}
	if err := s.graph.AddEdge(u, v, weight); err != nil {
		return "", err
	}

	return s.okf("edge %d → %d (weight %s) added", u, v, s.weight(weight)), nil
}

func (s *Session) cmdRemoveVertex(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	if len(args) != 1 {
		return "", usage("remove_vertex")
	}
	id, err := parseVertex(args[0])
	if err != nil {
		return "", err
	}
	if err := s.graph.RemoveVertex(id); err != nil {
		return "", err
	}

	return s.okf("vertex %d removed along with its edges", id), nil
}

func (s *Session) cmdRemoveEdge(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	if len(args) != 2 {
		return "", usage("remove_edge")
	}
	u, err := parseVertex(args[0])
	if err != nil {
		return "", err
	}
	v, err := parseVertex(args[1])
	if err != nil {
		return "", err
	}
	if err := s.graph.RemoveEdge(u, v); err != nil {
		return "", err
	}

	return s.okf("edge %d → %d removed", u, v), nil
}

func (s *Session) cmdListVertices() (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	vertices := s.graph.Vertices()
	if len(vertices) == 0 {
		return s.theme.warn.Render("the graph has no vertices"), nil
	}

	return s.theme.title.Render("Vertices: ") + intList(vertices) + "\n" +
		s.theme.dim.Render(fmt.Sprintf("total: %d", len(vertices))), nil
}

func (s *Session) cmdListEdges() (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	edges := s.graph.Edges()
	if len(edges) == 0 {
		return s.theme.warn.Render("the graph has no edges"), nil
	}

	t := s.newTable("#", "From", "To", "Weight")
	for i, e := range edges {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.From), strconv.Itoa(e.To), s.weight(e.Weight))
	}

	return t.Render() + "\n" + s.theme.dim.Render(fmt.Sprintf("total: %d", len(edges))), nil
}

func (s *Session) cmdConnected(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	opts, label, err := connectivityOptions(args)
	if err != nil {
		return "", err
	}

	ok, err := connectivity.IsConnected(s.graph, opts...)
	if err != nil {
		return "", err
	}
	if ok {
		return s.theme.ok.Render(fmt.Sprintf("✓ the graph is %sconnected", label)), nil
	}

	return s.theme.warn.Render(fmt.Sprintf("⚠ the graph is not %sconnected", label)), nil
}

func (s *Session) cmdComponents(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	opts, label, err := connectivityOptions(args)
	if err != nil {
		return "", err
	}

	groups, err := connectivity.Components(s.graph, opts...)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return s.theme.warn.Render("the graph is empty"), nil
	}

	t := s.newTable("#", "Vertices", "Size")
	for i, group := range groups {
		t.Row(strconv.Itoa(i+1), intList(group), strconv.Itoa(len(group)))
	}

	return s.theme.title.Render(label+"connected components") + "\n" + t.Render() + "\n" +
		s.theme.dim.Render(fmt.Sprintf("total: %d", len(groups))), nil
}

func (s *Session) cmdShortestPath(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	if len(args) != 2 {
		return "", usage("shortest_path")
	}
	from, err := parseVertex(args[0])
	if err != nil {
		return "", err
	}
	to, err := parseVertex(args[1])
	if err != nil {
		return "", err
	}

	p, err := dijkstra.ShortestPath(s.graph, from, to)
	if err != nil {
		return "", err
	}

	return s.theme.title.Render(fmt.Sprintf("Shortest path %d → %d", from, to)) + "\n" +
		"path: " + pathArrows(p.Vertices) + "\n" +
		"distance: " + s.theme.accent.Render(s.weight(p.Weight)), nil
}

func (s *Session) cmdDistances(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	if len(args) != 1 {
		return "", usage("distances")
	}
	from, err := parseVertex(args[0])
	if err != nil {
		return "", err
	}

	dist, err := dijkstra.Distances(s.graph, from)
	if err != nil {
		return "", err
	}

	reached := make([]int, 0, len(dist))
	for v := range dist {
		reached = append(reached, v)
	}
	sort.Ints(reached)

	t := s.newTable("Vertex", "Distance", "Path")
	for _, v := range reached {
		t.Row(strconv.Itoa(v), s.weight(dist[v].Weight), pathArrows(rebuildPath(dist, v)))
	}

	return s.theme.title.Render(fmt.Sprintf("Distances from vertex %d", from)) + "\n" +
		t.Render() + "\n" +
		s.theme.dim.Render(fmt.Sprintf("reachable: %d of %d", len(reached), s.graph.VertexCount())), nil
}

func (s *Session) cmdMST(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}

	opts := []mst.Option{}
	method := mst.MethodPrim
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case mst.MethodPrim, mst.MethodKruskal:
			method = strings.ToLower(arg)
			opts = append(opts, mst.WithMethod(method))
		default:
			root, err := parseVertex(arg)
			if err != nil {
				return "", err
			}
			opts = append(opts, mst.WithRoot(root))
		}
	}

	tree, total, err := mst.Compute(s.graph, opts...)
	if err != nil {
		return "", err
	}
	if len(tree) == 0 {
		return s.theme.warn.Render("the spanning tree has no edges"), nil
	}

	t := s.newTable("#", "From", "To", "Weight")
	for i, e := range tree {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.From), strconv.Itoa(e.To), s.weight(e.Weight))
	}

	return s.theme.title.Render("Minimum spanning tree ("+method+")") + "\n" + t.Render() + "\n" +
		s.theme.title.Render("total weight: ") + s.theme.accent.Render(s.weight(total)), nil
}

func (s *Session) cmdMaxFlow(args []string) (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}
	if len(args) != 2 {
		return "", usage("max_flow")
	}
	source, err := parseVertex(args[0])
	if err != nil {
		return "", err
	}
	sink, err := parseVertex(args[1])
	if err != nil {
		return "", err
	}

	res, err := flow.EdmondsKarp(s.graph, source, sink)
	if err != nil {
		return "", err
	}

	t := s.newTable("From", "To", "Flow", "Capacity")
	for _, fe := range res.Edges {
		t.Row(strconv.Itoa(fe.From), strconv.Itoa(fe.To), s.weight(fe.Flow), s.weight(fe.Capacity))
	}

	return s.theme.title.Render(fmt.Sprintf("Maximum flow %d → %d", source, sink)) + "\n" +
		t.Render() + "\n" +
		s.theme.title.Render("flow value: ") + s.theme.accent.Render(s.weight(res.MaxFlow)), nil
}

func (s *Session) cmdMatching() (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}

	pairs, err := matching.MaxMatching(s.graph)
	if err != nil {
		return "", err
	}
	if len(pairs) == 0 {
		return s.theme.ok.Render("✓ the graph is bipartite") + "\n" +
			s.theme.warn.Render("no edges to match"), nil
	}

	t := s.newTable("Left", "Right")
	for _, p := range pairs {
		t.Row(strconv.Itoa(p.Left), strconv.Itoa(p.Right))
	}

	return s.theme.ok.Render("✓ the graph is bipartite") + "\n" + t.Render() + "\n" +
		s.theme.dim.Render(fmt.Sprintf("matched pairs: %d", len(pairs))), nil
}

func (s *Session) cmdRoute(args []string) (string, error) {
	if len(args) < 5 || len(args) > 6 {
		return "", usage("route")
	}
	coords := make([]int, 4)
	for i, arg := range args[1:5] {
		c, err := strconv.Atoi(arg)
		if err != nil {
			return "", fmt.Errorf("%w: bad coordinate %q", ErrUsage, arg)
		}
		coords[i] = c
	}
	h := grid.Manhattan
	hName := "manhattan"
	if len(args) == 6 {
		switch strings.ToLower(args[5]) {
		case "manhattan":
		case "euclidean":
			h, hName = grid.Euclidean, "euclidean"
		default:
			return "", fmt.Errorf("%w: unknown heuristic %q", ErrUsage, args[5])
		}
	}

	m, err := graphfile.LoadGridFile(args[0])
	if err != nil {
		return "", err
	}
	start := grid.Coord{Row: coords[0], Col: coords[1]}
	goal := grid.Coord{Row: coords[2], Col: coords[3]}
	res, err := grid.AStar(m, start, goal, h)
	if err != nil {
		return "", err
	}

	steps := make([]string, len(res.Path))
	for i, c := range res.Path {
		steps[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}

	return s.theme.title.Render(fmt.Sprintf("Route (%d,%d) → (%d,%d), %s heuristic",
		start.Row, start.Col, goal.Row, goal.Col, hName)) + "\n" +
		"path: " + strings.Join(steps, " → ") + "\n" +
		"cost: " + s.theme.accent.Render(s.weight(res.Cost)) + "\n" +
		s.theme.dim.Render(fmt.Sprintf("visited %d cells (%.1f%%) in %s",
			res.Visited, res.VisitedPercent, res.Elapsed)), nil
}

func (s *Session) cmdInfo() (string, error) {
	if err := s.requireGraph(); err != nil {
		return "", err
	}

	return s.theme.title.Render("Graph info") + "\n" +
		fmt.Sprintf("mode: %s\nvertices: %d\nedges: %d",
			modeName(s.graph.Directed()), s.graph.VertexCount(), s.graph.EdgeCount()), nil
}

func (s *Session) cmdHelp() string {
	t := s.newTable("Command", "Usage", "Description")
	for _, c := range commands {
		t.Row(c.name, c.usage, c.desc)
	}

	return t.Render()
}

// requireGraph guards commands that need an existing graph.
func (s *Session) requireGraph() error {
	if s.graph == nil {
		return ErrNoGraph
	}

	return nil
}

// parseMode reads an optional directed/undirected argument, falling
// back to the configured default mode.
func (s *Session) parseMode(args []string) (bool, error) {
	if len(args) == 0 {
		return s.cfg.Directed, nil
	}
	switch strings.ToLower(args[0]) {
	case "directed":
		return true, nil
	case "undirected":
		return false, nil
	default:
		return false, fmt.Errorf("%w: want directed or undirected, got %q", ErrUsage, args[0])
	}
}

func modeName(directed bool) string {
	if directed {
		return "directed"
	}

	return "undirected"
}

// connectivityOptions reads an optional "strong" argument.
func connectivityOptions(args []string) ([]connectivity.Option, string, error) {
	switch {
	case len(args) == 0:
		return nil, "", nil
	case len(args) == 1 && strings.EqualFold(args[0], "strong"):
		return []connectivity.Option{connectivity.WithPolicy(connectivity.PolicyStrong)}, "strongly ", nil
	default:
		return nil, "", fmt.Errorf("%w: the only option is 'strong'", ErrUsage)
	}
}

func parseVertex(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: bad vertex %q", ErrUsage, arg)
	}

	return id, nil
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad vertex count %q", ErrUsage, arg)
	}

	return n, nil
}

// usage wraps ErrUsage with the command's expected form.
func usage(name string) error {
	for _, c := range commands {
		if c.name == name {
			return fmt.Errorf("%w: %s", ErrUsage, c.usage)
		}
	}

	return ErrUsage
}

// rebuildPath walks the Prev links from v back to the source.
func rebuildPath(dist map[int]dijkstra.Distance, v int) []int {
	var reversed []int
	for cur := v; ; {
		reversed = append(reversed, cur)
		d := dist[cur]
		if d.Prev == dijkstra.NoPrev {
			break
		}
		cur = d.Prev
	}
	path := make([]int, len(reversed))
	for i, u := range reversed {
		path[len(path)-1-i] = u
	}

	return path
}
