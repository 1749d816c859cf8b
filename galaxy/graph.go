package galaxy

import "fmt"

// halfEdge is one outgoing hop stored in the adjacency list.
type halfEdge struct {
	to   int
	cost int
	kind EdgeKind
}

// edgeKey identifies an edge by its unordered endpoint pair. Tunnels share
// the same key space as lanes, so a tunnel and a lane between the same pair
// count as duplicates.
type edgeKey struct {
	a, b int
}

func keyFor(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// graph is the mutable structure the generation pipeline works on. Sector
// ids are 1..n; index 0 of the id-indexed slices is unused. It is not safe
// for concurrent mutation; the parallel augmentation phase works on local
// proposals and merges them single-threaded.
type graph struct {
	n      int
	out    [][]halfEdge
	in     [][]int // tunnel sources only; lanes appear in out on both ends
	degree []int
	seen   map[edgeKey]struct{}
	edges  []Edge // insertion order, for deterministic iteration
}

func newGraph(n int) *graph {
	return &graph{
		n:      n,
		out:    make([][]halfEdge, n+1),
		in:     make([][]int, n+1),
		degree: make([]int, n+1),
		seen:   make(map[edgeKey]struct{}, n*2),
	}
}

// addEdge inserts a warp link. Re-adding an existing pair is a no-op and
// returns false. Self-loops and out-of-range ids are errors. Degree is
// counted on both endpoints regardless of kind.
func (g *graph) addEdge(a, b int, kind EdgeKind, cost int) (bool, error) {
	if a == b {
		return false, fmt.Errorf("self-loop on sector %d", a)
	}
	if a < 1 || a > g.n || b < 1 || b > g.n {
		return false, fmt.Errorf("edge %d-%d outside sector range 1..%d", a, b, g.n)
	}
	if cost < 1 {
		cost = 1
	}
	k := keyFor(a, b)
	if _, dup := g.seen[k]; dup {
		return false, nil
	}
	g.seen[k] = struct{}{}
	g.out[a] = append(g.out[a], halfEdge{to: b, cost: cost, kind: kind})
	if kind == EdgeLane {
		g.out[b] = append(g.out[b], halfEdge{to: a, cost: cost, kind: kind})
	} else {
		g.in[b] = append(g.in[b], a)
	}
	g.degree[a]++
	g.degree[b]++
	if kind == EdgeLane {
		// Lanes are symmetric; store them normalized.
		g.edges = append(g.edges, Edge{From: k.a, To: k.b, Kind: kind, Cost: cost})
	} else {
		g.edges = append(g.edges, Edge{From: a, To: b, Kind: kind, Cost: cost})
	}
	return true, nil
}

// hasEdge reports whether any edge connects the unordered pair.
func (g *graph) hasEdge(a, b int) bool {
	_, ok := g.seen[keyFor(a, b)]
	return ok
}

// neighbors returns the outgoing neighbor ids of a sector. The returned
// slice aliases internal storage and must not be modified.
func (g *graph) neighbors(id int) []halfEdge {
	if id < 1 || id > g.n {
		return nil
	}
	return g.out[id]
}

// tunnelSources returns the sectors with a one-way warp into id. Lane
// neighbors are not included; they already appear in neighbors.
func (g *graph) tunnelSources(id int) []int {
	if id < 1 || id > g.n {
		return nil
	}
	return g.in[id]
}

func (g *graph) deg(id int) int {
	if id < 1 || id > g.n {
		return 0
	}
	return g.degree[id]
}

// graphFromEdges rebuilds the adjacency structure from a flat edge list,
// used when rehydrating a persisted universe.
func graphFromEdges(n int, edges []Edge) (*graph, error) {
	g := newGraph(n)
	for _, e := range edges {
		if _, err := g.addEdge(e.From, e.To, e.Kind, e.Cost); err != nil {
			return nil, err
		}
	}
	return g, nil
}
