package galaxy

import (
	"container/heap"
	"fmt"
)

// Pathfinder answers shortest-path and reachability queries over a finished
// universe. It holds no mutable state beyond the immutable graph, so a
// single Pathfinder is safe for unlimited concurrent callers.
type Pathfinder struct {
	g *graph
}

// Path is the result of a shortest-path query: the ordered sector ids from
// origin to destination inclusive, and the total traversal cost.
type Path struct {
	Sectors []int `json:"sectors"`
	Cost    int   `json:"cost"`
}

type pqItem struct {
	id   int
	dist int
}

type pathQueue []pqItem

func (q pathQueue) Len() int           { return len(q) }
func (q pathQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q pathQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pathQueue) Push(x any)        { *q = append(*q, x.(pqItem)) }
func (q *pathQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

const unvisited = int(^uint(0) >> 1) // max int

// ShortestPath runs Dijkstra from one sector to another, honoring tunnel
// direction. Stale heap entries are skipped rather than decreased in place.
// Returns ErrUnreachable if no path exists, which a validated universe
// never produces for queries from sector 1.
func (p *Pathfinder) ShortestPath(from, to int) (Path, error) {
	if from < 1 || from > p.g.n {
		return Path{}, fmt.Errorf("origin %d: %w", from, ErrSectorNotFound)
	}
	if to < 1 || to > p.g.n {
		return Path{}, fmt.Errorf("destination %d: %w", to, ErrSectorNotFound)
	}
	if from == to {
		return Path{Sectors: []int{from}}, nil
	}

	dist := make([]int, p.g.n+1)
	prev := make([]int, p.g.n+1)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[from] = 0

	pq := pathQueue{{id: from}}
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(pqItem)
		if cur.dist > dist[cur.id] {
			continue // stale entry
		}
		if cur.id == to {
			break
		}
		for _, he := range p.g.neighbors(cur.id) {
			next := cur.dist + he.cost
			if next < dist[he.to] {
				dist[he.to] = next
				prev[he.to] = cur.id
				heap.Push(&pq, pqItem{id: he.to, dist: next})
			}
		}
	}

	if dist[to] == unvisited {
		return Path{}, fmt.Errorf("%d -> %d: %w", from, to, ErrUnreachable)
	}
	route := []int{to}
	for cur := to; cur != from; cur = prev[cur] {
		route = append(route, prev[cur])
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return Path{Sectors: route, Cost: dist[to]}, nil
}

// ReachableWithin returns the ascending ids of every sector reachable from
// the origin with cumulative edge cost at most budget. The origin itself is
// always included.
func (p *Pathfinder) ReachableWithin(from, budget int) ([]int, error) {
	if from < 1 || from > p.g.n {
		return nil, fmt.Errorf("origin %d: %w", from, ErrSectorNotFound)
	}
	dist := make([]int, p.g.n+1)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[from] = 0

	pq := pathQueue{{id: from}}
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(pqItem)
		if cur.dist > dist[cur.id] {
			continue
		}
		for _, he := range p.g.neighbors(cur.id) {
			next := cur.dist + he.cost
			if next <= budget && next < dist[he.to] {
				dist[he.to] = next
				heap.Push(&pq, pqItem{id: he.to, dist: next})
			}
		}
	}

	var out []int
	for id := 1; id <= p.g.n; id++ {
		if dist[id] != unvisited {
			out = append(out, id)
		}
	}
	return out, nil
}
