package galaxy

import (
	"fmt"

	"galaxygen/internal/log"
)

// maxRepairPasses bounds the validator's bridging attempts. The topology
// generator guarantees connectivity by construction, so needing even one
// pass indicates a generator defect.
const maxRepairPasses = 5

// validateConnectivity breadth-first traverses from sector 1 over the
// finished edge set, following tunnels one-way. If any sector is
// unreachable it bridges the lowest unreachable id to its nearest reachable
// id and traverses again, up to maxRepairPasses, then fails with
// ErrRepairExhausted. Returns the number of repair passes used.
func validateConnectivity(g *graph) (int, error) {
	for pass := 0; ; pass++ {
		unreached := unreachableFrom(g, OriginSectorID)
		if len(unreached) == 0 {
			return pass, nil
		}
		if pass >= maxRepairPasses {
			return pass, fmt.Errorf("%d sectors still unreachable after %d passes: %w",
				len(unreached), pass, ErrRepairExhausted)
		}
		u := unreached[0]
		r := nearestReachable(g, u, unreached)
		log.Warn("unreachable component found, bridging", "pass", pass+1, "from", u, "to", r, "unreached", len(unreached))
		g.addEdge(u, r, EdgeLane, 1)
	}
}

// unreachableFrom returns the ascending ids not reachable from start.
func unreachableFrom(g *graph, start int) []int {
	visited := make([]bool, g.n+1)
	visited[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, he := range g.neighbors(cur) {
			if !visited[he.to] {
				visited[he.to] = true
				queue = append(queue, he.to)
			}
		}
	}
	var out []int
	for id := 1; id <= g.n; id++ {
		if !visited[id] {
			out = append(out, id)
		}
	}
	return out
}

// nearestReachable picks the reachable sector id numerically closest to u,
// preferring the smaller id on ties.
func nearestReachable(g *graph, u int, unreached []int) int {
	isUnreached := make(map[int]bool, len(unreached))
	for _, id := range unreached {
		isUnreached[id] = true
	}
	best := -1
	bestDist := g.n + 1
	for id := 1; id <= g.n; id++ {
		if isUnreached[id] {
			continue
		}
		d := id - u
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best = id
			bestDist = d
		}
	}
	return best
}
