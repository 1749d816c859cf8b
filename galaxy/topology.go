package galaxy

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"galaxygen/internal/log"
)

// bandSeedMix folds a band index into the master seed so each augmentation
// worker gets an independent deterministic stream. Workers must not share
// the master rng or output would depend on goroutine scheduling.
const bandSeedMix int64 = 0x6A09E667F3BCC909

// tunnelChance is the probability that a cross-band link is a one-way
// tunnel rather than a standard lane.
const tunnelChance = 0.05

// buildTopology produces the connected base graph: a random spanning tree
// over all sectors, then per-band augmentation to each band's target average
// degree, then a handful of cross-band links. Connectivity holds by
// construction after the spanning-tree phase.
func buildTopology(cfg *GenerationConfig, g *graph, rng *rand.Rand) error {
	spanningTree(cfg, g, rng)
	log.Debug("spanning tree complete", "sectors", cfg.SectorCount, "edges", len(g.edges))

	results := make([][]Edge, len(cfg.DensityBands))
	var eg errgroup.Group
	for i, band := range cfg.DensityBands {
		i, band := i, band
		eg.Go(func() error {
			results[i] = bandProposals(cfg, g, band, i)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	// Merge in fixed band order; the workers already respected degree caps
	// and duplicates against the frozen tree plus their own additions.
	for i, proposals := range results {
		for _, e := range proposals {
			if _, err := g.addEdge(e.From, e.To, e.Kind, e.Cost); err != nil {
				return err
			}
		}
		log.Debug("band augmented", "band", i+1, "added", len(proposals))
	}

	crossBandLinks(cfg, g, rng)
	log.Debug("topology complete", "edges", len(g.edges))
	return nil
}

// spanningTree attaches sectors 2..N in seeded random order, each to a
// random already-connected sector with spare degree. The attachable pool
// only ever shrinks when a sector hits the max-degree cap, and every new
// sector enters it at degree 1, so attachment never stalls.
func spanningTree(cfg *GenerationConfig, g *graph, rng *rand.Rand) {
	attachable := make([]int, 1, cfg.SectorCount)
	attachable[0] = OriginSectorID
	for _, k := range rng.Perm(cfg.SectorCount - 1) {
		id := k + 2
		idx := rng.Intn(len(attachable))
		anchor := attachable[idx]
		g.addEdge(anchor, id, EdgeLane, 1)
		if g.deg(anchor) >= cfg.MaxDegree {
			attachable[idx] = attachable[len(attachable)-1]
			attachable = attachable[:len(attachable)-1]
		}
		attachable = append(attachable, id)
	}
}

// bandProposals generates intra-band edge candidates for one density band.
// It only reads the shared graph (frozen during the parallel phase) and
// tracks its own degree deltas, so multiple bands can run concurrently.
// Edge addition is rejected and redrawn on duplicates or degree-cap hits,
// with a bounded attempt budget so an over-constrained band degrades to
// fewer edges instead of looping.
func bandProposals(cfg *GenerationConfig, g *graph, band DensityBand, index int) []Edge {
	m := band.size()
	if m < 2 {
		return nil
	}
	degSum := 0
	for id := band.From; id <= band.To; id++ {
		degSum += g.deg(id)
	}
	needed := (int(band.TargetDegree*float64(m)) - degSum + 1) / 2
	if needed <= 0 {
		return nil
	}

	sub := rand.New(rand.NewSource(cfg.Seed ^ int64(index+1)*bandSeedMix))
	localDeg := make([]int, m)
	localSeen := make(map[edgeKey]struct{}, needed)
	proposals := make([]Edge, 0, needed)

	attempts := 0
	maxAttempts := needed*20 + 100
	for len(proposals) < needed && attempts < maxAttempts {
		attempts++
		a := band.From + sub.Intn(m)
		b := band.From + sub.Intn(m)
		if a == b {
			continue
		}
		if g.deg(a)+localDeg[a-band.From] >= cfg.MaxDegree ||
			g.deg(b)+localDeg[b-band.From] >= cfg.MaxDegree {
			continue
		}
		k := keyFor(a, b)
		if _, dup := localSeen[k]; dup {
			continue
		}
		if g.hasEdge(a, b) {
			continue
		}
		localSeen[k] = struct{}{}
		localDeg[a-band.From]++
		localDeg[b-band.From]++
		proposals = append(proposals, Edge{From: k.a, To: k.b, Kind: EdgeLane, Cost: 1})
	}
	return proposals
}

// crossBandLinks adds a small number of links between adjacent bands so the
// bands don't degenerate into clusters joined only by tree edges. A few of
// these come out as one-way tunnels.
func crossBandLinks(cfg *GenerationConfig, g *graph, rng *rand.Rand) {
	bands := cfg.DensityBands
	count := len(bands) - 1 + cfg.SectorCount/40
	for j := 0; j < count; j++ {
		lo := bands[j%(len(bands)-1)]
		hi := bands[j%(len(bands)-1)+1]
		for attempt := 0; attempt < 50; attempt++ {
			a := lo.From + rng.Intn(lo.size())
			b := hi.From + rng.Intn(hi.size())
			if g.deg(a) >= cfg.MaxDegree || g.deg(b) >= cfg.MaxDegree || g.hasEdge(a, b) {
				continue
			}
			kind := EdgeLane
			if rng.Float64() < tunnelChance {
				kind = EdgeTunnel
			}
			g.addEdge(a, b, kind, 1)
			break
		}
	}
}
