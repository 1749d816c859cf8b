package galaxy

import (
	"fmt"
	"math/rand"
	"sort"
)

// CommodityEntry is one row of a port's commodity table.
type CommodityEntry struct {
	Buys      bool `json:"buys"`
	Sells     bool `json:"sells"`
	BasePrice int  `json:"base_price"`
	Capacity  int  `json:"capacity"`
}

// Port is a sector-attached trading facility. Its commodity table is a pure
// function of its class; price drift and inventory are runtime concerns
// outside this engine.
type Port struct {
	ID          int                          `json:"id"`
	SectorID    int                          `json:"sector_id"`
	Class       PortClass                    `json:"class"`
	Name        string                       `json:"name"`
	Commodities map[Commodity]CommodityEntry `json:"commodities"`
}

// newPort builds a port with its commodity table looked up from the static
// class pattern table.
func newPort(id, sectorID int, class PortClass) *Port {
	pattern := PatternFor(class)
	table := make(map[Commodity]CommodityEntry, len(AllCommodities))
	for _, c := range AllCommodities {
		def := commodityCatalog[c]
		table[c] = CommodityEntry{BasePrice: def.basePrice, Capacity: def.capacity}
	}
	for _, c := range pattern.Buys {
		e := table[c]
		e.Buys = true
		table[c] = e
	}
	for _, c := range pattern.Sells {
		e := table[c]
		e.Sells = true
		table[c] = e
	}
	return &Port{
		ID:          id,
		SectorID:    sectorID,
		Class:       class,
		Name:        fmt.Sprintf("%s %d", class, sectorID),
		Commodities: table,
	}
}

// defaultClassWeights holds the per-zone sampling weights used when the
// configuration does not override them. Common balanced classes dominate in
// core and corridor space; the premium Black Hole and Nova classes appear
// only in the frontier.
var defaultClassWeights = map[Zone]map[PortClass]int{
	ZoneCore: {
		ClassMiningOperation: 5, ClassAgriculturalCenter: 5, ClassIndustrialHub: 15,
		ClassDistributionCenter: 20, ClassCollectionHub: 10, ClassMixedMarket: 15,
		ClassResourceExchange: 15, ClassLuxuryMarket: 10, ClassAdvancedTechHub: 5,
	},
	ZoneCorridor: {
		ClassMiningOperation: 15, ClassAgriculturalCenter: 15, ClassIndustrialHub: 20,
		ClassDistributionCenter: 10, ClassCollectionHub: 15, ClassMixedMarket: 15,
		ClassResourceExchange: 10,
	},
	ZoneBorder: {
		ClassMiningOperation: 15, ClassAgriculturalCenter: 15, ClassIndustrialHub: 20,
		ClassDistributionCenter: 10, ClassCollectionHub: 15, ClassMixedMarket: 15,
		ClassResourceExchange: 10,
	},
	ZoneFrontier: {
		ClassMiningOperation: 20, ClassAgriculturalCenter: 20, ClassIndustrialHub: 15,
		ClassCollectionHub: 20, ClassMixedMarket: 15, ClassBlackHole: 5, ClassNova: 5,
	},
}

// sampleClass draws a port class from the zone's weight table. Classes are
// walked in ascending order so the draw depends only on the rng stream.
func sampleClass(rng *rand.Rand, weights map[PortClass]int) PortClass {
	total := 0
	for class := PortClass(1); class < PortClassCount; class++ {
		total += weights[class]
	}
	if total == 0 {
		return ClassMixedMarket
	}
	pick := rng.Intn(total)
	for class := PortClass(1); class < PortClassCount; class++ {
		pick -= weights[class]
		if pick < 0 {
			return class
		}
	}
	return ClassMixedMarket
}

// distributePorts selects port-hosting sectors and assigns classes. It
// mutates sectors and returns the ports placed (beyond any already created
// by the special allocator) plus the shortfall against the requested count.
func distributePorts(cfg *GenerationConfig, g *graph, sectors []*Sector, ports map[int]*Port, rng *rand.Rand) int {
	remaining := cfg.PortCount - len(ports)
	if remaining <= 0 {
		return 0
	}

	weights := cfg.ClassWeights
	if weights == nil {
		weights = defaultClassWeights
	}

	// Candidates grouped by zone, each group in decreasing degree order so
	// natural hubs are favored. Ties break on ascending id to stay
	// deterministic.
	byZone := make(map[Zone][]*Sector, 4)
	zoneSize := make(map[Zone]int, 4)
	for _, s := range sectors[1:] {
		zoneSize[s.Zone]++
		if s.Reserved || s.HasPort() {
			continue
		}
		byZone[s.Zone] = append(byZone[s.Zone], s)
	}
	for _, group := range byZone {
		sort.Slice(group, func(i, j int) bool {
			di, dj := g.deg(group[i].ID), g.deg(group[j].ID)
			if di != dj {
				return di > dj
			}
			return group[i].ID < group[j].ID
		})
	}

	nextPortID := len(ports) + 1
	placed := 0
	place := func(s *Sector, zw map[PortClass]int) {
		p := newPort(nextPortID, s.ID, sampleClass(rng, zw))
		ports[p.ID] = p
		s.PortID = p.ID
		nextPortID++
		placed++
	}

	zones := []Zone{ZoneCore, ZoneCorridor, ZoneBorder, ZoneFrontier}

	// First pass: per-zone quotas proportional to zone size, so frontier
	// space keeps its share of premium ports even when core hubs would
	// otherwise win every slot.
	for _, zone := range zones {
		quota := remaining * zoneSize[zone] / cfg.SectorCount
		zw := weights[zone]
		if zw == nil {
			zw = defaultClassWeights[zone]
		}
		taken := 0
		for _, s := range byZone[zone] {
			if taken >= quota || placed >= remaining {
				break
			}
			if s.HasPort() || violatesSpacing(cfg, g, sectors, s) {
				continue
			}
			place(s, zw)
			taken++
		}
	}

	// Second pass: fill any slots the quotas left open, still in zone order
	// and still honoring spacing.
	for _, zone := range zones {
		if placed >= remaining {
			break
		}
		zw := weights[zone]
		if zw == nil {
			zw = defaultClassWeights[zone]
		}
		for _, s := range byZone[zone] {
			if placed >= remaining {
				break
			}
			if s.HasPort() || violatesSpacing(cfg, g, sectors, s) {
				continue
			}
			place(s, zw)
		}
	}

	return remaining - placed
}

// violatesSpacing reports whether placing a port on s would put it within
// the configured graph distance of an existing port. Core sectors are exempt
// so the trade-dense center can cluster.
func violatesSpacing(cfg *GenerationConfig, g *graph, sectors []*Sector, s *Sector) bool {
	if s.Zone == ZoneCore {
		return false
	}
	radius := cfg.spacing()
	// Depth-limited BFS treating every warp as undirected: a tunnel in
	// either direction still puts two ports within trading distance, so
	// incoming tunnel sources count the same as outgoing hops.
	type hop struct{ id, depth int }
	visited := map[int]bool{s.ID: true}
	queue := []hop{{s.ID, 0}}
	visit := func(id, depth int) bool {
		if visited[id] {
			return false
		}
		visited[id] = true
		if sectors[id].HasPort() {
			return true
		}
		queue = append(queue, hop{id, depth})
		return false
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= radius {
			continue
		}
		for _, he := range g.neighbors(cur.id) {
			if visit(he.to, cur.depth+1) {
				return true
			}
		}
		for _, from := range g.tunnelSources(cur.id) {
			if visit(from, cur.depth+1) {
				return true
			}
		}
	}
	return false
}
