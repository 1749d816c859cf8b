// Package galaxy procedurally builds a game universe: a connected graph of
// sectors, the warp links between them, and trading ports with
// class-specific economics. Generation is deterministic for a fixed seed and
// configuration, and the returned Universe is immutable and safe for
// unlimited concurrent readers.
package galaxy

import (
	"math/rand"
	"sort"

	"galaxygen/internal/log"
)

// Universe is the aggregate generation result. All exported fields are
// plain data and JSON-serializable; the navigation indexes are rebuilt with
// Reindex after deserialization.
type Universe struct {
	Seed    int64            `json:"seed"`
	Config  GenerationConfig `json:"config"`
	Sectors map[int]*Sector  `json:"sectors"`
	Ports   map[int]*Port    `json:"ports"` // keyed by port id
	Edges   []Edge           `json:"edges"`
	Status  Status           `json:"status"`

	g            *graph
	portBySector map[int]int
}

// Generate runs the full pipeline: validate config, build sectors and
// classify zones, allocate special sectors, build the topology, place
// ports, then validate connectivity. Either a complete validated Universe
// is returned or a typed error; callers never see a partial structure.
func Generate(cfg GenerationConfig) (*Universe, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Info("generating universe", "seed", cfg.Seed, "sectors", cfg.SectorCount, "ports", cfg.PortCount)

	rng := rand.New(rand.NewSource(cfg.Seed))

	// Sectors in id order so the rng stream is stable.
	sectors := make([]*Sector, cfg.SectorCount+1)
	for id := 1; id <= cfg.SectorCount; id++ {
		sectors[id] = &Sector{
			ID:              id,
			Zone:            classifyZone(id, cfg.DensityBands),
			ResourceDensity: rng.Intn(101),
		}
	}

	ports := make(map[int]*Port, cfg.PortCount)
	allocateSpecialSectors(&cfg, sectors, ports, rng)

	g := newGraph(cfg.SectorCount)
	if err := buildTopology(&cfg, g, rng); err != nil {
		return nil, err
	}

	shortfall := distributePorts(&cfg, g, sectors, ports, rng)
	if shortfall > 0 {
		log.Warn("port placement fell short", "requested", cfg.PortCount, "shortfall", shortfall)
	}

	repairs, err := validateConnectivity(g)
	if err != nil {
		return nil, err
	}

	// Freeze adjacency onto the sectors, ascending like a sector scanner
	// would report warps.
	sectorMap := make(map[int]*Sector, cfg.SectorCount)
	for id := 1; id <= cfg.SectorCount; id++ {
		s := sectors[id]
		for _, he := range g.neighbors(id) {
			s.Warps = append(s.Warps, he.to)
		}
		sort.Ints(s.Warps)
		sectorMap[id] = s
	}

	u := &Universe{
		Seed:    cfg.Seed,
		Config:  cfg,
		Sectors: sectorMap,
		Ports:   ports,
		Edges:   g.edges,
		Status: Status{
			Success:          true,
			RepairPassesUsed: repairs,
			PortShortfall:    shortfall,
		},
		g: g,
	}
	u.indexPorts()
	log.Info("universe generated", "edges", len(u.Edges), "ports", len(u.Ports), "repairs", repairs)
	return u, nil
}

func (u *Universe) indexPorts() {
	u.portBySector = make(map[int]int, len(u.Ports))
	for id, p := range u.Ports {
		u.portBySector[p.SectorID] = id
	}
}

// Reindex rebuilds the internal navigation indexes from the exported
// fields. Call it after deserializing a persisted Universe; Generate
// returns an already-indexed one.
func (u *Universe) Reindex() error {
	g, err := graphFromEdges(u.Config.SectorCount, u.Edges)
	if err != nil {
		return err
	}
	u.g = g
	u.indexPorts()
	return nil
}

// GetSector returns the sector with the given id.
func (u *Universe) GetSector(id int) (*Sector, bool) {
	s, ok := u.Sectors[id]
	return s, ok
}

// GetPort returns the port hosted by the given sector, if any.
func (u *Universe) GetPort(sectorID int) (*Port, bool) {
	id, ok := u.portBySector[sectorID]
	if !ok {
		return nil, false
	}
	return u.Ports[id], true
}

// Pathfinder returns the query interface over the finished graph.
func (u *Universe) Pathfinder() *Pathfinder {
	return &Pathfinder{g: u.g}
}

// ShortestPath is shorthand for Pathfinder().ShortestPath.
func (u *Universe) ShortestPath(from, to int) (Path, error) {
	return u.Pathfinder().ShortestPath(from, to)
}

// ReachableWithin is shorthand for Pathfinder().ReachableWithin.
func (u *Universe) ReachableWithin(from, budget int) ([]int, error) {
	return u.Pathfinder().ReachableWithin(from, budget)
}
