package galaxy

// Zone classifies a sector's structural position in the universe. It is
// derived from the sector's id position within the configured density bands
// and cached on the sector at generation time.
type Zone int

const (
	ZoneCore Zone = iota
	ZoneCorridor
	ZoneBorder
	ZoneFrontier
)

func (z Zone) String() string {
	switch z {
	case ZoneCore:
		return "core"
	case ZoneCorridor:
		return "corridor"
	case ZoneBorder:
		return "border"
	case ZoneFrontier:
		return "frontier"
	default:
		return "unknown"
	}
}

// EdgeKind distinguishes standard bidirectional lanes from one-way tunnels.
type EdgeKind int

const (
	EdgeLane EdgeKind = iota
	EdgeTunnel
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeLane:
		return "lane"
	case EdgeTunnel:
		return "tunnel"
	default:
		return "unknown"
	}
}

// Sector is one traversable location in the universe graph. Sectors are
// created during generation and never mutated by this engine afterward.
type Sector struct {
	ID              int  `json:"id"`
	Zone            Zone `json:"zone"`
	ResourceDensity int  `json:"resource_density"` // 0-100
	// Warps holds outgoing neighbor ids in ascending order. For a lane both
	// endpoints list each other; for a tunnel only the entry side lists the
	// exit.
	Warps    []int `json:"warps"`
	PortID   int   `json:"port_id"` // 0 when the sector hosts no port
	Reserved bool  `json:"reserved"`
}

// HasPort reports whether the sector hosts a trading port.
func (s *Sector) HasPort() bool {
	return s.PortID != 0
}

// Edge is a warp link between two sectors. Lanes are stored with From < To
// and are traversable both ways; tunnels are traversable From -> To only.
// No two edges may connect the same unordered pair, regardless of kind.
type Edge struct {
	From int      `json:"from"`
	To   int      `json:"to"`
	Kind EdgeKind `json:"kind"`
	Cost int      `json:"cost"`
}

// Status records the outcome of a generation run.
type Status struct {
	Success          bool `json:"success"`
	RepairPassesUsed int  `json:"repair_passes_used"`
	PortShortfall    int  `json:"port_shortfall"`
}
