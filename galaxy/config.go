package galaxy

// DensityBand defines a contiguous id range and the average degree the
// topology generator should reach within it.
type DensityBand struct {
	From         int     `json:"from" yaml:"from"`
	To           int     `json:"to" yaml:"to"`
	TargetDegree float64 `json:"target_degree" yaml:"target_degree"`
}

func (b DensityBand) size() int {
	return b.To - b.From + 1
}

func (b DensityBand) contains(id int) bool {
	return id >= b.From && id <= b.To
}

// GenerationConfig is the full parameter set for one generation run. The
// zero value is not usable; start from DefaultConfig and adjust.
type GenerationConfig struct {
	Seed        int64 `json:"seed" yaml:"seed"`
	SectorCount int   `json:"sector_count" yaml:"sector_count"`
	PortCount   int   `json:"port_count" yaml:"port_count"`
	// DensityBands must be exactly three contiguous ranges covering
	// 1..SectorCount. Band 1 maps to the core zone, band 2 to corridor, and
	// band 3 is split between border and frontier.
	DensityBands        []DensityBand `json:"density_bands" yaml:"density_bands"`
	MaxDegree           int           `json:"max_degree" yaml:"max_degree"`
	HazardSectorEnabled bool          `json:"hazard_sector_enabled" yaml:"hazard_sector_enabled"`
	// PortSpacing is the minimum graph distance between two port sectors
	// outside the core zone. The source material leaves the radius open, so
	// it is tunable; 0 means the default of 1.
	PortSpacing int `json:"port_spacing" yaml:"port_spacing"`
	// ClassWeights overrides the per-zone port class sampling weights.
	// Nil means the built-in defaults. The origin class must not appear.
	// Keys are the numeric Zone and PortClass values.
	ClassWeights map[Zone]map[PortClass]int `json:"class_weights,omitempty" yaml:"class_weights,omitempty"`
}

// DefaultConfig returns a usable configuration for a universe of n sectors
// with p target ports: a 15% core band at degree 4, a 35% corridor band at
// degree 3, and the remainder at degree 2.5, capped at degree 6 per sector.
func DefaultConfig(seed int64, n, p int) GenerationConfig {
	coreEnd := n * 15 / 100
	if coreEnd < 1 {
		coreEnd = 1
	}
	corridorEnd := n * 50 / 100
	if corridorEnd <= coreEnd {
		corridorEnd = coreEnd + 1
	}
	if corridorEnd >= n {
		corridorEnd = n - 1
	}
	return GenerationConfig{
		Seed:        seed,
		SectorCount: n,
		PortCount:   p,
		DensityBands: []DensityBand{
			{From: 1, To: coreEnd, TargetDegree: 4},
			{From: coreEnd + 1, To: corridorEnd, TargetDegree: 3},
			{From: corridorEnd + 1, To: n, TargetDegree: 2.5},
		},
		MaxDegree:   6,
		PortSpacing: 1,
	}
}

// spacing returns the effective minimum port spacing radius.
func (c *GenerationConfig) spacing() int {
	if c.PortSpacing <= 0 {
		return 1
	}
	return c.PortSpacing
}

// Validate checks the configuration before any generation work begins. It
// returns a *ConfigError describing the first problem found.
func (c *GenerationConfig) Validate() error {
	if c.SectorCount <= 0 {
		return configErrorf("sector_count", "must be positive, got %d", c.SectorCount)
	}
	if c.PortCount < 0 {
		return configErrorf("port_count", "must be non-negative, got %d", c.PortCount)
	}
	if c.PortCount > c.SectorCount {
		return configErrorf("port_count", "exceeds sector count (%d > %d)", c.PortCount, c.SectorCount)
	}
	if c.MaxDegree < 2 {
		return configErrorf("max_degree", "must be at least 2, got %d", c.MaxDegree)
	}
	if len(c.DensityBands) != 3 {
		return configErrorf("density_bands", "expected exactly 3 bands, got %d", len(c.DensityBands))
	}
	next := 1
	for i, b := range c.DensityBands {
		if b.From != next {
			return configErrorf("density_bands",
				"band %d must start at %d (bands must be contiguous and non-overlapping), got %d", i+1, next, b.From)
		}
		if b.To < b.From {
			return configErrorf("density_bands", "band %d has empty range [%d,%d]", i+1, b.From, b.To)
		}
		if b.TargetDegree <= 0 {
			return configErrorf("density_bands", "band %d target degree must be positive, got %g", i+1, b.TargetDegree)
		}
		if b.TargetDegree > float64(c.MaxDegree) {
			return configErrorf("density_bands",
				"band %d target degree %g exceeds max degree %d", i+1, b.TargetDegree, c.MaxDegree)
		}
		next = b.To + 1
	}
	if next != c.SectorCount+1 {
		return configErrorf("density_bands", "bands cover 1..%d, want 1..%d", next-1, c.SectorCount)
	}
	for zone, weights := range c.ClassWeights {
		for class, w := range weights {
			if class == ClassOrigin {
				return configErrorf("class_weights", "origin class is reserved for sector 1 (zone %s)", zone)
			}
			if class < 0 || class >= PortClassCount {
				return configErrorf("class_weights", "unknown port class %d (zone %s)", class, zone)
			}
			if w < 0 {
				return configErrorf("class_weights", "negative weight %d for class %d (zone %s)", w, class, zone)
			}
		}
	}
	return nil
}
