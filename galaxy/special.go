package galaxy

import "math/rand"

// OriginSectorID is the fixed home sector. It always exists, is always
// reserved, and always hosts the unique origin-class port.
const OriginSectorID = 1

// allocateSpecialSectors runs before the general port distributor. It
// reserves sector 1 with the origin port and, when enabled, designates one
// frontier sector as a reserved hazard: no port, elevated resource density.
// Reserved sectors are excluded from every other component's candidate pool.
func allocateSpecialSectors(cfg *GenerationConfig, sectors []*Sector, ports map[int]*Port, rng *rand.Rand) {
	origin := sectors[OriginSectorID]
	origin.Reserved = true
	p := newPort(1, OriginSectorID, ClassOrigin)
	ports[p.ID] = p
	origin.PortID = p.ID

	if !cfg.HazardSectorEnabled {
		return
	}
	var frontier []*Sector
	for _, s := range sectors[1:] {
		if s.Zone == ZoneFrontier && !s.Reserved {
			frontier = append(frontier, s)
		}
	}
	if len(frontier) == 0 {
		return
	}
	hazard := frontier[rng.Intn(len(frontier))]
	hazard.Reserved = true
	hazard.ResourceDensity = 80 + rng.Intn(21)
}
