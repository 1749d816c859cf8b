package galaxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patternAsSets converts a class pattern into lookup sets for assertions.
func patternAsSets(class PortClass) (buys, sells map[Commodity]bool) {
	p := PatternFor(class)
	buys = make(map[Commodity]bool, len(p.Buys))
	sells = make(map[Commodity]bool, len(p.Sells))
	for _, c := range p.Buys {
		buys[c] = true
	}
	for _, c := range p.Sells {
		sells[c] = true
	}
	return buys, sells
}

func TestPortCommodityFlagsMatchClassPattern(t *testing.T) {
	u, err := Generate(DefaultConfig(21, 400, 80))
	require.NoError(t, err)
	require.NotEmpty(t, u.Ports)

	for _, p := range u.Ports {
		buys, sells := patternAsSets(p.Class)
		require.Len(t, p.Commodities, len(AllCommodities), "port %d table incomplete", p.ID)
		for _, c := range AllCommodities {
			entry := p.Commodities[c]
			assert.Equal(t, buys[c], entry.Buys, "port %d (%s) buys flag for %s", p.ID, p.Class, c)
			assert.Equal(t, sells[c], entry.Sells, "port %d (%s) sells flag for %s", p.ID, p.Class, c)
			def := commodityCatalog[c]
			assert.Equal(t, def.basePrice, entry.BasePrice, "port %d base price for %s", p.ID, c)
			assert.Equal(t, def.capacity, entry.Capacity, "port %d capacity for %s", p.ID, c)
		}
	}
}

func TestPortSpacingOutsideCore(t *testing.T) {
	u, err := Generate(DefaultConfig(33, 400, 120))
	require.NoError(t, err)

	// No warp of either kind may connect two port sectors unless one of
	// them sits in the exempt core zone.
	for _, e := range u.Edges {
		a, b := u.Sectors[e.From], u.Sectors[e.To]
		if a.HasPort() && b.HasPort() {
			assert.True(t, a.Zone == ZoneCore || b.Zone == ZoneCore,
				"adjacent ports in sectors %d (%s) and %d (%s)", a.ID, a.Zone, b.ID, b.Zone)
		}
	}
}

func TestSpacingCountsTunnelsBothDirections(t *testing.T) {
	cfg := DefaultConfig(1, 6, 0)
	sectors := make([]*Sector, 7)
	for id := 1; id <= 6; id++ {
		sectors[id] = &Sector{ID: id, Zone: ZoneBorder}
	}
	g := newGraph(6)
	_, err := g.addEdge(2, 3, EdgeTunnel, 1)
	require.NoError(t, err)
	_, err = g.addEdge(4, 5, EdgeTunnel, 1)
	require.NoError(t, err)

	// A port upstream of a one-way warp is still one hop from the
	// candidate, even though the candidate's own warp list never reaches
	// back to it.
	sectors[2].PortID = 7
	assert.True(t, violatesSpacing(&cfg, g, sectors, sectors[3]),
		"incoming tunnel from a port sector must block placement")

	sectors[5].PortID = 8
	assert.True(t, violatesSpacing(&cfg, g, sectors, sectors[4]),
		"outgoing tunnel to a port sector must block placement")

	assert.False(t, violatesSpacing(&cfg, g, sectors, sectors[6]),
		"isolated sector is unaffected")

	// Core candidates stay exempt regardless of adjacency.
	sectors[3].Zone = ZoneCore
	assert.False(t, violatesSpacing(&cfg, g, sectors, sectors[3]))
}

func TestSpacingRadiusFollowsIncomingTunnelChains(t *testing.T) {
	cfg := DefaultConfig(1, 6, 0)
	cfg.PortSpacing = 2
	sectors := make([]*Sector, 7)
	for id := 1; id <= 6; id++ {
		sectors[id] = &Sector{ID: id, Zone: ZoneFrontier}
	}
	g := newGraph(6)
	_, err := g.addEdge(1, 2, EdgeTunnel, 1)
	require.NoError(t, err)
	_, err = g.addEdge(2, 3, EdgeTunnel, 1)
	require.NoError(t, err)

	sectors[1].PortID = 9
	assert.True(t, violatesSpacing(&cfg, g, sectors, sectors[3]),
		"port two incoming hops away is inside radius 2")

	cfg.PortSpacing = 1
	assert.False(t, violatesSpacing(&cfg, g, sectors, sectors[3]),
		"port two hops away is outside radius 1")
}

func TestPortShortfallRecordedNotFatal(t *testing.T) {
	// Requesting a port on nearly every sector makes the spacing constraint
	// impossible to satisfy; placement must degrade, not fail.
	cfg := DefaultConfig(2, 100, 95)
	u, err := Generate(cfg)
	require.NoError(t, err)

	assert.True(t, u.Status.Success)
	assert.Positive(t, u.Status.PortShortfall)
	assert.Equal(t, cfg.PortCount, len(u.Ports)+u.Status.PortShortfall)
}

func TestReservedSectorsExcludedFromPorts(t *testing.T) {
	cfg := DefaultConfig(17, 300, 299)
	cfg.HazardSectorEnabled = true
	u, err := Generate(cfg)
	require.NoError(t, err)

	for _, s := range u.Sectors {
		if s.Reserved && s.ID != OriginSectorID {
			assert.False(t, s.HasPort(), "reserved sector %d must not host a port", s.ID)
		}
	}
}

func TestClassSamplingRespectsZoneWeights(t *testing.T) {
	// Confine frontier sampling to a single class and verify every frontier
	// port gets it.
	cfg := DefaultConfig(4, 400, 100)
	cfg.ClassWeights = map[Zone]map[PortClass]int{
		ZoneCore:     defaultClassWeights[ZoneCore],
		ZoneCorridor: defaultClassWeights[ZoneCorridor],
		ZoneBorder:   defaultClassWeights[ZoneBorder],
		ZoneFrontier: {ClassNova: 1},
	}
	u, err := Generate(cfg)
	require.NoError(t, err)

	frontierPorts := 0
	for _, p := range u.Ports {
		if u.Sectors[p.SectorID].Zone == ZoneFrontier {
			frontierPorts++
			assert.Equal(t, ClassNova, p.Class, "port %d in frontier sector %d", p.ID, p.SectorID)
		}
	}
	assert.Positive(t, frontierPorts, "expected at least one frontier port")
}

func TestPremiumClassesStayOutOfCore(t *testing.T) {
	u, err := Generate(DefaultConfig(13, 500, 150))
	require.NoError(t, err)

	for _, p := range u.Ports {
		zone := u.Sectors[p.SectorID].Zone
		if p.Class == ClassBlackHole || p.Class == ClassNova {
			assert.Equal(t, ZoneFrontier, zone,
				"premium class %s placed in %s sector %d", p.Class, zone, p.SectorID)
		}
	}
}

func TestNewPortOriginPattern(t *testing.T) {
	p := newPort(1, 1, ClassOrigin)
	assert.True(t, p.Commodities[CommoditySpecialGoods].Buys)
	assert.True(t, p.Commodities[CommoditySpecialGoods].Sells)
	assert.True(t, p.Commodities[CommodityColonists].Sells)
	assert.False(t, p.Commodities[CommodityOre].Buys)
	assert.False(t, p.Commodities[CommodityOre].Sells)
}
