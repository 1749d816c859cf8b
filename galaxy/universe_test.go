package galaxy

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScenario(t *testing.T) {
	// seed=42, 100 sectors, 20 ports, max degree 6.
	cfg := DefaultConfig(42, 100, 20)
	u, err := Generate(cfg)
	require.NoError(t, err)
	require.NotNil(t, u)

	assert.True(t, u.Status.Success)
	assert.Zero(t, u.Status.RepairPassesUsed, "spanning-tree construction should never need repair")
	assert.GreaterOrEqual(t, u.Status.PortShortfall, 0)

	// Sector 1 is reserved and hosts the unique origin-class port.
	origin, ok := u.GetSector(OriginSectorID)
	require.True(t, ok)
	assert.True(t, origin.Reserved)
	p, ok := u.GetPort(OriginSectorID)
	require.True(t, ok)
	assert.Equal(t, ClassOrigin, p.Class)

	originPorts := 0
	for _, port := range u.Ports {
		if port.Class == ClassOrigin {
			originPorts++
			assert.Equal(t, OriginSectorID, port.SectorID)
		}
	}
	assert.Equal(t, 1, originPorts, "exactly one origin-class port")

	// All 100 sectors exist and every one is reachable from sector 1.
	assert.Len(t, u.Sectors, 100)
	reachable, err := u.ReachableWithin(OriginSectorID, 100)
	require.NoError(t, err)
	assert.Len(t, reachable, 100)

	// At most 20 ports, shortfall accounted.
	assert.LessOrEqual(t, len(u.Ports), 20)
	assert.Equal(t, 20, len(u.Ports)+u.Status.PortShortfall)

	// Degree bound over the full edge set.
	degree := make(map[int]int)
	for _, e := range u.Edges {
		degree[e.From]++
		degree[e.To]++
	}
	for id, d := range degree {
		assert.LessOrEqual(t, d, 6, "sector %d exceeds max degree", id)
	}
}

func TestGenerateRejectsExcessPortCount(t *testing.T) {
	cfg := DefaultConfig(1, 100, 150)
	u, err := Generate(cfg)
	require.Error(t, err)
	assert.Nil(t, u, "no partial universe on configuration error")

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "port_count", ce.Field)
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := DefaultConfig(1234, 300, 60)
	cfg.HazardSectorEnabled = true

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	require.Equal(t, a.Edges, b.Edges, "edge sets must match for a fixed seed")
	require.Equal(t, a.Sectors, b.Sectors, "sectors must match for a fixed seed")
	require.Equal(t, a.Ports, b.Ports, "ports must match for a fixed seed")
	require.Equal(t, a.Status, b.Status)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(DefaultConfig(1, 200, 40))
	require.NoError(t, err)
	b, err := Generate(DefaultConfig(2, 200, 40))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges, b.Edges, "different seeds should produce different topologies")
}

func TestGenerateNoDuplicateOrSelfEdges(t *testing.T) {
	u, err := Generate(DefaultConfig(9, 500, 100))
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for _, e := range u.Edges {
		require.NotEqual(t, e.From, e.To, "self edge on sector %d", e.From)
		a, b := e.From, e.To
		if a > b {
			a, b = b, a
		}
		require.False(t, seen[[2]int{a, b}], "duplicate edge %d-%d", a, b)
		seen[[2]int{a, b}] = true
	}
}

func TestGenerateConnectivityAcrossSeeds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		u, err := Generate(DefaultConfig(seed, 150, 30))
		require.NoError(t, err, "seed %d", seed)
		reachable, err := u.ReachableWithin(OriginSectorID, 150)
		require.NoError(t, err)
		require.Len(t, reachable, 150, "seed %d left sectors unreachable", seed)
	}
}

func TestHazardSectorAllocation(t *testing.T) {
	cfg := DefaultConfig(7, 200, 40)
	cfg.HazardSectorEnabled = true
	u, err := Generate(cfg)
	require.NoError(t, err)

	var hazards []*Sector
	for _, s := range u.Sectors {
		if s.Reserved && s.ID != OriginSectorID {
			hazards = append(hazards, s)
		}
	}
	require.Len(t, hazards, 1)
	h := hazards[0]
	assert.Equal(t, ZoneFrontier, h.Zone)
	assert.False(t, h.HasPort(), "hazard sector is denied a port")
	assert.GreaterOrEqual(t, h.ResourceDensity, 80, "hazard sector has elevated resource density")
	assert.LessOrEqual(t, h.ResourceDensity, 100)
}

func TestResourceDensityRange(t *testing.T) {
	u, err := Generate(DefaultConfig(3, 100, 10))
	require.NoError(t, err)
	for _, s := range u.Sectors {
		assert.GreaterOrEqual(t, s.ResourceDensity, 0)
		assert.LessOrEqual(t, s.ResourceDensity, 100)
	}
}

func TestUniverseJSONRoundTrip(t *testing.T) {
	cfg := DefaultConfig(11, 60, 12)
	u, err := Generate(cfg)
	require.NoError(t, err)

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var loaded Universe
	require.NoError(t, json.Unmarshal(data, &loaded))
	require.NoError(t, loaded.Reindex())

	require.Equal(t, u.Sectors, loaded.Sectors)
	require.Equal(t, u.Ports, loaded.Ports)
	require.Equal(t, u.Edges, loaded.Edges)
	require.Equal(t, u.Status, loaded.Status)

	// Queries work identically on the rehydrated structure.
	want, err := u.ShortestPath(1, 60)
	require.NoError(t, err)
	got, err := loaded.ShortestPath(1, 60)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSectorWarpsMatchEdges(t *testing.T) {
	u, err := Generate(DefaultConfig(5, 120, 25))
	require.NoError(t, err)

	want := make(map[int][]int)
	for _, e := range u.Edges {
		want[e.From] = append(want[e.From], e.To)
		if e.Kind == EdgeLane {
			want[e.To] = append(want[e.To], e.From)
		}
	}
	for id, s := range u.Sectors {
		assert.ElementsMatch(t, want[id], s.Warps, "sector %d warps", id)
		// Warps are stored ascending.
		for i := 1; i < len(s.Warps); i++ {
			assert.Less(t, s.Warps[i-1], s.Warps[i], "sector %d warps not ascending", id)
		}
	}
}
