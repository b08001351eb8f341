package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/exocatalog/internal/data/repos/testutil"
	types "github.com/yungbote/exocatalog/internal/domain"
)

func planetNames(rows []*types.Planet) []string {
	out := make([]string, 0, len(rows))
	for _, p := range rows {
		out = append(out, p.Name)
	}
	return out
}

// seedSky creates three hosts at 10, 150 and unknown distance with planets of varied mass.
func seedSky(t *testing.T, f *fixture) (near, far, unknown *types.Host) {
	t.Helper()
	near = testutil.SeedHost(t, f.ctx, f.db, "Near", testutil.PtrFloat(10))
	far = testutil.SeedHost(t, f.ctx, f.db, "Far", testutil.PtrFloat(150))
	unknown = testutil.SeedHost(t, f.ctx, f.db, "Unknown", nil)
	transit := testutil.SeedDiscovery(t, f.ctx, f.db, "Transit", 2015)
	rv := testutil.SeedDiscovery(t, f.ctx, f.db, "Radial Velocity", 2007)

	testutil.SeedPlanet(t, f.ctx, f.db, "Near b", near.ID, transit.ID, func(p *types.Planet) {
		p.Mass = testutil.PtrFloat(5)
		p.Radius = testutil.PtrFloat(1.5)
		p.EquilibriumTemperature = testutil.PtrFloat(300)
	})
	testutil.SeedPlanet(t, f.ctx, f.db, "Near c", near.ID, rv.ID, func(p *types.Planet) {
		p.Mass = testutil.PtrFloat(300)
		p.ControversialFlag = true
	})
	testutil.SeedPlanet(t, f.ctx, f.db, "Far b", far.ID, transit.ID, func(p *types.Planet) {
		p.Mass = testutil.PtrFloat(50)
	})
	testutil.SeedPlanet(t, f.ctx, f.db, "Unknown b", unknown.ID, rv.ID, nil)
	return near, far, unknown
}

func TestPlanetsNearEarthDefaultsTo100(t *testing.T) {
	f := newFixture(t)
	seedSky(t, f)

	rows, err := f.filter.PlanetsNearEarth(f.dbc, NearEarthParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Near b", "Near c"}, planetNames(rows))

	blank := ""
	rows, err = f.filter.PlanetsNearEarth(f.dbc, NearEarthParams{Distance: &blank})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestPlanetsNearEarthRanges(t *testing.T) {
	f := newFixture(t)
	seedSky(t, f)

	dist, maxMass := "200", "100"
	rows, err := f.filter.PlanetsNearEarth(f.dbc, NearEarthParams{Distance: &dist, MaxMass: &maxMass})
	require.NoError(t, err)
	assert.Equal(t, []string{"Near b", "Far b"}, planetNames(rows))

	minTemp, maxTemp := "300", "300"
	rows, err = f.filter.PlanetsNearEarth(f.dbc, NearEarthParams{MinTemp: &minTemp, MaxTemp: &maxTemp})
	require.NoError(t, err)
	assert.Equal(t, []string{"Near b"}, planetNames(rows))
	require.NotNil(t, rows[0].Host)
	assert.Equal(t, "Near", rows[0].Host.Name)

	bad := "ten"
	_, err = f.filter.PlanetsNearEarth(f.dbc, NearEarthParams{MinRadius: &bad})
	requireAPIError(t, err, http.StatusBadRequest, "invalid_filter")
}

func TestPlanetsByDiscovery(t *testing.T) {
	f := newFixture(t)
	seedSky(t, f)

	method := "Transit"
	rows, err := f.filter.PlanetsByDiscoveryMethod(f.dbc, &method)
	require.NoError(t, err)
	assert.Equal(t, []string{"Near b", "Far b"}, planetNames(rows))

	rows, err = f.filter.PlanetsByDiscoveryMethod(f.dbc, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	year := "2007"
	rows, err = f.filter.PlanetsByDiscoveryYear(f.dbc, &year)
	require.NoError(t, err)
	assert.Equal(t, []string{"Near c", "Unknown b"}, planetNames(rows))

	year = "twenty"
	_, err = f.filter.PlanetsByDiscoveryYear(f.dbc, &year)
	requireAPIError(t, err, http.StatusBadRequest, "invalid_filter")
}

func TestPlanetsByFlagAndMass(t *testing.T) {
	f := newFixture(t)
	seedSky(t, f)

	flag := "true"
	rows, err := f.filter.PlanetsByControversialFlag(f.dbc, &flag)
	require.NoError(t, err)
	assert.Equal(t, []string{"Near c"}, planetNames(rows))

	flag = "0"
	rows, err = f.filter.PlanetsByControversialFlag(f.dbc, &flag)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	flag = "maybe"
	_, err = f.filter.PlanetsByControversialFlag(f.dbc, &flag)
	requireAPIError(t, err, http.StatusBadRequest, "invalid_filter")

	minMass := "50"
	rows, err = f.filter.PlanetsByMinMass(f.dbc, &minMass)
	require.NoError(t, err)
	assert.Equal(t, []string{"Near c"}, planetNames(rows))
}

func TestHostsByMinPlanets(t *testing.T) {
	f := newFixture(t)
	near, far, unknown := seedSky(t, f)

	rows, err := f.filter.HostsByMinPlanets(f.dbc, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, near.ID, rows[0].ID)

	threshold := "2"
	rows, err = f.filter.HostsByMinPlanets(f.dbc, &threshold)
	require.NoError(t, err)
	assert.Empty(t, rows)

	threshold = "0"
	rows, err = f.filter.HostsByMinPlanets(f.dbc, &threshold)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{near.ID, far.ID, unknown.ID}, hostIDs(rows))

	threshold = "1"
	rows, err = f.filter.HostsByMinPlanets(f.dbc, &threshold)
	require.NoError(t, err)
	assert.Equal(t, []uint{near.ID}, hostIDs(rows))

	threshold = "many"
	_, err = f.filter.HostsByMinPlanets(f.dbc, &threshold)
	requireAPIError(t, err, http.StatusBadRequest, "invalid_filter")
}

func hostIDs(rows []*types.Host) []uint {
	ids := make([]uint, 0, len(rows))
	for _, h := range rows {
		ids = append(ids, h.ID)
	}
	return ids
}

func TestSystemsByMaxDistance(t *testing.T) {
	f := newFixture(t)
	near, far, unknown := seedSky(t, f)
	for _, h := range []*types.Host{near, far, unknown} {
		testutil.SeedSystem(t, f.ctx, f.db, h.ID, nil)
	}

	limit := "150"
	rows, err := f.filter.SystemsByMaxDistance(f.dbc, &limit)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, near.ID, rows[0].HostID)
	require.NotNil(t, rows[0].Host)

	rows, err = f.filter.SystemsByMaxDistance(f.dbc, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestHomeStats(t *testing.T) {
	f := newFixture(t)
	seedSky(t, f)

	stats, err := f.filter.HomeStats(f.dbc)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalHosts)
	assert.Equal(t, int64(4), stats.TotalPlanets)
}

func TestSystemsVisualizationSkipRules(t *testing.T) {
	f := newFixture(t)
	withRef := testutil.SeedHost(t, f.ctx, f.db, "With reference", testutil.PtrFloat(12))
	noRef := testutil.SeedHost(t, f.ctx, f.db, "Without reference", testutil.PtrFloat(20))
	lonely := testutil.SeedHost(t, f.ctx, f.db, "No system", testutil.PtrFloat(0))
	testutil.SeedHost(t, f.ctx, f.db, "No distance", nil)
	partial := testutil.SeedHost(t, f.ctx, f.db, "Partial degrees", testutil.PtrFloat(30))

	ref := testutil.SeedReference(t, f.ctx, f.db, "ref", testutil.PtrFloat(185.17), testutil.PtrFloat(17.79))
	partialRef := testutil.SeedReference(t, f.ctx, f.db, "partial", nil, testutil.PtrFloat(-5))
	testutil.SeedSystem(t, f.ctx, f.db, withRef.ID, &ref.ID)
	testutil.SeedSystem(t, f.ctx, f.db, noRef.ID, nil)
	testutil.SeedSystem(t, f.ctx, f.db, partial.ID, &partialRef.ID)

	points, err := f.filter.SystemsVisualization(f.dbc)
	require.NoError(t, err)
	assert.Equal(t, []VisualizationPoint{
		{ID: withRef.ID, Name: "With reference", Distance: 12, RA: 185.17, Dec: 17.79},
		{ID: lonely.ID, Name: "No system", Distance: 0, RA: 0, Dec: 0},
		{ID: partial.ID, Name: "Partial degrees", Distance: 30, RA: 0, Dec: -5},
	}, points)
}
