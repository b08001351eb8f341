package services

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/exocatalog/internal/data/repos/testutil"
	types "github.com/yungbote/exocatalog/internal/domain"
)

func TestReportFormsIndex(t *testing.T) {
	f := newFixture(t)

	forms := f.report.Forms()
	require.Len(t, forms, 4)
	kinds := []string{forms[0].Kind, forms[1].Kind, forms[2].Kind, forms[3].Kind}
	assert.Equal(t, []string{ReportHost, ReportDiscovery, ReportPlanetarySystem, ReportPlanet}, kinds)

	form, err := f.report.Form(ReportPlanetarySystem)
	require.NoError(t, err)
	assert.Equal(t, "/api/systems", form.Redirect)
	require.Len(t, form.Fields, 2)
	assert.True(t, form.Fields[1].Required)

	_, err = f.report.Form("comet")
	requireAPIError(t, err, http.StatusNotFound, "not_found")
}

func TestReportHost(t *testing.T) {
	f := newFixture(t)

	_, err := f.report.Submit(f.dbc, ReportHost, url.Values{})
	ae := requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Len(t, ae.Fields, 2)

	_, err = f.report.Submit(f.dbc, ReportHost, url.Values{
		"name":          {"Test Host"},
		"spectral_type": {"G2 V"},
		"distance":      {"far"},
	})
	ae = requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Equal(t, map[string]string{"distance": "Enter a number."}, fieldMessages(ae))

	redirect, err := f.report.Submit(f.dbc, ReportHost, url.Values{
		"name":          {"Test Host"},
		"spectral_type": {"G2 V"},
		"distance":      {"10.5"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/hosts", redirect)

	hosts, err := f.catalog.ListHosts(f.dbc)
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	require.NotNil(t, hosts[0].Distance)
	assert.Equal(t, 10.5, *hosts[0].Distance)
}

func TestReportHostStoresEveryField(t *testing.T) {
	f := newFixture(t)

	_, err := f.report.Submit(f.dbc, ReportHost, url.Values{
		"name":                  {"Kepler-22"},
		"spectral_type":         {"G5 V"},
		"effective_temperature": {"5518"},
		"radius":                {"0.98"},
		"mass":                  {"0.97"},
		"metallicity":           {"-0.29"},
		"metallicity_ratio":     {"[Fe/H]"},
		"surface_gravity":       {"4.44"},
		"distance":              {"194.6"},
		"v_magnitude":           {"11.664"},
		"k_magnitude":           {"10.151"},
		"gaia_magnitude":        {"11.5"},
	})
	require.NoError(t, err)
	_, err = f.report.Submit(f.dbc, ReportHost, url.Values{
		"name":              {"Bare"},
		"spectral_type":     {"M1"},
		"metallicity_ratio": {"  "},
		"distance":          {""},
	})
	require.NoError(t, err)

	hosts, err := f.catalog.ListHosts(f.dbc)
	require.NoError(t, err)
	require.Len(t, hosts, 2)

	full, err := f.catalog.GetHost(f.dbc, hosts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, &types.Host{
		ID:                   hosts[0].ID,
		Name:                 "Kepler-22",
		SpectralType:         "G5 V",
		EffectiveTemperature: testutil.PtrFloat(5518),
		Radius:               testutil.PtrFloat(0.98),
		Mass:                 testutil.PtrFloat(0.97),
		Metallicity:          testutil.PtrFloat(-0.29),
		MetallicityRatio:     testutil.PtrString("[Fe/H]"),
		SurfaceGravity:       testutil.PtrFloat(4.44),
		Distance:             testutil.PtrFloat(194.6),
		VMagnitude:           testutil.PtrFloat(11.664),
		KMagnitude:           testutil.PtrFloat(10.151),
		GaiaMagnitude:        testutil.PtrFloat(11.5),
	}, full)

	bare, err := f.catalog.GetHost(f.dbc, hosts[1].ID)
	require.NoError(t, err)
	assert.Equal(t, &types.Host{ID: hosts[1].ID, Name: "Bare", SpectralType: "M1"}, bare)
}

func TestReportDiscovery(t *testing.T) {
	f := newFixture(t)

	_, err := f.report.Submit(f.dbc, ReportDiscovery, url.Values{
		"method":         {"Transit"},
		"year":           {"2015.5"},
		"reference_name": {"ref"},
		"facility":       {"Kepler"},
	})
	ae := requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Equal(t, map[string]string{
		"year":      "Enter a whole number.",
		"telescope": "This field is required.",
	}, fieldMessages(ae))

	redirect, err := f.report.Submit(f.dbc, ReportDiscovery, url.Values{
		"method":         {"Transit"},
		"reference_name": {"ref"},
		"facility":       {"Kepler"},
		"telescope":      {"0.95 m Kepler Telescope"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/discoveries", redirect)
}

func TestReportPlanetarySystem(t *testing.T) {
	f := newFixture(t)
	host := testutil.SeedHost(t, f.ctx, f.db, "HD 2", testutil.PtrFloat(3))
	ref := testutil.SeedReference(t, f.ctx, f.db, "ref", nil, nil)

	_, err := f.report.Submit(f.dbc, ReportPlanetarySystem, url.Values{"host": {"abc"}})
	ae := requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Equal(t, map[string]string{
		"host":                invalidChoice,
		"parameter_reference": "This field is required.",
	}, fieldMessages(ae))

	values := url.Values{
		"host":                {strconv.FormatUint(uint64(host.ID), 10)},
		"parameter_reference": {strconv.FormatUint(uint64(ref.ID), 10)},
	}
	redirect, err := f.report.Submit(f.dbc, ReportPlanetarySystem, values)
	require.NoError(t, err)
	assert.Equal(t, "/api/systems", redirect)

	_, err = f.report.Submit(f.dbc, ReportPlanetarySystem, values)
	ae = requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Equal(t, "Planetary system with this Host already exists.", fieldMessages(ae)["host"])
}

func TestReportPlanet(t *testing.T) {
	f := newFixture(t)
	host := testutil.SeedHost(t, f.ctx, f.db, "Test Host", testutil.PtrFloat(3))
	disc := testutil.SeedDiscovery(t, f.ctx, f.db, "Transit", 2015)

	_, err := f.report.Submit(f.dbc, ReportPlanet, url.Values{
		"name":      {"Test Planet"},
		"host":      {strconv.FormatUint(uint64(host.ID), 10)},
		"discovery": {"4242"},
	})
	ae := requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Equal(t, map[string]string{"discovery": invalidChoice}, fieldMessages(ae))

	redirect, err := f.report.Submit(f.dbc, ReportPlanet, url.Values{
		"name":               {"Test Planet"},
		"host":               {strconv.FormatUint(uint64(host.ID), 10)},
		"discovery":          {strconv.FormatUint(uint64(disc.ID), 10)},
		"controversial_flag": {"on"},
		"mass":               {"1.2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/planets", redirect)

	planets, err := f.catalog.ListPlanets(f.dbc)
	require.NoError(t, err)
	require.Len(t, planets, 1)
	assert.True(t, planets[0].ControversialFlag)
	assert.False(t, planets[0].TTVFlag)
}
