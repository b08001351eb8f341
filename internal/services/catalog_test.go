package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/exocatalog/internal/data/repos"
	"github.com/yungbote/exocatalog/internal/data/repos/testutil"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
	"github.com/yungbote/exocatalog/internal/platform/apierr"
)

type fixture struct {
	db      *gorm.DB
	ctx     context.Context
	dbc     dbctx.Context
	catalog CatalogService
	filter  FilterService
	report  ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	hosts := repos.NewHostRepo(db, log)
	discs := repos.NewDiscoveryRepo(db, log)
	refs := repos.NewSystemParameterReferenceRepo(db, log)
	systems := repos.NewPlanetarySystemRepo(db, log)
	planets := repos.NewPlanetRepo(db, log)
	catalog := NewCatalogService(db, log, hosts, discs, refs, systems, planets)
	ctx := context.Background()
	return &fixture{
		db:      db,
		ctx:     ctx,
		dbc:     dbctx.New(ctx),
		catalog: catalog,
		filter:  NewFilterService(log, hosts, systems, planets),
		report:  NewReportService(log, catalog),
	}
}

func requireAPIError(t *testing.T, err error, status int, code string) *apierr.Error {
	t.Helper()
	require.Error(t, err)
	var ae *apierr.Error
	require.True(t, errors.As(err, &ae), "expected *apierr.Error, got %T: %v", err, err)
	assert.Equal(t, status, ae.Status)
	assert.Equal(t, code, ae.Code)
	return ae
}

func fieldMessages(ae *apierr.Error) map[string]string {
	out := map[string]string{}
	for _, fe := range ae.Fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func TestCatalogHostLifecycle(t *testing.T) {
	f := newFixture(t)

	created, err := f.catalog.CreateHost(f.dbc, HostInput{Name: "Kepler-22", SpectralType: "G5 V", Distance: testutil.PtrFloat(190)})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := f.catalog.GetHost(f.dbc, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kepler-22", got.Name)

	in := HostInputFrom(got)
	in.Radius = testutil.PtrFloat(0.98)
	updated, err := f.catalog.UpdateHost(f.dbc, created.ID, in)
	require.NoError(t, err)
	require.NotNil(t, updated.Radius)
	assert.InDelta(t, 0.98, *updated.Radius, 1e-9)
	require.NotNil(t, updated.Distance)

	list, err := f.catalog.ListHosts(f.dbc)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, f.catalog.DeleteHost(f.dbc, created.ID))
	_, err = f.catalog.GetHost(f.dbc, created.ID)
	requireAPIError(t, err, http.StatusNotFound, "not_found")
	requireAPIError(t, f.catalog.DeleteHost(f.dbc, created.ID), http.StatusNotFound, "not_found")
}

func TestCatalogHostValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.CreateHost(f.dbc, HostInput{})
	ae := requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Len(t, ae.Fields, 2)
	msgs := fieldMessages(ae)
	assert.Equal(t, "This field is required.", msgs["name"])
	assert.Equal(t, "This field is required.", msgs["spectral_type"])

	list, err := f.catalog.ListHosts(f.dbc)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogReferenceDates(t *testing.T) {
	f := newFixture(t)

	ref, err := f.catalog.CreateReference(f.dbc, SystemParameterReferenceInput{
		Name:           "Stassun et al. 2017",
		RightAscension: "12h20m42.91s",
		Declination:    "+17d47m35.71s",
		RowUpdate:      testutil.PtrString("2014-05-14"),
	})
	require.NoError(t, err)
	require.NotNil(t, FormatDate(ref.RowUpdate))
	assert.Equal(t, "2014-05-14", *FormatDate(ref.RowUpdate))

	_, err = f.catalog.CreateReference(f.dbc, SystemParameterReferenceInput{
		Name:           "x",
		RightAscension: "r",
		Declination:    "d",
		ReleaseDate:    testutil.PtrString("14/05/2014"),
	})
	ae := requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Equal(t, "Enter a valid date.", fieldMessages(ae)["release_date"])
}

func TestCatalogSystemChecksRelations(t *testing.T) {
	f := newFixture(t)
	host := testutil.SeedHost(t, f.ctx, f.db, "HD 1", testutil.PtrFloat(10))
	ref := testutil.SeedReference(t, f.ctx, f.db, "ref", testutil.PtrFloat(1), testutil.PtrFloat(2))

	_, err := f.catalog.CreateSystem(f.dbc, PlanetarySystemInput{HostID: 999, ParameterReferenceID: testutil.PtrUint(999)})
	ae := requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	msgs := fieldMessages(ae)
	assert.Equal(t, invalidChoice, msgs["host_id"])
	assert.Equal(t, invalidChoice, msgs["parameter_reference_id"])

	sys, err := f.catalog.CreateSystem(f.dbc, PlanetarySystemInput{HostID: host.ID, ParameterReferenceID: &ref.ID})
	require.NoError(t, err)
	require.NotNil(t, sys.Host)
	require.NotNil(t, sys.ParameterReference)
	assert.Equal(t, "HD 1", sys.Host.Name)

	_, err = f.catalog.CreateSystem(f.dbc, PlanetarySystemInput{HostID: host.ID})
	ae = requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Equal(t, "Planetary system with this Host already exists.", fieldMessages(ae)["host_id"])

	// Updating a system onto its own host is not a conflict.
	updated, err := f.catalog.UpdateSystem(f.dbc, sys.ID, PlanetarySystemInput{HostID: host.ID})
	require.NoError(t, err)
	assert.Nil(t, updated.ParameterReferenceID)
	assert.Nil(t, updated.ParameterReference)
}

func TestCatalogPlanetLifecycle(t *testing.T) {
	f := newFixture(t)
	host := testutil.SeedHost(t, f.ctx, f.db, "11 Com", testutil.PtrFloat(93.18))
	disc := testutil.SeedDiscovery(t, f.ctx, f.db, "Radial Velocity", 2007)

	_, err := f.catalog.CreatePlanet(f.dbc, PlanetInput{Name: "11 Com b", HostID: host.ID, DiscoveryID: 12345})
	ae := requireAPIError(t, err, http.StatusBadRequest, "validation_failed")
	assert.Equal(t, invalidChoice, fieldMessages(ae)["discovery_id"])

	p, err := f.catalog.CreatePlanet(f.dbc, PlanetInput{
		Name:        "11 Com b",
		HostID:      host.ID,
		DiscoveryID: disc.ID,
		Mass:        testutil.PtrFloat(6165.6),
	})
	require.NoError(t, err)
	require.NotNil(t, p.Host)
	require.NotNil(t, p.Discovery)
	assert.Equal(t, "Radial Velocity", p.Discovery.Method)

	in := PlanetInputFrom(p)
	in.ControversialFlag = true
	p, err = f.catalog.UpdatePlanet(f.dbc, p.ID, in)
	require.NoError(t, err)
	assert.True(t, p.ControversialFlag)
	require.NotNil(t, p.Mass)

	require.NoError(t, f.catalog.DeleteDiscovery(f.dbc, disc.ID))
	_, err = f.catalog.GetPlanet(f.dbc, p.ID)
	requireAPIError(t, err, http.StatusNotFound, "not_found")
}
