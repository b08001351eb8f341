package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/exocatalog/internal/ingestion/pipeline"
)

const sampleCSV = `# NASA Exoplanet Archive export
pl_name,hostname,st_spectype,sy_dist,sy_refname,rastr,ra,decstr,dec,discoverymethod,disc_year,disc_refname,disc_facility,disc_telescope
11 Com b,11 Com,G8 III,93.1846,Stassun et al. 2017,12h20m42.91s,185.1787793,+17d47m35.71s,17.7932516,Radial Velocity,2007,Liu et al. 2008,Xinglong Station,2.16 m Telescope
11 UMi b,11 UMi,K4 III,125.321,Stassun et al. 2017,15h17m05.90s,229.2745833,+71d49m26.19s,71.8239428,Radial Velocity,2009,Dollinger et al. 2009,Thueringer Landessternwarte Tautenburg,2.0 m Alfred Jensch Telescope
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &Config{
		LogMode:  "test",
		Port:     "0",
		Database: DatabaseConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "exo.db"), LogLevel: "silent"},
	}
	a, err := New(context.Background(), cfg, "test")
	require.NoError(t, err)
	t.Cleanup(a.Close)
	require.NoError(t, a.Migrate())
	return a
}

func TestIngestThenServe(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "planets.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	var lines []string
	outcomes, err := a.Ingest(context.Background(), path, func(o pipeline.RowOutcome) {
		lines = append(lines, o.Message())
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, []string{"Successfully imported 11 Com b", "Successfully imported 11 UMi b"}, lines)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_hosts":2,"total_planets":2}`, rec.Body.String())
}

func TestIngestMissingFile(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Ingest(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), nil)
	require.Error(t, err)
}
