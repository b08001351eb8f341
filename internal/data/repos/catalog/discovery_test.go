package catalog

import (
	"context"
	"testing"

	"github.com/yungbote/exocatalog/internal/data/repos/testutil"
	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
)

func TestDiscoveryRepoFindOrCreate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewDiscoveryRepo(db, testutil.Logger(t))

	key := types.DiscoveryKey{Method: "Radial Velocity", Year: testutil.PtrInt(2007), ReferenceName: "Liu et al. 2008"}
	first, created, err := repo.FindOrCreate(dbc, key, types.DiscoveryDefaults{Facility: "Xinglong Station", Telescope: "2.16 m Telescope"})
	if err != nil || !created {
		t.Fatalf("FindOrCreate(new): created=%v err=%v", created, err)
	}

	again, created, err := repo.FindOrCreate(dbc, key, types.DiscoveryDefaults{Facility: "Other", Telescope: "Other"})
	if err != nil || created || again.ID != first.ID {
		t.Fatalf("FindOrCreate(existing): created=%v err=%v", created, err)
	}
	if again.Facility != "Xinglong Station" {
		t.Fatalf("FindOrCreate(existing): facility overwritten: %q", again.Facility)
	}

	noYear := types.DiscoveryKey{Method: "Radial Velocity", ReferenceName: "Liu et al. 2008"}
	if row, created, err := repo.FindOrCreate(dbc, noYear, types.DiscoveryDefaults{}); err != nil || !created || row.ID == first.ID {
		t.Fatalf("FindOrCreate(null year): created=%v err=%v", created, err)
	}
	if _, created, err := repo.FindOrCreate(dbc, noYear, types.DiscoveryDefaults{}); err != nil || created {
		t.Fatalf("FindOrCreate(null year again): created=%v err=%v", created, err)
	}

	if got := first.String(); got != "Radial Velocity (2007)" {
		t.Fatalf("String: %q", got)
	}

	if n, err := repo.DeleteByID(dbc, first.ID); err != nil || n != 1 {
		t.Fatalf("DeleteByID: n=%d err=%v", n, err)
	}
	if got, err := repo.GetByID(dbc, first.ID); err != nil || got != nil {
		t.Fatalf("GetByID after delete: got=%v err=%v", got, err)
	}
}
