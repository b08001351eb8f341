package catalog

import (
	"context"
	"testing"

	"github.com/yungbote/exocatalog/internal/data/repos/testutil"
	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/pkg/dbctx"
)

func TestHostRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewHostRepo(db, testutil.Logger(t))

	h1 := &types.Host{Name: "11 Com", SpectralType: "G8 III", Distance: testutil.PtrFloat(93.18)}
	h2 := &types.Host{Name: "HD 1", SpectralType: "K0"}
	if _, err := repo.Create(dbc, []*types.Host{h1, h2}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if h1.ID == 0 || h2.ID <= h1.ID {
		t.Fatalf("Create: ids not assigned in order: %d %d", h1.ID, h2.ID)
	}

	if got, err := repo.GetByID(dbc, h1.ID); err != nil || got == nil || got.Name != "11 Com" {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByID(dbc, 9999); err != nil || got != nil {
		t.Fatalf("GetByID(missing): got=%v err=%v", got, err)
	}

	rows, err := repo.List(dbc)
	if err != nil || len(rows) != 2 || rows[0].ID != h1.ID {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
	if n, err := repo.Count(dbc); err != nil || n != 2 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}

	h2.Distance = testutil.PtrFloat(12.5)
	if err := repo.Update(dbc, h2); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got, err := repo.GetByID(dbc, h2.ID); err != nil || got.Distance == nil || *got.Distance != 12.5 {
		t.Fatalf("Update not persisted: got=%v err=%v", got, err)
	}

	if n, err := repo.DeleteByID(dbc, h2.ID); err != nil || n != 1 {
		t.Fatalf("DeleteByID: n=%d err=%v", n, err)
	}
	if n, err := repo.DeleteByID(dbc, h2.ID); err != nil || n != 0 {
		t.Fatalf("DeleteByID(again): n=%d err=%v", n, err)
	}
}

func TestHostRepoFindOrCreate(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewHostRepo(db, testutil.Logger(t))

	key := types.HostKey{Name: "Kepler-22", SpectralType: "G5"}
	first, created, err := repo.FindOrCreate(dbc, key, types.HostDefaults{Distance: testutil.PtrFloat(190)})
	if err != nil || !created {
		t.Fatalf("FindOrCreate(new): created=%v err=%v", created, err)
	}

	// Defaults are ignored once the row exists.
	again, created, err := repo.FindOrCreate(dbc, key, types.HostDefaults{Distance: testutil.PtrFloat(1)})
	if err != nil || created {
		t.Fatalf("FindOrCreate(existing): created=%v err=%v", created, err)
	}
	if again.ID != first.ID || again.Distance == nil || *again.Distance != 190 {
		t.Fatalf("FindOrCreate(existing): got id=%d distance=%v", again.ID, again.Distance)
	}

	other, created, err := repo.FindOrCreate(dbc, types.HostKey{Name: "Kepler-22", SpectralType: "G6"}, types.HostDefaults{})
	if err != nil || !created || other.ID == first.ID {
		t.Fatalf("FindOrCreate(other spectral type): created=%v err=%v", created, err)
	}
}
