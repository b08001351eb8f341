package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/exocatalog/internal/domain"
)

func SeedHost(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, distance *float64) *types.Host {
	tb.Helper()
	h := &types.Host{
		Name:         name,
		SpectralType: "G2 V",
		Distance:     distance,
	}
	if err := tx.WithContext(ctx).Create(h).Error; err != nil {
		tb.Fatalf("seed host: %v", err)
	}
	return h
}

func SeedDiscovery(tb testing.TB, ctx context.Context, tx *gorm.DB, method string, year int) *types.Discovery {
	tb.Helper()
	d := &types.Discovery{
		Method:        method,
		Year:          PtrInt(year),
		ReferenceName: "ref",
		Facility:      "facility",
		Telescope:     "telescope",
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed discovery: %v", err)
	}
	return d
}

func SeedReference(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, ra, dec *float64) *types.SystemParameterReference {
	tb.Helper()
	r := &types.SystemParameterReference{
		Name:           name,
		RightAscension: "00h00m00s",
		RADegrees:      ra,
		Declination:    "+00d00m00s",
		DecDegrees:     dec,
		RowUpdate:      PtrDate(time.Date(2014, 5, 14, 0, 0, 0, 0, time.UTC)),
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed reference: %v", err)
	}
	return r
}

func SeedSystem(tb testing.TB, ctx context.Context, tx *gorm.DB, hostID uint, referenceID *uint) *types.PlanetarySystem {
	tb.Helper()
	s := &types.PlanetarySystem{HostID: hostID, ParameterReferenceID: referenceID}
	if err := tx.WithContext(ctx).Omit("Host", "ParameterReference").Create(s).Error; err != nil {
		tb.Fatalf("seed system: %v", err)
	}
	return s
}

func SeedPlanet(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, hostID, discoveryID uint, mutate func(*types.Planet)) *types.Planet {
	tb.Helper()
	p := &types.Planet{
		Name:        name,
		HostID:      hostID,
		DiscoveryID: discoveryID,
	}
	if mutate != nil {
		mutate(p)
	}
	if err := tx.WithContext(ctx).Omit("Host", "Discovery").Create(p).Error; err != nil {
		tb.Fatalf("seed planet: %v", err)
	}
	return p
}

func PtrFloat(v float64) *float64 { return &v }

func PtrInt(v int) *int { return &v }

func PtrUint(v uint) *uint { return &v }

func PtrString(v string) *string { return &v }

func PtrDate(v time.Time) *datatypes.Date {
	d := datatypes.Date(v)
	return &d
}
