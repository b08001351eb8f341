package pipeline

import (
	"gorm.io/datatypes"

	"github.com/yungbote/exocatalog/internal/domain/catalog"
	"github.com/yungbote/exocatalog/internal/ingestion/csvsource"
	"github.com/yungbote/exocatalog/internal/normalization"
)

// parsedRow holds every key and default derived from one record. Absent text
// columns read as "", absent numeric and date columns as nil.
type parsedRow struct {
	planetName string

	hostKey      catalog.HostKey
	hostDefaults catalog.HostDefaults

	refKey      catalog.SystemParameterReferenceKey
	refDefaults catalog.SystemParameterReferenceDefaults

	discoveryKey      catalog.DiscoveryKey
	discoveryDefaults catalog.DiscoveryDefaults

	planetKeyName  string
	planetDefaults catalog.PlanetDefaults
}

func parseRow(rec csvsource.Record) parsedRow {
	text := func(col string) string { return rec.GetOr(col, "") }
	textPtr := func(col string) *string {
		v := rec.GetOr(col, "")
		return &v
	}
	num := func(col string) *float64 { return normalization.ParseFloat(text(col), nil) }
	date := func(col, layout string) *datatypes.Date {
		t := normalization.ParseDate(text(col), layout, nil)
		if t == nil {
			return nil
		}
		d := datatypes.Date(*t)
		return &d
	}

	return parsedRow{
		planetName: rec.GetOr("pl_name", "Unknown"),

		hostKey: catalog.HostKey{
			Name:         text("hostname"),
			SpectralType: text("st_spectype"),
		},
		hostDefaults: catalog.HostDefaults{
			EffectiveTemperature: num("st_teff"),
			Radius:               num("st_rad"),
			Mass:                 num("st_mass"),
			Metallicity:          num("st_met"),
			MetallicityRatio:     textPtr("st_metratio"),
			SurfaceGravity:       num("st_logg"),
			Distance:             num("sy_dist"),
			VMagnitude:           num("sy_vmag"),
			KMagnitude:           num("sy_kmag"),
			GaiaMagnitude:        num("sy_gaiamag"),
		},

		refKey: catalog.SystemParameterReferenceKey{
			Name:           text("sy_refname"),
			RightAscension: text("rastr"),
			RADegrees:      num("ra"),
			Declination:    text("decstr"),
			DecDegrees:     num("dec"),
		},
		refDefaults: catalog.SystemParameterReferenceDefaults{
			RowUpdate:             date("rowupdate", normalization.DateLayout),
			PlanetPublicationDate: date("pl_pubdate", normalization.MonthLayout),
			ReleaseDate:           date("releasedate", normalization.DateLayout),
		},

		discoveryKey: catalog.DiscoveryKey{
			Method:        text("discoverymethod"),
			Year:          normalization.ParseInt(text("disc_year"), nil),
			ReferenceName: text("disc_refname"),
		},
		discoveryDefaults: catalog.DiscoveryDefaults{
			Facility:  text("disc_facility"),
			Telescope: text("disc_telescope"),
		},

		planetKeyName: text("pl_name"),
		planetDefaults: catalog.PlanetDefaults{
			DefaultFlag:            normalization.ParseFlag(text("default_flag")),
			ControversialFlag:      normalization.ParseFlag(text("pl_controv_flag")),
			ParameterReference:     textPtr("pl_refname"),
			OrbitalPeriod:          num("pl_orbper"),
			SemiMajorAxis:          num("pl_orbsmax"),
			Radius:                 num("pl_rade"),
			Mass:                   num("pl_masse"),
			MassSinIEarth:          num("pl_bmasse"),
			MassSinIJupiter:        num("pl_bmassj"),
			MassProvenance:         textPtr("pl_bmassprov"),
			Eccentricity:           num("pl_orbeccen"),
			InsolationFlux:         num("pl_insol"),
			EquilibriumTemperature: num("pl_eqt"),
			Inclination:            num("pl_orbincl"),
			TTVFlag:                normalization.ParseFlag(text("ttv_flag")),
			TransitDuration:        num("pl_trandur"),
		},
	}
}
