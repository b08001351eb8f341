package services

import (
	"time"

	"gorm.io/datatypes"

	types "github.com/yungbote/exocatalog/internal/domain"
	"github.com/yungbote/exocatalog/internal/normalization"
)

// Write payloads. PATCH handlers start from the From* snapshot of the stored
// row and decode the request on top, so absent fields keep their values.

type HostInput struct {
	Name                 string   `json:"name" binding:"required,max=255"`
	SpectralType         string   `json:"spectral_type" binding:"required,max=255"`
	EffectiveTemperature *float64 `json:"effective_temperature"`
	Radius               *float64 `json:"radius"`
	Mass                 *float64 `json:"mass"`
	Metallicity          *float64 `json:"metallicity"`
	MetallicityRatio     *string  `json:"metallicity_ratio" binding:"omitempty,max=255"`
	SurfaceGravity       *float64 `json:"surface_gravity"`
	Distance             *float64 `json:"distance"`
	VMagnitude           *float64 `json:"v_magnitude"`
	KMagnitude           *float64 `json:"k_magnitude"`
	GaiaMagnitude        *float64 `json:"gaia_magnitude"`
}

func HostInputFrom(h *types.Host) HostInput {
	return HostInput{
		Name:                 h.Name,
		SpectralType:         h.SpectralType,
		EffectiveTemperature: h.EffectiveTemperature,
		Radius:               h.Radius,
		Mass:                 h.Mass,
		Metallicity:          h.Metallicity,
		MetallicityRatio:     h.MetallicityRatio,
		SurfaceGravity:       h.SurfaceGravity,
		Distance:             h.Distance,
		VMagnitude:           h.VMagnitude,
		KMagnitude:           h.KMagnitude,
		GaiaMagnitude:        h.GaiaMagnitude,
	}
}

func (in HostInput) apply(h *types.Host) {
	h.Name = in.Name
	h.SpectralType = in.SpectralType
	h.EffectiveTemperature = in.EffectiveTemperature
	h.Radius = in.Radius
	h.Mass = in.Mass
	h.Metallicity = in.Metallicity
	h.MetallicityRatio = in.MetallicityRatio
	h.SurfaceGravity = in.SurfaceGravity
	h.Distance = in.Distance
	h.VMagnitude = in.VMagnitude
	h.KMagnitude = in.KMagnitude
	h.GaiaMagnitude = in.GaiaMagnitude
}

type DiscoveryInput struct {
	Method        string `json:"method" binding:"required,max=255"`
	Year          *int   `json:"year"`
	ReferenceName string `json:"reference_name" binding:"required,max=255"`
	Facility      string `json:"facility" binding:"required,max=255"`
	Telescope     string `json:"telescope" binding:"required,max=255"`
}

func DiscoveryInputFrom(d *types.Discovery) DiscoveryInput {
	return DiscoveryInput{
		Method:        d.Method,
		Year:          d.Year,
		ReferenceName: d.ReferenceName,
		Facility:      d.Facility,
		Telescope:     d.Telescope,
	}
}

func (in DiscoveryInput) apply(d *types.Discovery) {
	d.Method = in.Method
	d.Year = in.Year
	d.ReferenceName = in.ReferenceName
	d.Facility = in.Facility
	d.Telescope = in.Telescope
}

// SystemParameterReferenceInput carries dates as YYYY-MM-DD strings.
type SystemParameterReferenceInput struct {
	Name                  string   `json:"name" binding:"required,max=255"`
	RightAscension        string   `json:"right_ascension" binding:"required,max=255"`
	RADegrees             *float64 `json:"ra_degrees"`
	Declination           string   `json:"declination" binding:"required,max=255"`
	DecDegrees            *float64 `json:"dec_degrees"`
	RowUpdate             *string  `json:"row_update" binding:"omitempty,datetime=2006-01-02"`
	PlanetPublicationDate *string  `json:"planet_publication_date" binding:"omitempty,datetime=2006-01-02"`
	ReleaseDate           *string  `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
}

func SystemParameterReferenceInputFrom(r *types.SystemParameterReference) SystemParameterReferenceInput {
	return SystemParameterReferenceInput{
		Name:                  r.Name,
		RightAscension:        r.RightAscension,
		RADegrees:             r.RADegrees,
		Declination:           r.Declination,
		DecDegrees:            r.DecDegrees,
		RowUpdate:             FormatDate(r.RowUpdate),
		PlanetPublicationDate: FormatDate(r.PlanetPublicationDate),
		ReleaseDate:           FormatDate(r.ReleaseDate),
	}
}

func (in SystemParameterReferenceInput) apply(r *types.SystemParameterReference) {
	r.Name = in.Name
	r.RightAscension = in.RightAscension
	r.RADegrees = in.RADegrees
	r.Declination = in.Declination
	r.DecDegrees = in.DecDegrees
	r.RowUpdate = parseInputDate(in.RowUpdate)
	r.PlanetPublicationDate = parseInputDate(in.PlanetPublicationDate)
	r.ReleaseDate = parseInputDate(in.ReleaseDate)
}

type PlanetarySystemInput struct {
	HostID               uint  `json:"host_id" binding:"required"`
	ParameterReferenceID *uint `json:"parameter_reference_id"`
}

func PlanetarySystemInputFrom(s *types.PlanetarySystem) PlanetarySystemInput {
	return PlanetarySystemInput{HostID: s.HostID, ParameterReferenceID: s.ParameterReferenceID}
}

func (in PlanetarySystemInput) apply(s *types.PlanetarySystem) {
	s.HostID = in.HostID
	s.ParameterReferenceID = in.ParameterReferenceID
	s.Host = nil
	s.ParameterReference = nil
}

type PlanetInput struct {
	Name                   string   `json:"name" binding:"required,max=255"`
	HostID                 uint     `json:"host_id" binding:"required"`
	DiscoveryID            uint     `json:"discovery_id" binding:"required"`
	DefaultFlag            bool     `json:"default_flag"`
	ControversialFlag      bool     `json:"controversial_flag"`
	ParameterReference     *string  `json:"parameter_reference" binding:"omitempty,max=255"`
	OrbitalPeriod          *float64 `json:"orbital_period"`
	SemiMajorAxis          *float64 `json:"semi_major_axis"`
	Radius                 *float64 `json:"radius"`
	Mass                   *float64 `json:"mass"`
	MassSinIEarth          *float64 `json:"mass_sin_i_earth"`
	MassSinIJupiter        *float64 `json:"mass_sin_i_jupiter"`
	MassProvenance         *string  `json:"mass_provenance" binding:"omitempty,max=255"`
	Eccentricity           *float64 `json:"eccentricity"`
	InsolationFlux         *float64 `json:"insolation_flux"`
	EquilibriumTemperature *float64 `json:"equilibrium_temperature"`
	Inclination            *float64 `json:"inclination"`
	TTVFlag                bool     `json:"ttv_flag"`
	TransitDuration        *float64 `json:"transit_duration"`
}

func PlanetInputFrom(p *types.Planet) PlanetInput {
	return PlanetInput{
		Name:                   p.Name,
		HostID:                 p.HostID,
		DiscoveryID:            p.DiscoveryID,
		DefaultFlag:            p.DefaultFlag,
		ControversialFlag:      p.ControversialFlag,
		ParameterReference:     p.ParameterReference,
		OrbitalPeriod:          p.OrbitalPeriod,
		SemiMajorAxis:          p.SemiMajorAxis,
		Radius:                 p.Radius,
		Mass:                   p.Mass,
		MassSinIEarth:          p.MassSinIEarth,
		MassSinIJupiter:        p.MassSinIJupiter,
		MassProvenance:         p.MassProvenance,
		Eccentricity:           p.Eccentricity,
		InsolationFlux:         p.InsolationFlux,
		EquilibriumTemperature: p.EquilibriumTemperature,
		Inclination:            p.Inclination,
		TTVFlag:                p.TTVFlag,
		TransitDuration:        p.TransitDuration,
	}
}

func (in PlanetInput) apply(p *types.Planet) {
	p.Name = in.Name
	p.HostID = in.HostID
	p.DiscoveryID = in.DiscoveryID
	p.DefaultFlag = in.DefaultFlag
	p.ControversialFlag = in.ControversialFlag
	p.ParameterReference = in.ParameterReference
	p.OrbitalPeriod = in.OrbitalPeriod
	p.SemiMajorAxis = in.SemiMajorAxis
	p.Radius = in.Radius
	p.Mass = in.Mass
	p.MassSinIEarth = in.MassSinIEarth
	p.MassSinIJupiter = in.MassSinIJupiter
	p.MassProvenance = in.MassProvenance
	p.Eccentricity = in.Eccentricity
	p.InsolationFlux = in.InsolationFlux
	p.EquilibriumTemperature = in.EquilibriumTemperature
	p.Inclination = in.Inclination
	p.TTVFlag = in.TTVFlag
	p.TransitDuration = in.TransitDuration
	p.Host = nil
	p.Discovery = nil
}

// FormatDate renders a stored date as YYYY-MM-DD.
func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(normalization.DateLayout)
	return &s
}

func parseInputDate(raw *string) *datatypes.Date {
	if raw == nil {
		return nil
	}
	t := normalization.ParseDate(*raw, normalization.DateLayout, nil)
	if t == nil {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}
