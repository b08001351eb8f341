package catalog

type Planet struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"column:name;size:255;not null;index:idx_planet_natural_key,priority:1" json:"name"`
	HostID      uint       `gorm:"column:host_id;not null;index:idx_planet_natural_key,priority:2" json:"host_id"`
	Host        *Host      `gorm:"foreignKey:HostID;references:ID;constraint:OnDelete:CASCADE" json:"host,omitempty"`
	DiscoveryID uint       `gorm:"column:discovery_id;not null;index:idx_planet_natural_key,priority:3" json:"discovery_id"`
	Discovery   *Discovery `gorm:"foreignKey:DiscoveryID;references:ID;constraint:OnDelete:CASCADE" json:"discovery,omitempty"`

	DefaultFlag            bool     `gorm:"column:default_flag;not null;default:false" json:"default_flag"`
	ControversialFlag      bool     `gorm:"column:controversial_flag;not null;default:false;index" json:"controversial_flag"`
	ParameterReference     *string  `gorm:"column:parameter_reference;size:255" json:"parameter_reference"`
	OrbitalPeriod          *float64 `gorm:"column:orbital_period" json:"orbital_period"`     // [days]
	SemiMajorAxis          *float64 `gorm:"column:semi_major_axis" json:"semi_major_axis"`   // [au]
	Radius                 *float64 `gorm:"column:radius" json:"radius"`                     // [earth radius]
	Mass                   *float64 `gorm:"column:mass;index" json:"mass"`                   // [earth mass]
	MassSinIEarth          *float64 `gorm:"column:mass_sin_i_earth" json:"mass_sin_i_earth"` // mass or mass*sin(i) [earth mass]
	MassSinIJupiter        *float64 `gorm:"column:mass_sin_i_jupiter" json:"mass_sin_i_jupiter"`
	MassProvenance         *string  `gorm:"column:mass_provenance;size:255" json:"mass_provenance"`
	Eccentricity           *float64 `gorm:"column:eccentricity" json:"eccentricity"`
	InsolationFlux         *float64 `gorm:"column:insolation_flux" json:"insolation_flux"` // [earth flux]
	EquilibriumTemperature *float64 `gorm:"column:equilibrium_temperature" json:"equilibrium_temperature"`
	Inclination            *float64 `gorm:"column:inclination" json:"inclination"`
	TTVFlag                bool     `gorm:"column:ttv_flag;not null;default:false" json:"ttv_flag"`
	TransitDuration        *float64 `gorm:"column:transit_duration" json:"transit_duration"` // [hours]
}

func (Planet) TableName() string { return "planet" }

type PlanetKey struct {
	Name        string
	HostID      uint
	DiscoveryID uint
}

// PlanetDefaults carries the attributes set only when a planet is first created.
type PlanetDefaults struct {
	DefaultFlag            bool
	ControversialFlag      bool
	ParameterReference     *string
	OrbitalPeriod          *float64
	SemiMajorAxis          *float64
	Radius                 *float64
	Mass                   *float64
	MassSinIEarth          *float64
	MassSinIJupiter        *float64
	MassProvenance         *string
	Eccentricity           *float64
	InsolationFlux         *float64
	EquilibriumTemperature *float64
	Inclination            *float64
	TTVFlag                bool
	TransitDuration        *float64
}

func (k PlanetKey) NewPlanet(d PlanetDefaults) *Planet {
	return &Planet{
		Name:                   k.Name,
		HostID:                 k.HostID,
		DiscoveryID:            k.DiscoveryID,
		DefaultFlag:            d.DefaultFlag,
		ControversialFlag:      d.ControversialFlag,
		ParameterReference:     d.ParameterReference,
		OrbitalPeriod:          d.OrbitalPeriod,
		SemiMajorAxis:          d.SemiMajorAxis,
		Radius:                 d.Radius,
		Mass:                   d.Mass,
		MassSinIEarth:          d.MassSinIEarth,
		MassSinIJupiter:        d.MassSinIJupiter,
		MassProvenance:         d.MassProvenance,
		Eccentricity:           d.Eccentricity,
		InsolationFlux:         d.InsolationFlux,
		EquilibriumTemperature: d.EquilibriumTemperature,
		Inclination:            d.Inclination,
		TTVFlag:                d.TTVFlag,
		TransitDuration:        d.TransitDuration,
	}
}
