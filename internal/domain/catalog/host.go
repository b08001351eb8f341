package catalog

// Host is a star hosting one or more observed planets.
type Host struct {
	ID                   uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                 string   `gorm:"column:name;size:255;not null;index:idx_host_natural_key,priority:1" json:"name"`
	SpectralType         string   `gorm:"column:spectral_type;size:255;not null;index:idx_host_natural_key,priority:2" json:"spectral_type"`
	EffectiveTemperature *float64 `gorm:"column:effective_temperature" json:"effective_temperature"` // [K]
	Radius               *float64 `gorm:"column:radius" json:"radius"`                               // [solar radius]
	Mass                 *float64 `gorm:"column:mass" json:"mass"`                                   // [solar mass]
	Metallicity          *float64 `gorm:"column:metallicity" json:"metallicity"`                     // [dex]
	MetallicityRatio     *string  `gorm:"column:metallicity_ratio;size:255" json:"metallicity_ratio"`
	SurfaceGravity       *float64 `gorm:"column:surface_gravity" json:"surface_gravity"` // [log10(cm/s**2)]
	Distance             *float64 `gorm:"column:distance;index" json:"distance"`         // [pc]
	VMagnitude           *float64 `gorm:"column:v_magnitude" json:"v_magnitude"`
	KMagnitude           *float64 `gorm:"column:k_magnitude" json:"k_magnitude"`
	GaiaMagnitude        *float64 `gorm:"column:gaia_magnitude" json:"gaia_magnitude"`
}

func (Host) TableName() string { return "host" }

// HostKey is the natural key used to match hosts during ingestion.
type HostKey struct {
	Name         string
	SpectralType string
}

// HostDefaults holds the attributes applied only when a host is created.
type HostDefaults struct {
	EffectiveTemperature *float64
	Radius               *float64
	Mass                 *float64
	Metallicity          *float64
	MetallicityRatio     *string
	SurfaceGravity       *float64
	Distance             *float64
	VMagnitude           *float64
	KMagnitude           *float64
	GaiaMagnitude        *float64
}

func (k HostKey) NewHost(d HostDefaults) *Host {
	return &Host{
		Name:                 k.Name,
		SpectralType:         k.SpectralType,
		EffectiveTemperature: d.EffectiveTemperature,
		Radius:               d.Radius,
		Mass:                 d.Mass,
		Metallicity:          d.Metallicity,
		MetallicityRatio:     d.MetallicityRatio,
		SurfaceGravity:       d.SurfaceGravity,
		Distance:             d.Distance,
		VMagnitude:           d.VMagnitude,
		KMagnitude:           d.KMagnitude,
		GaiaMagnitude:        d.GaiaMagnitude,
	}
}
