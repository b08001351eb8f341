package catalog

// PlanetarySystem links a host to its latest astrometric reference.
type PlanetarySystem struct {
	ID                   uint                      `gorm:"primaryKey;autoIncrement" json:"id"`
	HostID               uint                      `gorm:"column:host_id;not null;uniqueIndex" json:"host_id"`
	Host                 *Host                     `gorm:"foreignKey:HostID;references:ID;constraint:OnDelete:CASCADE" json:"host,omitempty"`
	ParameterReferenceID *uint                     `gorm:"column:parameter_reference_id;index" json:"parameter_reference_id"`
	ParameterReference   *SystemParameterReference `gorm:"foreignKey:ParameterReferenceID;references:ID;constraint:OnDelete:SET NULL" json:"parameter_reference,omitempty"`
}

func (PlanetarySystem) TableName() string { return "planetary_system" }
