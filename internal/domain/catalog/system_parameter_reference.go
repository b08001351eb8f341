package catalog

import (
	"gorm.io/datatypes"
)

// SystemParameterReference is a bibliographic/astrometric reference record.
// Name may embed an HTML anchor pointing at the publication.
type SystemParameterReference struct {
	ID                    uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                  string          `gorm:"column:name;size:255;not null;index:idx_spr_natural_key,priority:1" json:"name"`
	RightAscension        string          `gorm:"column:right_ascension;size:255;not null;index:idx_spr_natural_key,priority:2" json:"right_ascension"` // sexagesimal
	RADegrees             *float64        `gorm:"column:ra_degrees" json:"ra_degrees"`
	Declination           string          `gorm:"column:declination;size:255;not null;index:idx_spr_natural_key,priority:3" json:"declination"` // sexagesimal
	DecDegrees            *float64        `gorm:"column:dec_degrees" json:"dec_degrees"`
	RowUpdate             *datatypes.Date `gorm:"column:row_update" json:"row_update"`
	PlanetPublicationDate *datatypes.Date `gorm:"column:planet_publication_date" json:"planet_publication_date"`
	ReleaseDate           *datatypes.Date `gorm:"column:release_date" json:"release_date"`
}

func (SystemParameterReference) TableName() string { return "system_parameter_reference" }

type SystemParameterReferenceKey struct {
	Name           string
	RightAscension string
	RADegrees      *float64
	Declination    string
	DecDegrees     *float64
}

type SystemParameterReferenceDefaults struct {
	RowUpdate             *datatypes.Date
	PlanetPublicationDate *datatypes.Date
	ReleaseDate           *datatypes.Date
}

func (k SystemParameterReferenceKey) NewReference(d SystemParameterReferenceDefaults) *SystemParameterReference {
	return &SystemParameterReference{
		Name:                  k.Name,
		RightAscension:        k.RightAscension,
		RADegrees:             k.RADegrees,
		Declination:           k.Declination,
		DecDegrees:            k.DecDegrees,
		RowUpdate:             d.RowUpdate,
		PlanetPublicationDate: d.PlanetPublicationDate,
		ReleaseDate:           d.ReleaseDate,
	}
}
