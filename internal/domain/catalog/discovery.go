package catalog

import "fmt"

type Discovery struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Method        string `gorm:"column:method;size:255;not null;index:idx_discovery_natural_key,priority:1" json:"method"`
	Year          *int   `gorm:"column:year;index:idx_discovery_natural_key,priority:2" json:"year"`
	ReferenceName string `gorm:"column:reference_name;size:255;not null;index:idx_discovery_natural_key,priority:3" json:"reference_name"`
	Facility      string `gorm:"column:facility;size:255;not null" json:"facility"`
	Telescope     string `gorm:"column:telescope;size:255;not null" json:"telescope"`
}

func (Discovery) TableName() string { return "discovery" }

func (d *Discovery) String() string {
	if d == nil {
		return ""
	}
	if d.Year == nil {
		return fmt.Sprintf("%s (None)", d.Method)
	}
	return fmt.Sprintf("%s (%d)", d.Method, *d.Year)
}

type DiscoveryKey struct {
	Method        string
	Year          *int
	ReferenceName string
}

type DiscoveryDefaults struct {
	Facility  string
	Telescope string
}

func (k DiscoveryKey) NewDiscovery(d DiscoveryDefaults) *Discovery {
	return &Discovery{
		Method:        k.Method,
		Year:          k.Year,
		ReferenceName: k.ReferenceName,
		Facility:      d.Facility,
		Telescope:     d.Telescope,
	}
}
