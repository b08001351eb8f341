package pipeline

import "fmt"

// RowOutcome reports what one source row did to the store.
type RowOutcome struct {
	Row        int
	PlanetName string

	HostCreated      bool
	ReferenceCreated bool
	DiscoveryCreated bool
	SystemCreated    bool
	PlanetCreated    bool

	Warnings []string
	Err      error

	Duration float64 // seconds
}

func (o RowOutcome) Failed() bool { return o.Err != nil }

// Created names the entities inserted for this row.
func (o RowOutcome) Created() []string {
	var out []string
	if o.HostCreated {
		out = append(out, "host")
	}
	if o.ReferenceCreated {
		out = append(out, "system_parameter_reference")
	}
	if o.DiscoveryCreated {
		out = append(out, "discovery")
	}
	if o.SystemCreated {
		out = append(out, "planetary_system")
	}
	if o.PlanetCreated {
		out = append(out, "planet")
	}
	return out
}

// Message is the per-row diagnostic line.
func (o RowOutcome) Message() string {
	if o.Err != nil {
		return fmt.Sprintf("Failed to import %s (row %d): %v", o.PlanetName, o.Row, o.Err)
	}
	return "Successfully imported " + o.PlanetName
}
