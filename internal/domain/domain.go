package domain

import (
	"github.com/yungbote/exocatalog/internal/domain/catalog"
)

type (
	Host                             = catalog.Host
	HostKey                          = catalog.HostKey
	HostDefaults                     = catalog.HostDefaults
	SystemParameterReference         = catalog.SystemParameterReference
	SystemParameterReferenceKey      = catalog.SystemParameterReferenceKey
	SystemParameterReferenceDefaults = catalog.SystemParameterReferenceDefaults
	Discovery                        = catalog.Discovery
	DiscoveryKey                     = catalog.DiscoveryKey
	DiscoveryDefaults                = catalog.DiscoveryDefaults
	PlanetarySystem                  = catalog.PlanetarySystem
	Planet                           = catalog.Planet
	PlanetKey                        = catalog.PlanetKey
	PlanetDefaults                   = catalog.PlanetDefaults
)

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&Host{},
		&SystemParameterReference{},
		&Discovery{},
		&PlanetarySystem{},
		&Planet{},
	}
}
