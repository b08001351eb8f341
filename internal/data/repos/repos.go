package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/exocatalog/internal/data/repos/catalog"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type HostRepo = catalog.HostRepo
type SystemParameterReferenceRepo = catalog.SystemParameterReferenceRepo
type DiscoveryRepo = catalog.DiscoveryRepo
type PlanetarySystemRepo = catalog.PlanetarySystemRepo
type PlanetRepo = catalog.PlanetRepo

type Scope = catalog.Scope

func NewHostRepo(db *gorm.DB, baseLog *logger.Logger) HostRepo {
	return catalog.NewHostRepo(db, baseLog)
}
func NewSystemParameterReferenceRepo(db *gorm.DB, baseLog *logger.Logger) SystemParameterReferenceRepo {
	return catalog.NewSystemParameterReferenceRepo(db, baseLog)
}
func NewDiscoveryRepo(db *gorm.DB, baseLog *logger.Logger) DiscoveryRepo {
	return catalog.NewDiscoveryRepo(db, baseLog)
}
func NewPlanetarySystemRepo(db *gorm.DB, baseLog *logger.Logger) PlanetarySystemRepo {
	return catalog.NewPlanetarySystemRepo(db, baseLog)
}
func NewPlanetRepo(db *gorm.DB, baseLog *logger.Logger) PlanetRepo {
	return catalog.NewPlanetRepo(db, baseLog)
}
