package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/exocatalog/internal/data/repos"
	"github.com/yungbote/exocatalog/internal/platform/logger"
)

type Repos struct {
	Host            repos.HostRepo
	Reference       repos.SystemParameterReferenceRepo
	Discovery       repos.DiscoveryRepo
	PlanetarySystem repos.PlanetarySystemRepo
	Planet          repos.PlanetRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Host:            repos.NewHostRepo(db, log),
		Reference:       repos.NewSystemParameterReferenceRepo(db, log),
		Discovery:       repos.NewDiscoveryRepo(db, log),
		PlanetarySystem: repos.NewPlanetarySystemRepo(db, log),
		Planet:          repos.NewPlanetRepo(db, log),
	}
}
