package app

import (
	"gorm.io/gorm"

	"github.com/fleetops/truck-registry-backend/internal/pkg/logger"
	"github.com/fleetops/truck-registry-backend/internal/repos"
)

type Repos struct {
	Truck repos.TruckRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Truck: repos.NewTruckRepo(db, log),
	}
}
