package app

import (
	"gorm.io/gorm"

	"github.com/fleetops/truck-registry-backend/internal/pkg/logger"
	"github.com/fleetops/truck-registry-backend/internal/services"
)

type Services struct {
	Truck services.TruckService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	return Services{
		Truck: services.NewTruckService(db, log, reposet.Truck, cfg.Display, cfg.GenerateRange),
	}
}
