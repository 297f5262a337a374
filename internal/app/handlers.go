package app

import (
	httpH "github.com/fleetops/truck-registry-backend/internal/http/handlers"
)

type Handlers struct {
	Truck  *httpH.TruckHandler
	Health *httpH.HealthHandler
}

func wireHandlers(serviceset Services) Handlers {
	return Handlers{
		Truck:  httpH.NewTruckHandler(serviceset.Truck),
		Health: httpH.NewHealthHandler(),
	}
}
