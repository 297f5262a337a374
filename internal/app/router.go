package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/fleetops/truck-registry-backend/internal/http"
	"github.com/fleetops/truck-registry-backend/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:           log,
		TruckHandler:  handlerset.Truck,
		HealthHandler: handlerset.Health,
	})
}
