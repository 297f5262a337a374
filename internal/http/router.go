package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/fleetops/truck-registry-backend/internal/http/handlers"
	httpMW "github.com/fleetops/truck-registry-backend/internal/http/middleware"
	"github.com/fleetops/truck-registry-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	TruckHandler  *httpH.TruckHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.TruckHandler != nil {
			trucks := api.Group("/trucks")
			trucks.GET("", cfg.TruckHandler.GetAll)
			trucks.POST("", cfg.TruckHandler.Add)
			trucks.PUT("", cfg.TruckHandler.Update)
			trucks.DELETE("", cfg.TruckHandler.DeleteRange)
			trucks.GET("/definitions", cfg.TruckHandler.Definitions)
			trucks.GET("/dashboard", cfg.TruckHandler.Dashboard)
			trucks.GET("/generate", cfg.TruckHandler.Generate)
			trucks.GET("/:id", cfg.TruckHandler.GetByID)
		}
	}

	return r
}
