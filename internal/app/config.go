package app

import (
	"time"

	"github.com/fleetops/truck-registry-backend/internal/pkg/logger"
	"github.com/fleetops/truck-registry-backend/internal/services"
	"github.com/fleetops/truck-registry-backend/internal/types"
	"github.com/fleetops/truck-registry-backend/internal/utils"
)

type Config struct {
	Port          string
	GenerateRange services.GenerateRange
	Display       types.DisplayFormat
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	generateMin := utils.GetEnvAsInt("GENERATE_MIN", 25000, log)
	generateMax := utils.GetEnvAsInt("GENERATE_MAX", 100000, log)

	display := types.DefaultDisplayFormat()
	display.Layout = utils.GetEnv("DISPLAY_TIME_LAYOUT", display.Layout, log)
	if tz := utils.GetEnv("DISPLAY_TIME_ZONE", "", log); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Warn("Invalid DISPLAY_TIME_ZONE, falling back to local", "tz", tz, "error", err)
		} else {
			display.Location = loc
		}
	}

	return Config{
		Port:          port,
		GenerateRange: services.GenerateRange{Min: generateMin, Max: generateMax},
		Display:       display,
	}
}
