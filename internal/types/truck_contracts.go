package types

import "github.com/google/uuid"

type CreateTruckRequest struct {
	Model             TruckModel    `json:"model"`
	ManufacturingYear int           `json:"manufacturing_year"`
	ChassisCode       string        `json:"chassis_code"`
	Color             string        `json:"color"`
	PlantIsoCode      PlantLocation `json:"plant_iso_code"`
}

type UpdateTruckRequest struct {
	ID                uuid.UUID     `json:"id"`
	Model             TruckModel    `json:"model"`
	ManufacturingYear int           `json:"manufacturing_year"`
	ChassisCode       string        `json:"chassis_code"`
	Color             string        `json:"color"`
	PlantIsoCode      PlantLocation `json:"plant_iso_code"`
}

type TruckResponse struct {
	ID                uuid.UUID `json:"id"`
	Model             string    `json:"model"`
	ManufacturingYear int       `json:"manufacturing_year"`
	ChassisCode       string    `json:"chassis_code"`
	Color             string    `json:"color"`
	PlantName         string    `json:"plant_name"`
	CreatedAt         string    `json:"created_at"`
}

type DefinitionsResponse struct {
	TruckModels    []Definition `json:"truck_models"`
	PlantLocations []Definition `json:"plant_locations"`
}

type PlantCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// HourCount is a minute-resolution bucket of the last hour; the historical
// field name is kept for the dashboard UI.
type HourCount struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

type DetailedHourCount struct {
	Time      string `json:"time"`
	ModelName string `json:"model_name"`
	Count     int    `json:"count"`
}

type DashboardInfoResponse struct {
	Total              int64               `json:"total"`
	PlantCounts        []PlantCount        `json:"plant_counts"`
	HourCounts         []HourCount         `json:"hour_counts"`
	DetailedHourCounts []DetailedHourCount `json:"detailed_hour_counts"`
}
