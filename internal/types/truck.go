package types

import (
	"time"

	"github.com/google/uuid"
)

type Truck struct {
	Entity
	Model             TruckModel    `gorm:"not null" json:"model"`
	ManufacturingYear int           `gorm:"not null" json:"manufacturing_year"`
	ChassisCode       string        `gorm:"size:64;not null" json:"chassis_code"`
	Color             string        `gorm:"size:64;not null" json:"color"`
	Plant             PlantLocation `gorm:"not null" json:"plant"`
}

func (Truck) TableName() string {
	return "truck"
}

// NewTruck builds a Truck from a creation request with a fresh id and the
// caller's clock. Field-level validation is the caller's responsibility.
func NewTruck(req CreateTruckRequest, now time.Time) *Truck {
	return &Truck{
		Entity: Entity{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Model:             req.Model,
		ManufacturingYear: req.ManufacturingYear,
		ChassisCode:       req.ChassisCode,
		Color:             req.Color,
		Plant:             req.PlantIsoCode,
	}
}

// Update replaces the full mutable field set in place. ID and CreatedAt are
// never touched; partial updates are not supported.
func (t *Truck) Update(req UpdateTruckRequest) {
	t.Model = req.Model
	t.ManufacturingYear = req.ManufacturingYear
	t.ChassisCode = req.ChassisCode
	t.Color = req.Color
	t.Plant = req.PlantIsoCode
}

// ToResponse projects the truck for display, resolving both enums to their
// descriptions. Pure and idempotent.
func (t *Truck) ToResponse(df DisplayFormat) TruckResponse {
	return TruckResponse{
		ID:                t.ID,
		Model:             t.Model.Description(),
		ManufacturingYear: t.ManufacturingYear,
		ChassisCode:       t.ChassisCode,
		Color:             t.Color,
		PlantName:         t.Plant.Description(),
		CreatedAt:         df.FormatTime(t.CreatedAt),
	}
}
