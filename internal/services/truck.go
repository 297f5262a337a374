package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetops/truck-registry-backend/internal/pkg/logger"
	"github.com/fleetops/truck-registry-backend/internal/repos"
	"github.com/fleetops/truck-registry-backend/internal/types"
)

type TruckService interface {
	GetAll(ctx context.Context) ([]types.TruckResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (types.TruckResponse, error)
	AddTruck(ctx context.Context, req types.CreateTruckRequest) (types.TruckResponse, error)
	UpdateTruck(ctx context.Context, req types.UpdateTruckRequest) (types.TruckResponse, error)
	DeleteTrucks(ctx context.Context, ids []uuid.UUID) error
	GenerateAndAdd(ctx context.Context) ([]types.TruckResponse, error)
	GetDashboardInfo(ctx context.Context) (*types.DashboardInfoResponse, error)
	Definitions() types.DefinitionsResponse
}

// GenerateRange bounds the synthetic bulk-generation count.
type GenerateRange struct {
	Min int
	Max int
}

func DefaultGenerateRange() GenerateRange {
	return GenerateRange{Min: 25000, Max: 100000}
}

type truckService struct {
	db        *gorm.DB
	log       *logger.Logger
	truckRepo repos.TruckRepo
	display   types.DisplayFormat
	genRange  GenerateRange
}

func NewTruckService(db *gorm.DB, log *logger.Logger, truckRepo repos.TruckRepo, display types.DisplayFormat, genRange GenerateRange) TruckService {
	serviceLog := log.With("service", "TruckService")
	if genRange.Min <= 0 {
		genRange = DefaultGenerateRange()
	}
	if genRange.Max < genRange.Min {
		genRange.Max = genRange.Min
	}
	return &truckService{
		db:        db,
		log:       serviceLog,
		truckRepo: truckRepo,
		display:   display,
		genRange:  genRange,
	}
}

func (ts *truckService) GetAll(ctx context.Context) ([]types.TruckResponse, error) {
	trucks, err := ts.truckRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching trucks: %w", err)
	}
	return ts.toResponses(trucks), nil
}

func (ts *truckService) GetByID(ctx context.Context, id uuid.UUID) (types.TruckResponse, error) {
	truck, err := ts.truckRepo.GetByID(ctx, nil, id)
	if err != nil {
		return types.TruckResponse{}, err
	}
	return truck.ToResponse(ts.display), nil
}

func (ts *truckService) AddTruck(ctx context.Context, req types.CreateTruckRequest) (types.TruckResponse, error) {
	truck := types.NewTruck(req, time.Now())
	if err := ts.truckRepo.Create(ctx, nil, []*types.Truck{truck}); err != nil {
		return types.TruckResponse{}, fmt.Errorf("error adding truck: %w", err)
	}
	return truck.ToResponse(ts.display), nil
}

func (ts *truckService) UpdateTruck(ctx context.Context, req types.UpdateTruckRequest) (types.TruckResponse, error) {
	truck, err := ts.truckRepo.GetByID(ctx, nil, req.ID)
	if err != nil {
		return types.TruckResponse{}, err
	}

	truck.Update(req)

	if err := ts.truckRepo.Update(ctx, nil, truck); err != nil {
		return types.TruckResponse{}, err
	}
	return truck.ToResponse(ts.display), nil
}

func (ts *truckService) DeleteTrucks(ctx context.Context, ids []uuid.UUID) error {
	if err := ts.truckRepo.DeleteByIDs(ctx, nil, ids); err != nil {
		return fmt.Errorf("error deleting trucks: %w", err)
	}
	return nil
}

// GenerateAndAdd seeds the registry with a random count of synthetic trucks
// inside the configured range. The whole batch is persisted in one
// transaction: it is visible entirely or not at all.
func (ts *truckService) GenerateAndAdd(ctx context.Context) ([]types.TruckResponse, error) {
	n := ts.genRange.Min
	if ts.genRange.Max > ts.genRange.Min {
		n += rand.Intn(ts.genRange.Max - ts.genRange.Min)
	}

	now := time.Now()
	trucks := make([]*types.Truck, 0, n)
	for i := 0; i < n; i++ {
		trucks = append(trucks, types.NewTruck(randomCreateRequest(now), now))
	}

	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ts.truckRepo.Create(ctx, tx, trucks)
	}); err != nil {
		return nil, fmt.Errorf("error bulk adding trucks: %w", err)
	}

	ts.log.Info("Generated synthetic trucks", "count", n)
	return ts.toResponses(trucks), nil
}

func (ts *truckService) Definitions() types.DefinitionsResponse {
	return types.DefinitionsResponse{
		TruckModels:    types.TruckModelDefinitions(),
		PlantLocations: types.PlantLocationDefinitions(),
	}
}

func (ts *truckService) toResponses(trucks []*types.Truck) []types.TruckResponse {
	out := make([]types.TruckResponse, 0, len(trucks))
	for _, truck := range trucks {
		out = append(out, truck.ToResponse(ts.display))
	}
	return out
}

const chassisAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var truckColors = []string{
	"red", "blue", "green", "black", "white",
	"silver", "orange", "yellow", "purple", "maroon",
}

func randomCreateRequest(now time.Time) types.CreateTruckRequest {
	models := types.TruckModels()
	plants := types.PlantLocations()

	chassis := make([]byte, 17)
	for i := range chassis {
		chassis[i] = chassisAlphabet[rand.Intn(len(chassisAlphabet))]
	}

	return types.CreateTruckRequest{
		Model:             models[rand.Intn(len(models))],
		ManufacturingYear: now.AddDate(0, 0, -rand.Intn(10*365)).Year(),
		ChassisCode:       string(chassis),
		Color:             truckColors[rand.Intn(len(truckColors))],
		PlantIsoCode:      plants[rand.Intn(len(plants))],
	}
}
