package repos

import (
	"context"
	cryptorand "crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/fleetops/truck-registry-backend/internal/pkg/errors"
	"github.com/fleetops/truck-registry-backend/internal/pkg/logger"
	"github.com/fleetops/truck-registry-backend/internal/types"
)

// Bulk generation can insert up to 100k rows in one call; inserts are batched
// so the statement stays under driver parameter limits.
const createBatchSize = 500

type TruckRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Truck, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Truck, error)
	GetCreatedSince(ctx context.Context, tx *gorm.DB, hoursAgo int) ([]*types.Truck, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	Create(ctx context.Context, tx *gorm.DB, trucks []*types.Truck) error
	Update(ctx context.Context, tx *gorm.DB, truck *types.Truck) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type truckRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTruckRepo(db *gorm.DB, baseLog *logger.Logger) TruckRepo {
	repoLog := baseLog.With("repo", "TruckRepo")
	return &truckRepo{db: db, log: repoLog}
}

// newVersionToken returns a fresh opaque concurrency token. Every insert and
// every successful update rewrites the row's token.
func newVersionToken() []byte {
	b := make([]byte, 8)
	if _, err := cryptorand.Read(b); err != nil {
		panic(fmt.Sprintf("read random version token: %v", err))
	}
	return b
}

func (tr *truckRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Truck, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Truck
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *truckRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Truck, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result types.Truck
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("truck %s: %w", id, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

// GetCreatedSince returns trucks created at or after now+hoursAgo hours
// (hoursAgo is negative). The cutoff uses the wall clock at call time.
func (tr *truckRepo) GetCreatedSince(ctx context.Context, tx *gorm.DB, hoursAgo int) ([]*types.Truck, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	cutoff := time.Now().Add(time.Duration(hoursAgo) * time.Hour)

	var results []*types.Truck
	if err := transaction.WithContext(ctx).
		Where("created_at >= ?", cutoff).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *truckRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Truck{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (tr *truckRepo) Create(ctx context.Context, tx *gorm.DB, trucks []*types.Truck) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(trucks) == 0 {
		return nil
	}

	for _, truck := range trucks {
		truck.Version = newVersionToken()
	}

	if err := transaction.WithContext(ctx).
		CreateInBatches(&trucks, createBatchSize).Error; err != nil {
		return err
	}
	return nil
}

// Update replaces the full mutable field set, compared-and-swapped on the
// version token. A stale token yields ErrConflict; a missing row ErrNotFound.
func (tr *truckRepo) Update(ctx context.Context, tx *gorm.DB, truck *types.Truck) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	next := newVersionToken()
	res := transaction.WithContext(ctx).
		Model(&types.Truck{}).
		Where("id = ? AND version = ?", truck.ID, truck.Version).
		Updates(map[string]interface{}{
			"model":              truck.Model,
			"manufacturing_year": truck.ManufacturingYear,
			"chassis_code":       truck.ChassisCode,
			"color":              truck.Color,
			"plant":              truck.Plant,
			"version":            next,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := transaction.WithContext(ctx).
			Model(&types.Truck{}).
			Where("id = ?", truck.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("truck %s: %w", truck.ID, pkgerrors.ErrNotFound)
		}
		tr.log.Warn("Stale version token on truck update", "truck_id", truck.ID.String())
		return fmt.Errorf("truck %s: %w", truck.ID, pkgerrors.ErrConflict)
	}

	truck.Version = next
	return nil
}

// DeleteByIDs removes every truck whose id is in ids; unknown ids are ignored.
func (tr *truckRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(ids) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.Truck{}).Error; err != nil {
		return err
	}
	return nil
}
