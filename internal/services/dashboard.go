package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetops/truck-registry-backend/internal/types"
)

const (
	sixHoursAgo = -6
	oneHourAgo  = -1
)

// GetDashboardInfo reduces two time-windowed slices of the registry into the
// dashboard's grouped views. The three fetches run sequentially against the
// live table, each with its own "now"; they are not a transactional snapshot,
// so writes landing between fetches can make the windows mutually
// inconsistent. That looseness is accepted.
func (ts *truckService) GetDashboardInfo(ctx context.Context) (*types.DashboardInfoResponse, error) {
	total, err := ts.truckRepo.Count(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error counting trucks: %w", err)
	}

	last6Hours, err := ts.truckRepo.GetCreatedSince(ctx, nil, sixHoursAgo)
	if err != nil {
		return nil, fmt.Errorf("error fetching 6-hour window: %w", err)
	}

	last1Hour, err := ts.truckRepo.GetCreatedSince(ctx, nil, oneHourAgo)
	if err != nil {
		return nil, fmt.Errorf("error fetching 1-hour window: %w", err)
	}

	loc := ts.display.Location
	if loc == nil {
		loc = time.Local
	}

	return &types.DashboardInfoResponse{
		Total:              total,
		PlantCounts:        groupByPlant(last6Hours),
		HourCounts:         groupByMinute(last1Hour, loc),
		DetailedHourCounts: groupByHourAndModel(last6Hours, loc),
	}, nil
}

// groupByPlant emits one row per plant present in the window. Buckets keep
// first-seen order; empty plants are not synthesized.
func groupByPlant(trucks []*types.Truck) []types.PlantCount {
	counts := make(map[types.PlantLocation]int)
	order := make([]types.PlantLocation, 0, 4)
	for _, truck := range trucks {
		if _, seen := counts[truck.Plant]; !seen {
			order = append(order, truck.Plant)
		}
		counts[truck.Plant]++
	}

	out := make([]types.PlantCount, 0, len(order))
	for _, plant := range order {
		out = append(out, types.PlantCount{Country: plant.Description(), Count: counts[plant]})
	}
	return out
}

// groupByMinute buckets by creation time truncated to the minute, rendered as
// HH:mm on the service's clock. Minutes with zero trucks do not appear.
func groupByMinute(trucks []*types.Truck, loc *time.Location) []types.HourCount {
	counts := make(map[string]int)
	order := make([]string, 0, 60)
	for _, truck := range trucks {
		label := truck.CreatedAt.In(loc).Format("15:04")
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	out := make([]types.HourCount, 0, len(order))
	for _, label := range order {
		out = append(out, types.HourCount{Time: label, Count: counts[label]})
	}
	return out
}

type hourModelKey struct {
	hour  string
	model types.TruckModel
}

// groupByHourAndModel buckets by (creation time truncated to the top of its
// hour, model). Only non-empty combinations appear.
func groupByHourAndModel(trucks []*types.Truck, loc *time.Location) []types.DetailedHourCount {
	counts := make(map[hourModelKey]int)
	order := make([]hourModelKey, 0, 24)
	for _, truck := range trucks {
		key := hourModelKey{
			hour:  truck.CreatedAt.In(loc).Format("15") + ":00",
			model: truck.Model,
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]types.DetailedHourCount, 0, len(order))
	for _, key := range order {
		out = append(out, types.DetailedHourCount{
			Time:      key.hour,
			ModelName: key.model.Description(),
			Count:     counts[key],
		})
	}
	return out
}
