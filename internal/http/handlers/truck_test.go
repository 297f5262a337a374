package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgerrors "github.com/fleetops/truck-registry-backend/internal/pkg/errors"
	"github.com/fleetops/truck-registry-backend/internal/types"
)

// fakeTruckService stubs the service boundary so handler mapping can be
// exercised without a store.
type fakeTruckService struct {
	trucks    map[uuid.UUID]types.TruckResponse
	updateErr error
}

func newFakeTruckService() *fakeTruckService {
	return &fakeTruckService{trucks: make(map[uuid.UUID]types.TruckResponse)}
}

func (f *fakeTruckService) GetAll(ctx context.Context) ([]types.TruckResponse, error) {
	out := make([]types.TruckResponse, 0, len(f.trucks))
	for _, truck := range f.trucks {
		out = append(out, truck)
	}
	return out, nil
}

func (f *fakeTruckService) GetByID(ctx context.Context, id uuid.UUID) (types.TruckResponse, error) {
	truck, ok := f.trucks[id]
	if !ok {
		return types.TruckResponse{}, pkgerrors.ErrNotFound
	}
	return truck, nil
}

func (f *fakeTruckService) AddTruck(ctx context.Context, req types.CreateTruckRequest) (types.TruckResponse, error) {
	resp := types.TruckResponse{
		ID:                uuid.New(),
		Model:             req.Model.Description(),
		ManufacturingYear: req.ManufacturingYear,
		ChassisCode:       req.ChassisCode,
		Color:             req.Color,
		PlantName:         req.PlantIsoCode.Description(),
	}
	f.trucks[resp.ID] = resp
	return resp, nil
}

func (f *fakeTruckService) UpdateTruck(ctx context.Context, req types.UpdateTruckRequest) (types.TruckResponse, error) {
	if f.updateErr != nil {
		return types.TruckResponse{}, f.updateErr
	}
	truck, ok := f.trucks[req.ID]
	if !ok {
		return types.TruckResponse{}, pkgerrors.ErrNotFound
	}
	return truck, nil
}

func (f *fakeTruckService) DeleteTrucks(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(f.trucks, id)
	}
	return nil
}

func (f *fakeTruckService) GenerateAndAdd(ctx context.Context) ([]types.TruckResponse, error) {
	return nil, nil
}

func (f *fakeTruckService) GetDashboardInfo(ctx context.Context) (*types.DashboardInfoResponse, error) {
	return &types.DashboardInfoResponse{
		PlantCounts:        []types.PlantCount{},
		HourCounts:         []types.HourCount{},
		DetailedHourCounts: []types.DetailedHourCount{},
	}, nil
}

func (f *fakeTruckService) Definitions() types.DefinitionsResponse {
	return types.DefinitionsResponse{
		TruckModels:    types.TruckModelDefinitions(),
		PlantLocations: types.PlantLocationDefinitions(),
	}
}

func newTestRouter(svc *fakeTruckService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	th := NewTruckHandler(svc)
	trucks := r.Group("/api/trucks")
	trucks.GET("", th.GetAll)
	trucks.POST("", th.Add)
	trucks.PUT("", th.Update)
	trucks.DELETE("", th.DeleteRange)
	trucks.GET("/definitions", th.Definitions)
	trucks.GET("/dashboard", th.Dashboard)
	trucks.GET("/:id", th.GetByID)
	return r
}

func TestGetByID_UnknownIDIs404(t *testing.T) {
	r := newTestRouter(newFakeTruckService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trucks/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetByID_MalformedIDIs400(t *testing.T) {
	r := newTestRouter(newFakeTruckService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trucks/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAddThenGetAll(t *testing.T) {
	svc := newFakeTruckService()
	r := newTestRouter(svc)

	body, _ := json.Marshal(map[string]any{
		"model":              1,
		"manufacturing_year": 2023,
		"chassis_code":       "ABC123",
		"color":              "red",
		"plant_iso_code":     1,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/trucks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var created types.TruckResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Model != "Caminhão FH" || created.PlantName != "Brasil" {
		t.Fatalf("expected descriptions in response, got %+v", created)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/trucks", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var all []types.TruckResponse
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 truck, got %d", len(all))
	}
}

func TestUpdate_ConflictIs409(t *testing.T) {
	svc := newFakeTruckService()
	svc.updateErr = pkgerrors.ErrConflict
	r := newTestRouter(svc)

	body, _ := json.Marshal(map[string]any{
		"id":                 uuid.NewString(),
		"model":              2,
		"manufacturing_year": 2024,
		"chassis_code":       "DEF",
		"color":              "blue",
		"plant_iso_code":     3,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/trucks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteRange_MalformedBodyIs400(t *testing.T) {
	r := newTestRouter(newFakeTruckService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/trucks", bytes.NewReader([]byte(`{"ids":`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDefinitions_ListsBothVocabularies(t *testing.T) {
	r := newTestRouter(newFakeTruckService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trucks/definitions", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var defs types.DefinitionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &defs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(defs.TruckModels) != 3 || len(defs.PlantLocations) != 4 {
		t.Fatalf("unexpected definitions: %+v", defs)
	}
}
