package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fleetops/truck-registry-backend/internal/http/response"
	pkgerrors "github.com/fleetops/truck-registry-backend/internal/pkg/errors"
	"github.com/fleetops/truck-registry-backend/internal/services"
	"github.com/fleetops/truck-registry-backend/internal/types"
)

type TruckHandler struct {
	truckService services.TruckService
}

func NewTruckHandler(truckService services.TruckService) *TruckHandler {
	return &TruckHandler{truckService: truckService}
}

// GET /api/trucks
func (th *TruckHandler) GetAll(c *gin.Context) {
	trucks, err := th.truckService.GetAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, trucks)
}

// GET /api/trucks/:id
func (th *TruckHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	truck, err := th.truckService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, truck)
}

// POST /api/trucks
func (th *TruckHandler) Add(c *gin.Context) {
	var req types.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	truck, err := th.truckService.AddTruck(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, truck)
}

// PUT /api/trucks
func (th *TruckHandler) Update(c *gin.Context) {
	var req types.UpdateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	truck, err := th.truckService.UpdateTruck(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, truck)
}

// DELETE /api/trucks
// body: ["<uuid>", ...]
func (th *TruckHandler) DeleteRange(c *gin.Context) {
	var ids []uuid.UUID
	if err := c.ShouldBindJSON(&ids); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := th.truckService.DeleteTrucks(c.Request.Context(), ids); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Trucks deleted successfully."})
}

// GET /api/trucks/dashboard
func (th *TruckHandler) Dashboard(c *gin.Context) {
	info, err := th.truckService.GetDashboardInfo(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, info)
}

// GET /api/trucks/generate
func (th *TruckHandler) Generate(c *gin.Context) {
	trucks, err := th.truckService.GenerateAndAdd(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, trucks)
}

// GET /api/trucks/definitions
func (th *TruckHandler) Definitions(c *gin.Context) {
	response.RespondOK(c, th.truckService.Definitions())
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, pkgerrors.ErrConflict):
		response.RespondError(c, http.StatusConflict, "conflict", err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
