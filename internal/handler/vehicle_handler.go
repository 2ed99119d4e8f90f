package handler

import (
	"errors"
	"net/http"
	"strconv"

	"fleet_manager/internal/model"
	"fleet_manager/internal/response"
	"fleet_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// VehicleHandler handles vehicle related requests
type VehicleHandler struct {
	service service.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(s service.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: s}
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid page parameter")
		return
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid per_page parameter")
		return
	}
	keyword := c.Query("keyword")

	list, err := h.service.List(c.Request.Context(), page, perPage, keyword)
	if err != nil {
		logrus.WithError(err).Error("failed to list vehicles")
		response.Fail(c, http.StatusInternalServerError, "failed to retrieve vehicles")
		return
	}
	response.OK(c, list)
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req model.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	vehicle, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlateNumberTaken):
			response.Fail(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrFleetNotFound):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			logrus.WithError(err).Error("failed to create vehicle")
			response.Fail(c, http.StatusInternalServerError, "failed to create vehicle")
		}
		return
	}
	response.OKMessage(c, "vehicle created successfully", vehicle)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid vehicle ID")
		return
	}

	var req model.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	vehicle, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVehicleNotFound):
			response.Fail(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPlateNumberTaken):
			response.Fail(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrFleetNotFound):
			response.Fail(c, http.StatusBadRequest, err.Error())
		default:
			logrus.WithError(err).Error("failed to update vehicle")
			response.Fail(c, http.StatusInternalServerError, "failed to update vehicle")
		}
		return
	}
	response.OKMessage(c, "vehicle updated successfully", vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid vehicle ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			response.Fail(c, http.StatusNotFound, err.Error())
			return
		}
		logrus.WithError(err).Error("failed to delete vehicle")
		response.Fail(c, http.StatusInternalServerError, "failed to delete vehicle")
		return
	}
	response.OKMessage(c, "vehicle deleted successfully", nil)
}

// RegisterVehicleRoutes registers vehicle routes, all behind authentication
func (h *VehicleHandler) RegisterVehicleRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	vehicleGroup := rg.Group("/vehicles", authMW)
	{
		vehicleGroup.GET("", h.ListVehicles)
		vehicleGroup.POST("", h.CreateVehicle)
		vehicleGroup.PUT("/:id", h.UpdateVehicle)
		vehicleGroup.DELETE("/:id", h.DeleteVehicle)
	}
}
