package handler

import (
	"net/http"

	"fleet_manager/internal/response"
	"fleet_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FleetHandler handles fleet related requests
type FleetHandler struct {
	service service.FleetService
}

// NewFleetHandler creates a new FleetHandler
func NewFleetHandler(s service.FleetService) *FleetHandler {
	return &FleetHandler{service: s}
}

func (h *FleetHandler) ListFleets(c *gin.Context) {
	fleets, err := h.service.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to list fleets")
		response.Fail(c, http.StatusInternalServerError, "failed to retrieve fleets")
		return
	}
	response.OK(c, fleets)
}

// RegisterFleetRoutes registers fleet routes behind authentication
func (h *FleetHandler) RegisterFleetRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/fleets", authMW, h.ListFleets)
}
