package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet_manager/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeFleetService struct {
	fleets []model.Fleet
}

func (s *fakeFleetService) List(_ context.Context) ([]model.Fleet, error) {
	return s.fleets, nil
}

func TestFleetHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewFleetHandler(&fakeFleetService{fleets: []model.Fleet{
		{ID: 1, Name: "Express Fleet", Status: "active"},
		{ID: 2, Name: "City Delivery", Status: "active"},
	}}).RegisterFleetRoutes(api, stubAuthMW(7))

	req := httptest.NewRequest(http.MethodGet, "/api/fleets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, 200, env.Code)
	fleets := env.Data.([]interface{})
	assert.Len(t, fleets, 2)
}
