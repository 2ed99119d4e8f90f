package service

import (
	"context"
	"fmt"

	"fleet_manager/internal/model"
	"fleet_manager/internal/repository"
)

// FleetService defines operations for fleets
type FleetService interface {
	List(ctx context.Context) ([]model.Fleet, error)
}

type fleetService struct {
	repo repository.FleetRepository
}

// NewFleetService creates a new FleetService
func NewFleetService(repo repository.FleetRepository) FleetService {
	return &fleetService{repo: repo}
}

// List returns the full, unpaginated fleet listing
func (s *fleetService) List(ctx context.Context) ([]model.Fleet, error) {
	fleets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fleets: %w", err)
	}
	if fleets == nil {
		fleets = []model.Fleet{}
	}
	return fleets, nil
}
