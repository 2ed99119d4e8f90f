package service

import (
	"context"
	"errors"
	"fmt"

	"fleet_manager/internal/model"
	"fleet_manager/internal/repository"
)

var (
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrPlateNumberTaken = errors.New("plate number already exists")
	ErrFleetNotFound    = errors.New("fleet not found")
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// VehicleService defines operations for vehicles
type VehicleService interface {
	List(ctx context.Context, page, perPage int, keyword string) (*model.VehicleList, error)
	Create(ctx context.Context, req model.CreateVehicleRequest) (*model.Vehicle, error)
	Update(ctx context.Context, id int, req model.UpdateVehicleRequest) (*model.Vehicle, error)
	Delete(ctx context.Context, id int) error
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	fleetRepo   repository.FleetRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo repository.VehicleRepository, fleetRepo repository.FleetRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, fleetRepo: fleetRepo}
}

// List returns a page of vehicles matching the keyword. Pagination is
// 1-indexed; perPage defaults to 20 and is capped at 100.
func (s *vehicleService) List(ctx context.Context, page, perPage int, keyword string) (*model.VehicleList, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	offset := (page - 1) * perPage
	items, total, err := s.vehicleRepo.List(ctx, keyword, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	if items == nil {
		items = []model.Vehicle{}
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return &model.VehicleList{
		Items:   items,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
	}, nil
}

// Create adds a new vehicle after validating plate uniqueness and that the
// target fleet exists
func (s *vehicleService) Create(ctx context.Context, req model.CreateVehicleRequest) (*model.Vehicle, error) {
	existing, err := s.vehicleRepo.FindByPlate(ctx, req.PlateNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing plate: %w", err)
	}
	if existing != nil {
		return nil, ErrPlateNumberTaken
	}

	fleet, err := s.fleetRepo.FindByID(ctx, req.FleetID)
	if err != nil {
		return nil, fmt.Errorf("failed to check fleet: %w", err)
	}
	if fleet == nil {
		return nil, ErrFleetNotFound
	}

	status := req.Status
	if status == "" {
		status = model.VehicleStatusNormal
	}

	vehicle := &model.Vehicle{
		PlateNumber: req.PlateNumber,
		VehicleType: req.VehicleType,
		FleetID:     req.FleetID,
		FleetName:   &fleet.Name,
		DriverName:  req.DriverName,
		DriverPhone: req.DriverPhone,
		Status:      status,
		Remark:      req.Remark,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicatePlate) {
			return nil, ErrPlateNumberTaken
		}
		return nil, fmt.Errorf("failed to create vehicle in repository: %w", err)
	}
	return vehicle, nil
}

// Update applies a partial update to a vehicle. A plate number equal to the
// vehicle's own current plate is not a conflict.
func (s *vehicleService) Update(ctx context.Context, id int, req model.UpdateVehicleRequest) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle for update: %w", err)
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	if req.PlateNumber != nil {
		other, err := s.vehicleRepo.FindByPlate(ctx, *req.PlateNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing plate: %w", err)
		}
		if other != nil && other.ID != id {
			return nil, ErrPlateNumberTaken
		}
		vehicle.PlateNumber = *req.PlateNumber
	}
	if req.FleetID != nil {
		fleet, err := s.fleetRepo.FindByID(ctx, *req.FleetID)
		if err != nil {
			return nil, fmt.Errorf("failed to check fleet: %w", err)
		}
		if fleet == nil {
			return nil, ErrFleetNotFound
		}
		vehicle.FleetID = *req.FleetID
		vehicle.FleetName = &fleet.Name
	}
	if req.VehicleType != nil {
		vehicle.VehicleType = *req.VehicleType
	}
	if req.DriverName != nil {
		vehicle.DriverName = req.DriverName
	}
	if req.DriverPhone != nil {
		vehicle.DriverPhone = req.DriverPhone
	}
	if req.Status != nil {
		vehicle.Status = *req.Status
	}
	if req.Remark != nil {
		vehicle.Remark = req.Remark
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrVehicleNotFound
		case errors.Is(err, repository.ErrDuplicatePlate):
			return nil, ErrPlateNumberTaken
		}
		return nil, fmt.Errorf("failed to update vehicle in repository: %w", err)
	}
	return vehicle, nil
}

// Delete removes a vehicle by ID
func (s *vehicleService) Delete(ctx context.Context, id int) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
