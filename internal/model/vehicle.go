package model

import "time"

const VehicleStatusNormal = "normal"

// Vehicle represents a tracked vehicle assigned to a fleet
type Vehicle struct {
	ID          int       `json:"id"`
	PlateNumber string    `json:"plate_number"`
	VehicleType string    `json:"vehicle_type"`
	FleetID     int       `json:"fleet_id"`
	FleetName   *string   `json:"fleet_name"`
	DriverName  *string   `json:"driver_name,omitempty"` // Pointer for optional field
	DriverPhone *string   `json:"driver_phone,omitempty"`
	Status      string    `json:"status"`
	Remark      *string   `json:"remark,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateVehicleRequest is used for creating a new vehicle
type CreateVehicleRequest struct {
	PlateNumber string  `json:"plate_number" binding:"required"`
	VehicleType string  `json:"vehicle_type" binding:"required"`
	FleetID     int     `json:"fleet_id" binding:"required"`
	DriverName  *string `json:"driver_name"`
	DriverPhone *string `json:"driver_phone"`
	Status      string  `json:"status"`
	Remark      *string `json:"remark"`
}

type UpdateVehicleRequest struct {
	PlateNumber *string `json:"plate_number,omitempty"` // Pointers to allow partial updates
	VehicleType *string `json:"vehicle_type,omitempty"`
	FleetID     *int    `json:"fleet_id,omitempty"`
	DriverName  *string `json:"driver_name,omitempty"`
	DriverPhone *string `json:"driver_phone,omitempty"`
	Status      *string `json:"status,omitempty"`
	Remark      *string `json:"remark,omitempty"`
}

// VehicleList is the paginated payload returned by the vehicle listing
type VehicleList struct {
	Items   []Vehicle `json:"items"`
	Total   int64     `json:"total"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
	Pages   int       `json:"pages"`
}
