package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusSold      VehicleStatus = "Sold"
	VehicleStatusReserved  VehicleStatus = "Reserved"
)

var VehicleStatuses = []VehicleStatus{
	VehicleStatusAvailable,
	VehicleStatusSold,
	VehicleStatusReserved,
}

func (s VehicleStatus) IsValid() bool {
	for _, status := range VehicleStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Vehicle struct {
	ID           string          `json:"id"`
	Registration string          `json:"registration"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Value        float64         `json:"value"`
	Year         int             `json:"year"`
	Category     VehicleCategory `json:"category"`
	Color        string          `json:"color"`
	Mileage      int             `json:"mileage"`
	Status       VehicleStatus   `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// VehicleFilters representa os filtros da listagem do estoque.
// Status e Brand vazios ou "all" não filtram.
type VehicleFilters struct {
	Search  string
	Status  string
	Brand   string
	Page    int
	PerPage int
}

type VehiclePage struct {
	Items      []Vehicle `json:"items"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalItems int       `json:"total_items"`
	TotalPages int       `json:"total_pages"`
	StartIndex int       `json:"start_index"` // Posição (base 1) do primeiro item da página, 0 quando vazia
	EndIndex   int       `json:"end_index"`
	TotalValue float64   `json:"total_value"` // Soma do valor de todos os veículos filtrados
}

type CreateVehicleRequest struct {
	Registration string          `json:"registration"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Value        float64         `json:"value"`
	Year         int             `json:"year"`
	Category     VehicleCategory `json:"category"`
	Color        string          `json:"color"`
	Mileage      int             `json:"mileage"`
	Status       VehicleStatus   `json:"status"`
}

type UpdateVehicleRequest struct {
	Registration *string          `json:"registration,omitempty"`
	Brand        *string          `json:"brand,omitempty"`
	Model        *string          `json:"model,omitempty"`
	Value        *float64         `json:"value,omitempty"`
	Year         *int             `json:"year,omitempty"`
	Category     *VehicleCategory `json:"category,omitempty"`
	Color        *string          `json:"color,omitempty"`
	Mileage      *int             `json:"mileage,omitempty"`
	Status       *VehicleStatus   `json:"status,omitempty"`
}

type VehicleEventType string

const (
	VehicleCreated VehicleEventType = "vehicle.created"
	VehicleUpdated VehicleEventType = "vehicle.updated"
	VehicleDeleted VehicleEventType = "vehicle.deleted"
)

type VehicleEvent struct {
	Type      VehicleEventType `json:"type"`
	VehicleID string           `json:"vehicle_id"`
	Vehicle   *Vehicle         `json:"vehicle,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}
