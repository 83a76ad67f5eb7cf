package inventory

import (
	"errors"
	"fmt"

	"github.com/vfg2006/vehicle-sales-api/pkg/apiErrors"
)

var (
	ErrVehicleIDRequired  = errors.New("vehicle ID is required")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrInvalidVehicleData = errors.New("invalid vehicle data")
	ErrInvalidPagination  = errors.New("invalid pagination")
	ErrGenerateID         = errors.New("error generating registration")
)

// InventoryError é um erro com contexto adicional para o estoque
type InventoryError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	VehicleID string // ID do veículo envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

func (e *InventoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InventoryError) Unwrap() error {
	return e.Err
}

func NewInventoryError(err error, code string, details string) *InventoryError {
	return &InventoryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewInventoryErrorWithID(err error, code string, vehicleID string, details string) *InventoryError {
	return &InventoryError{
		Err:       err,
		Code:      code,
		VehicleID: vehicleID,
		Details:   details,
	}
}

func notFound(vehicleID string) *InventoryError {
	return NewInventoryErrorWithID(ErrVehicleNotFound, apiErrors.ErrVehicleNotFound, vehicleID, "")
}
