package repository

import (
	"context"
	"errors"

	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

var ErrNotFound = errors.New("record not found")

// SalesRepository carrega os registros de venda uma única vez na inicialização
type SalesRepository interface {
	ListSales(ctx context.Context) ([]domain.SalesRecord, error)
}

// VehicleRepository carrega o estoque inicial
type VehicleRepository interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

// VehicleStore mantém o estoque em memória durante a execução.
// As alterações não são persistidas na fonte de dados.
type VehicleStore interface {
	Replace(vehicles []domain.Vehicle)
	List(ctx context.Context) []domain.Vehicle
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Add(ctx context.Context, vehicle domain.Vehicle) error
	Save(ctx context.Context, vehicle domain.Vehicle) error
	Delete(ctx context.Context, id string) error
}
