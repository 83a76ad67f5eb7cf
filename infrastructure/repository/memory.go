package repository

import (
	"context"
	"time"

	"github.com/vfg2006/vehicle-sales-api/infrastructure/generator"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

type generatedSalesRepository struct {
	seed uint64
}

// NewGeneratedSalesRepository gera as vendas sintéticas a partir da seed
func NewGeneratedSalesRepository(seed uint64) SalesRepository {
	return &generatedSalesRepository{seed: seed}
}

func (g *generatedSalesRepository) ListSales(ctx context.Context) ([]domain.SalesRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return generator.Sales(g.seed), nil
}

type generatedVehicleRepository struct {
	seed  uint64
	count int
	now   func() time.Time
}

// NewGeneratedVehicleRepository gera count veículos sintéticos a partir da seed
func NewGeneratedVehicleRepository(seed uint64, count int) VehicleRepository {
	return &generatedVehicleRepository{
		seed:  seed,
		count: count,
		now:   time.Now,
	}
}

func (g *generatedVehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return generator.Vehicles(g.seed, g.count, g.now()), nil
}
