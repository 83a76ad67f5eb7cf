package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

const vehiclesTable = "vehicles v"

type vehicleRepository struct {
	conn postgres.Queryer
}

// NewVehicleRepository lê o estoque inicial da tabela vehicles, ordenado por marca
func NewVehicleRepository(conn postgres.Queryer) VehicleRepository {
	return &vehicleRepository{
		conn: conn,
	}
}

func listVehiclesQuery() (string, []interface{}, error) {
	return squirrel.
		Select("v.id, v.registration, v.brand, v.model, v.value, v.year, v.category, v.color, v.mileage, v.status, v.created_at, v.updated_at").
		From(vehiclesTable).
		OrderBy("v.brand ASC", "v.seq ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (v *vehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	vehiclesSQL, vehiclesArgs, err := listVehiclesQuery()
	if err != nil {
		return nil, err
	}

	rows, err := v.conn.QueryContext(ctx, vehiclesSQL, vehiclesArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando vehicles")
	}
	defer rows.Close()

	vehicles := make([]domain.Vehicle, 0)

	for rows.Next() {
		vehicle, err := v.deserializeVehicle(rows)
		if err != nil {
			return nil, err
		}

		vehicles = append(vehicles, *vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "lendo vehicles")
	}

	return vehicles, nil
}

func (v *vehicleRepository) deserializeVehicle(rows *sql.Rows) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{}

	if err := rows.Scan(
		&vehicle.ID,
		&vehicle.Registration,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.Value,
		&vehicle.Year,
		&vehicle.Category,
		&vehicle.Color,
		&vehicle.Mileage,
		&vehicle.Status,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	); err != nil {
		return nil, errors.Wrap(err, "lendo veículo")
	}

	return vehicle, nil
}
