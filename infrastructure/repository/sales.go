package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

const salesTable = "vehicle_sales s"

type salesRepository struct {
	conn postgres.Queryer
}

// NewSalesRepository lê as vendas da tabela vehicle_sales, na ordem de inserção
func NewSalesRepository(conn postgres.Queryer) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func listSalesQuery() (string, []interface{}, error) {
	return squirrel.
		Select("s.id, s.year, s.quarter, s.month, s.brand, s.model, s.units_sold, s.revenue, s.category").
		From(salesTable).
		OrderBy("s.seq ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (s *salesRepository) ListSales(ctx context.Context) ([]domain.SalesRecord, error) {
	salesSQL, salesArgs, err := listSalesQuery()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx, salesSQL, salesArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando vehicle_sales")
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)

	for rows.Next() {
		record, err := s.deserializeSale(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "lendo vehicle_sales")
	}

	return records, nil
}

func (s *salesRepository) deserializeSale(rows *sql.Rows) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}

	if err := rows.Scan(
		&record.ID,
		&record.Year,
		&record.Quarter,
		&record.Month,
		&record.Brand,
		&record.Model,
		&record.UnitsSold,
		&record.Revenue,
		&record.Category,
	); err != nil {
		return nil, errors.Wrap(err, "lendo registro de venda")
	}

	return record, nil
}
