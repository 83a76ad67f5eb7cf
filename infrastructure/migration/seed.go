// Package migration cria as tabelas lidas com DATA_SOURCE=postgres e popula com dados gerados.
package migration

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

// DefaultBatchSize limita o número de linhas por INSERT
const DefaultBatchSize = 200

// seq preserva a ordem de inserção, que é a ordem observada pelas agregações
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS vehicle_sales (
		seq        BIGSERIAL PRIMARY KEY,
		id         TEXT NOT NULL UNIQUE,
		year       INTEGER NOT NULL,
		quarter    INTEGER NOT NULL,
		month      TEXT NOT NULL,
		brand      TEXT NOT NULL,
		model      TEXT NOT NULL,
		units_sold INTEGER NOT NULL,
		revenue    NUMERIC(14, 2) NOT NULL,
		category   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		seq          BIGSERIAL PRIMARY KEY,
		id           TEXT NOT NULL UNIQUE,
		registration TEXT NOT NULL,
		brand        TEXT NOT NULL,
		model        TEXT NOT NULL,
		value        NUMERIC(12, 2) NOT NULL,
		year         INTEGER NOT NULL,
		category     TEXT NOT NULL,
		color        TEXT NOT NULL,
		mileage      INTEGER NOT NULL,
		status       TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
}

// Transactor é satisfeito por postgres.Conn
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type Seeder struct {
	conn      Transactor
	batchSize int
}

func NewSeeder(conn Transactor, batchSize int) *Seeder {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Seeder{conn: conn, batchSize: batchSize}
}

// Result resume o que foi gravado
type Result struct {
	Sales    int
	Vehicles int
	Duration time.Duration
}

// Seed cria o schema, apaga o conteúdo anterior e grava vendas e veículos numa única transação
func (s *Seeder) Seed(ctx context.Context, sales []domain.SalesRecord, vehicles []domain.Vehicle) (*Result, error) {
	startTime := time.Now()
	logrus.WithFields(logrus.Fields{
		"sales":      len(sales),
		"vehicles":   len(vehicles),
		"batch_size": s.batchSize,
	}).Info("Iniciando carga do banco")

	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return s.seed(ctx, tx, sales, vehicles)
	})
	if err != nil {
		return nil, err
	}

	result := &Result{Sales: len(sales), Vehicles: len(vehicles), Duration: time.Since(startTime)}
	logrus.WithField("duration", result.Duration.String()).Info("Carga do banco concluída")

	return result, nil
}

func (s *Seeder) seed(ctx context.Context, tx execer, sales []domain.SalesRecord, vehicles []domain.Vehicle) error {
	for _, statement := range schemaStatements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return errors.Wrap(err, "criando schema")
		}
	}

	if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE vehicle_sales, vehicles RESTART IDENTITY"); err != nil {
		return errors.Wrap(err, "limpando tabelas")
	}

	for start := 0; start < len(sales); start += s.batchSize {
		batch := sales[start:min(start+s.batchSize, len(sales))]

		query, args, err := insertSalesQuery(batch)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "inserindo vendas %d..%d", start, start+len(batch))
		}

		logrus.Debugf("Progresso: %d/%d vendas inseridas", start+len(batch), len(sales))
	}

	for start := 0; start < len(vehicles); start += s.batchSize {
		batch := vehicles[start:min(start+s.batchSize, len(vehicles))]

		query, args, err := insertVehiclesQuery(batch)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "inserindo veículos %d..%d", start, start+len(batch))
		}

		logrus.Debugf("Progresso: %d/%d veículos inseridos", start+len(batch), len(vehicles))
	}

	return nil
}

func insertSalesQuery(batch []domain.SalesRecord) (string, []interface{}, error) {
	builder := squirrel.
		Insert("vehicle_sales").
		Columns("id", "year", "quarter", "month", "brand", "model", "units_sold", "revenue", "category").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range batch {
		builder = builder.Values(
			record.ID,
			record.Year,
			record.Quarter,
			record.Month,
			record.Brand,
			record.Model,
			record.UnitsSold,
			record.Revenue,
			string(record.Category),
		)
	}

	return builder.ToSql()
}

func insertVehiclesQuery(batch []domain.Vehicle) (string, []interface{}, error) {
	builder := squirrel.
		Insert("vehicles").
		Columns("id", "registration", "brand", "model", "value", "year", "category", "color", "mileage", "status", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, vehicle := range batch {
		builder = builder.Values(
			vehicle.ID,
			vehicle.Registration,
			vehicle.Brand,
			vehicle.Model,
			vehicle.Value,
			vehicle.Year,
			string(vehicle.Category),
			vehicle.Color,
			vehicle.Mileage,
			string(vehicle.Status),
			vehicle.CreatedAt,
			vehicle.UpdatedAt,
		)
	}

	return builder.ToSql()
}
