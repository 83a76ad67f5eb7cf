// Package app monta as dependências compartilhadas pela API e pela CLI.
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/repository"
	"github.com/vfg2006/vehicle-sales-api/internal/config"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/inventory"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting"
	"golang.org/x/sync/errgroup"
)

// DataSources reúne os repositórios de leitura escolhidos por DATA_SOURCE
type DataSources struct {
	Sales    repository.SalesRepository
	Vehicles repository.VehicleRepository

	conn postgres.Conn
}

func (d *DataSources) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

// Conn devolve a conexão com o Postgres, nil quando a fonte é memory
func (d *DataSources) Conn() postgres.Conn {
	return d.conn
}

func NewDataSources(ctx context.Context, cfg *config.Config) (*DataSources, error) {
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return &DataSources{
			Sales:    repository.NewSalesRepository(conn),
			Vehicles: repository.NewVehicleRepository(conn),
			conn:     conn,
		}, nil

	case config.DataSourceMemory:
		logrus.WithFields(logrus.Fields{
			"seed":          cfg.Data.Seed,
			"vehicle_count": cfg.Data.VehicleCount,
		}).Info("Usando dados gerados em memória")

		return &DataSources{
			Sales:    repository.NewGeneratedSalesRepository(cfg.Data.Seed),
			Vehicles: repository.NewGeneratedVehicleRepository(cfg.Data.Seed, cfg.Data.VehicleCount),
		}, nil

	default:
		return nil, errors.Wrap(config.ErrInvalidDataSource, cfg.Data.Source)
	}
}

// LoadAll carrega vendas e estoque em paralelo; o primeiro erro cancela o outro carregamento
func LoadAll(ctx context.Context, reporter reporting.Reporter, inventoryService inventory.Manager) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return reporter.LoadSales(gctx)
	})

	g.Go(func() error {
		return inventoryService.LoadVehicles(gctx)
	})

	return g.Wait()
}
