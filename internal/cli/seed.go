package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/generator"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/migration"
	"github.com/vfg2006/vehicle-sales-api/internal/config"
)

type seedConn interface {
	migration.Transactor
	Close() error
}

// connectSeedDatabase é trocado nos testes
var connectSeedDatabase = func(ctx context.Context, cfg config.Database) (seedConn, error) {
	return postgres.NewConnection(ctx, cfg)
}

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Cria as tabelas no PostgreSQL e grava vendas e veículos gerados",
		Long: `Cria vehicle_sales e vehicles quando não existem, apaga o conteúdo atual e grava
os dados gerados com DATA_SEED e VEHICLE_COUNT. Depois disso a API pode rodar com
DATA_SOURCE=postgres e ver os mesmos números da fonte memory.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.config(cmd)
			if err != nil {
				return err
			}

			conn, err := connectSeedDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			sales := generator.Sales(cfg.Data.Seed)
			vehicles := generator.Vehicles(cfg.Data.Seed, cfg.Data.VehicleCount, time.Now())

			result, err := migration.NewSeeder(conn, batchSize).Seed(cmd.Context(), sales, vehicles)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d vendas e %d veículos gravados em %s\n",
				result.Sales, result.Vehicles, result.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", migration.DefaultBatchSize, "linhas por INSERT")

	return cmd
}
