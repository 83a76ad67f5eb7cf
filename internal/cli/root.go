// Package cli implementa o salesctl, utilitário de linha de comando sobre os mesmos dados da API.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/vehicle-sales-api/internal/config"
	"github.com/vfg2006/vehicle-sales-api/pkg/log"
)

// RootOptions guarda as flags globais. Flags informadas sobrescrevem o ambiente.
type RootOptions struct {
	Verbose bool
	Source  string
	Seed    uint64

	loadConfig func() (*config.Config, error)
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{loadConfig: config.NewConfig})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salesctl",
		Short: "Relatórios e carga de dados de vendas de veículos",
		// main imprime o erro uma única vez
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.Verbose {
				level = "debug"
			}
			return log.Configure(level, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "logs detalhados no stderr")
	cmd.PersistentFlags().StringVar(&opts.Source, "source", "", "fonte de dados (memory|postgres), padrão DATA_SOURCE")
	cmd.PersistentFlags().Uint64Var(&opts.Seed, "seed", 0, "semente dos dados gerados, padrão DATA_SEED")

	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// config carrega a configuração do ambiente e aplica as flags globais
func (o *RootOptions) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("source") {
		cfg.Data.Source = o.Source
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Data.Seed = o.Seed
	}

	logrus.WithFields(logrus.Fields{
		"source": cfg.Data.Source,
		"seed":   cfg.Data.Seed,
	}).Debug("Configuração carregada")

	return cfg, nil
}
