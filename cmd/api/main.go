package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/cache"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/messaging"
	"github.com/vfg2006/vehicle-sales-api/infrastructure/repository"
	"github.com/vfg2006/vehicle-sales-api/internal/api"
	"github.com/vfg2006/vehicle-sales-api/internal/app"
	"github.com/vfg2006/vehicle-sales-api/internal/config"
	"github.com/vfg2006/vehicle-sales-api/internal/scheduler"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/inventory"
	"github.com/vfg2006/vehicle-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/vehicle-sales-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel, os.Stdout); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sources, err := app.NewDataSources(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a fonte de dados")
	}
	defer sources.Close()

	dashboardCache, err := cache.NewDashboardCache(ctx, cfg.Cache, cache.Namespace(cfg.Data.Source, cfg.Data.Seed))
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache do painel")
		dashboardCache = cache.NewNoopDashboardCache()
	}
	defer dashboardCache.Close()

	notifier := vehicleNotifier(cfg.Events)
	defer notifier.Close()

	reportingService := reporting.NewService(sources.Sales, dashboardCache)
	inventoryService := inventory.NewService(sources.Vehicles, repository.NewMemoryVehicleStore(), notifier)

	if err := app.LoadAll(ctx, reportingService, inventoryService); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os dados iniciais")
	}

	dashboardWarmupService := scheduler.NewDashboardWarmupService(reportingService, cfg)
	if err := dashboardWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do painel")
	} else {
		logrus.Info("Agendador de aquecimento do painel iniciado com sucesso")
	}
	defer dashboardWarmupService.Stop()

	server, err := api.New(cfg, reportingService, inventoryService, dashboardWarmupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// vehicleNotifier publica no RabbitMQ quando EVENTS_ENABLED=true e cai para o log se o broker falhar
func vehicleNotifier(cfg config.Events) messaging.VehicleNotifier {
	if !cfg.Enabled {
		return messaging.NewLogNotifier(nil)
	}

	notifier, err := messaging.NewAMQPNotifier(cfg)
	if err != nil {
		logrus.WithError(err).Warn("RabbitMQ indisponível, eventos de veículos serão apenas registrados no log")
		return messaging.NewLogNotifier(nil)
	}

	logrus.WithField("exchange", cfg.Exchange).Info("Eventos de veículos publicados no RabbitMQ")
	return notifier
}
