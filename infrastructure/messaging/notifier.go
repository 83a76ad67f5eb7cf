// Package messaging publica as alterações feitas no estoque de veículos.
package messaging

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

//go:generate mockgen -source=notifier.go -destination=mocks/notifier.go -package=mocks

type VehicleNotifier interface {
	Publish(ctx context.Context, event domain.VehicleEvent) error
	Close() error
}

// LogNotifier só registra o evento no log. É o padrão quando EVENTS_ENABLED=false.
type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Publish(ctx context.Context, event domain.VehicleEvent) error {
	entry := n.logger.WithFields(logrus.Fields{
		"event":      event.Type,
		"vehicle_id": event.VehicleID,
	})

	switch event.Type {
	case domain.VehicleDeleted:
		entry.Info("Removendo veículo")
	default:
		if event.Vehicle != nil {
			entry = entry.WithFields(logrus.Fields{
				"registration": event.Vehicle.Registration,
				"status":       event.Vehicle.Status,
			})
		}
		entry.Info("Salvando veículo")
	}

	return nil
}

func (n *LogNotifier) Close() error {
	return nil
}
