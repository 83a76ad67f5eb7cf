package messaging

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

type fakePublisher struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func updatedEvent() domain.VehicleEvent {
	return domain.VehicleEvent{
		Type:      domain.VehicleUpdated,
		VehicleID: "veh-1",
		Vehicle: &domain.Vehicle{
			ID:           "veh-1",
			Registration: "ABC-1234",
			Status:       domain.VehicleStatusSold,
		},
		Timestamp: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestAMQPNotifier_Publish(t *testing.T) {
	fake := &fakePublisher{}
	notifier := &AMQPNotifier{publisher: fake, exchangeName: "vehicles", queueName: "vehicle-events"}

	require.NoError(t, notifier.Publish(context.Background(), updatedEvent()))

	assert.Equal(t, "vehicles", fake.exchange)
	assert.Equal(t, "vehicle-events", fake.key)
	assert.Equal(t, "application/json", fake.msg.ContentType)
	assert.Equal(t, amqp091.Persistent, fake.msg.DeliveryMode)
	assert.Equal(t, "vehicle.updated", fake.msg.Type)
	assert.Equal(t, "veh-1", fake.msg.MessageId)

	var decoded domain.VehicleEvent
	require.NoError(t, json.Unmarshal(fake.msg.Body, &decoded))
	assert.Equal(t, updatedEvent(), decoded)
}

func TestAMQPNotifier_PublishError(t *testing.T) {
	fake := &fakePublisher{err: errors.New("channel closed")}
	notifier := &AMQPNotifier{publisher: fake, exchangeName: "vehicles", queueName: "vehicle-events"}

	err := notifier.Publish(context.Background(), updatedEvent())
	assert.ErrorContains(t, err, "channel closed")
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	notifier := NewLogNotifier(logger)

	require.NoError(t, notifier.Publish(context.Background(), updatedEvent()))
	assert.Contains(t, buf.String(), "Salvando veículo")
	assert.Contains(t, buf.String(), "registration=ABC-1234")

	buf.Reset()
	require.NoError(t, notifier.Publish(context.Background(), domain.VehicleEvent{Type: domain.VehicleDeleted, VehicleID: "veh-1"}))
	assert.Contains(t, buf.String(), "Removendo veículo")
	assert.Contains(t, buf.String(), "vehicle_id=veh-1")

	assert.NoError(t, notifier.Close())
}
