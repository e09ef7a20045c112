package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() PriceChangeEvent {
	return PriceChangeEvent{
		PizzaID:   7,
		NewPrice:  decimal.RequireFromString("11.50"),
		ChangedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      Config
		expected Gateway
		wantErr  bool
	}{
		{name: "default is email", cfg: Config{}, expected: &EmailGateway{}},
		{name: "email", cfg: Config{Driver: "email"}, expected: &EmailGateway{}},
		{name: "log is case-insensitive", cfg: Config{Driver: "LOG"}, expected: &LogGateway{}},
		{name: "kafka without brokers", cfg: Config{Driver: "kafka"}, wantErr: true},
		{name: "unknown driver", cfg: Config{Driver: "pigeon"}, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			gateway, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, gateway)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, gateway)
		})
	}
}

func TestEmailGatewayAlwaysFails(t *testing.T) {
	gateway := NewEmailGateway()

	for i := 0; i < 3; i++ {
		err := gateway.Notify(context.Background(), testEvent())
		assert.ErrorIs(t, err, ErrEmailUnavailable)
	}
}

func TestLogGatewaySucceeds(t *testing.T) {
	assert.NoError(t, NewLogGateway().Notify(context.Background(), testEvent()))
}

func TestKafkaGatewayNotify(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	gateway := newKafkaGateway(producer, "")
	assert.Equal(t, DefaultPriceTopic, gateway.topic)

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var event PriceChangeEvent
		if err := json.Unmarshal(val, &event); err != nil {
			return err
		}
		if event.PizzaID != 7 || !event.NewPrice.Equal(decimal.RequireFromString("11.5")) {
			return errors.New("unexpected event payload: " + string(val))
		}
		return nil
	})

	require.NoError(t, gateway.Notify(context.Background(), testEvent()))
	require.NoError(t, gateway.Close())
}

func TestKafkaGatewayNotifyError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	gateway := newKafkaGateway(producer, "prices")

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := gateway.Notify(context.Background(), testEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, gateway.Close())
}

func TestKafkaGatewayCanceledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	gateway := newKafkaGateway(producer, "prices")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, gateway.Notify(ctx, testEvent()), context.Canceled)
	require.NoError(t, gateway.Close())
}
