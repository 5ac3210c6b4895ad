package event_test

import (
	"context"
	"errors"
	"testing"
	"tripdesk/config"
	"tripdesk/infras/kafka"
	kafkaMocks "tripdesk/infras/kafka/mocks"
	"tripdesk/infras/otel/mocks"
	"tripdesk/shared/event"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic.Events = "tripdesk.events"

	publisher := event.NewPublisher(mockClient, cfg, mocks.NewOtel())

	captured := event.New(event.TypePaymentCaptured, "b-1", "ops-1", map[string]any{"amount": 50000})

	tests := []struct {
		name      string
		setupMock func()
	}{
		{
			name: "message keyed by aggregate",
			setupMock: func() {
				mockClient.EXPECT().
					SendMessages(gomock.Any(), "tripdesk.events", kafka.Message{Key: "b-1", Value: captured}).
					Return(nil)
			},
		},
		{
			name: "broker failure is swallowed",
			setupMock: func() {
				mockClient.EXPECT().
					SendMessages(gomock.Any(), "tripdesk.events", gomock.Any()).
					Return(errors.New("broker down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			assert.NotPanics(t, func() {
				publisher.Publish(context.Background(), captured)
			})
		})
	}
}

func TestPublisher_DisabledSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	publisher := event.NewPublisher(mockClient, &config.Config{}, mocks.NewOtel())

	publisher.Publish(context.Background(), event.New(event.TypeQuotationSent, "q-1", "sales-1", nil))
}

func TestNew(t *testing.T) {
	evt := event.New(event.TypeApprovalDecided, "a-1", "manager-1", nil)

	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, event.TypeApprovalDecided, evt.Type)
	assert.Equal(t, "a-1", evt.AggregateID)
	assert.False(t, evt.OccurredAt.IsZero())
}
