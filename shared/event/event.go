package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"time"
	"tripdesk/config"
	"tripdesk/infras/kafka"
	"tripdesk/infras/otel"
	"tripdesk/shared/constant"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeQuotationSent     = "quotation.sent"
	TypeQuotationAccepted = "quotation.accepted"
	TypeQuotationRejected = "quotation.rejected"
	TypeApprovalRequested = "approval.requested"
	TypeApprovalDecided   = "approval.decided"
	TypePaymentCaptured   = "payment.captured"
	TypePaymentRefunded   = "payment.refunded"
)

// Event is the envelope written to the lifecycle topic. AggregateID is also the message key.
type Event struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	Actor       string    `json:"actor"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload"`
}

func New(eventType, aggregateID, actor string, payload any) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		AggregateID: aggregateID,
		Actor:       actor,
		OccurredAt:  timezone.Now(),
		Payload:     payload,
	}
}

// Publisher emits lifecycle events after the owning transaction committed.
// Publish never fails the caller; delivery problems are logged.
type Publisher interface {
	Publish(ctx context.Context, events ...Event)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otl otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otl,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, events ...Event) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	if !p.cfg.Kafka.Enable || len(events) == 0 {
		return
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		messages = append(messages, kafka.Message{Key: evt.AggregateID, Value: evt})
	}

	err := p.client.SendMessages(context.WithoutCancel(ctx), p.cfg.Kafka.Topic.Events, messages...)
	if err != nil {
		scope.TraceError(err)

		for _, evt := range events {
			log.Error().Err(err).Str("type", evt.Type).Str("aggregate_id", evt.AggregateID).Msg("failed to publish event")
		}

		return
	}

	scope.AddEvent("events published")
}
