package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelboard/config"
	"hotelboard/infras/kafka"
	"hotelboard/infras/otel"
	"hotelboard/internal/domains/event/model"
	summaryModel "hotelboard/internal/domains/summary/model"
	wizardModel "hotelboard/internal/domains/wizard/model"
	"hotelboard/shared/constant"
	"hotelboard/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Publisher announces board activity to downstream consumers. Callers treat
// a failed publish as non-fatal.
type Publisher interface {
	SummaryComputed(ctx context.Context, record summaryModel.Record) error
	WizardActed(ctx context.Context, selector wizardModel.Selector, action string, window wizardModel.WindowAction) error
}

type publisherImpl struct {
	client    kafka.Client
	topic     string
	converter timezone.Converter
	otel      otel.Otel
}

func New(client kafka.Client, cfg *config.Config, converter timezone.Converter, otel otel.Otel) Publisher {
	return &publisherImpl{
		client:    client,
		topic:     cfg.Kafka.Topics.BoardEvents,
		converter: converter,
		otel:      otel,
	}
}

func (p *publisherImpl) SummaryComputed(ctx context.Context, record summaryModel.Record) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SummaryComputed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return p.publish(ctx, record.ID, model.Event{
		Type: model.TypeSummaryComputed,
		Summary: &model.SummaryComputed{
			ID:       record.ID,
			DateFrom: record.DateFrom,
			DateTo:   record.DateTo,
			Timezone: record.Timezone,
		},
	})
}

func (p *publisherImpl) WizardActed(ctx context.Context, selector wizardModel.Selector, action string, window wizardModel.WindowAction) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WizardActed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return p.publish(ctx, selector.ID, model.Event{
		Type: model.TypeWizardActed,
		Wizard: &model.WizardActed{
			ID:       selector.ID,
			Action:   action,
			ResModel: window.ResModel,
			RoomID:   selector.RoomID,
			CheckIn:  selector.CheckIn,
		},
	})
}

func (p *publisherImpl) publish(ctx context.Context, key string, event model.Event) error {
	if !p.client.Enabled() {
		return nil
	}

	event.OccurredAt = p.converter.Now().UTC()

	if err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: key, Value: event}); err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("key", key).Msg("failed to publish board event")

		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	return nil
}
