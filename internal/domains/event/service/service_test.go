package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelboard/config"
	"hotelboard/infras/kafka"
	kafkaMocks "hotelboard/infras/kafka/mocks"
	otelMocks "hotelboard/infras/otel/mocks"
	"hotelboard/internal/domains/event/model"
	"hotelboard/internal/domains/event/service"
	summaryModel "hotelboard/internal/domains/summary/model"
	wizardModel "hotelboard/internal/domains/wizard/model"
	"hotelboard/shared/timezone"
)

var publishedAt = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func newPublisher(t *testing.T) (service.Publisher, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topics.BoardEvents = "board-events"

	converter := timezone.NewConverter("UTC").WithClock(func() time.Time { return publishedAt })

	return service.New(client, cfg, converter, otelMocks.NewOtel()), client
}

func TestPublisher_SummaryComputed(t *testing.T) {
	record := summaryModel.Record{
		ID:       "abc",
		DateFrom: "2024-01-01 00:00:00",
		DateTo:   "2024-01-03 00:00:00",
		Timezone: "America/Bogota",
	}

	t.Run("publishes envelope keyed by summary id", func(t *testing.T) {
		publisher, client := newPublisher(t)

		client.EXPECT().Enabled().Return(true)
		client.EXPECT().
			SendMessages(gomock.Any(), "board-events", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				require.Len(t, messages, 1)
				assert.Equal(t, "abc", messages[0].Key)

				event, ok := messages[0].Value.(model.Event)
				require.True(t, ok)
				assert.Equal(t, model.TypeSummaryComputed, event.Type)
				assert.Equal(t, publishedAt, event.OccurredAt)
				assert.Nil(t, event.Wizard)
				assert.Equal(t, &model.SummaryComputed{
					ID:       "abc",
					DateFrom: "2024-01-01 00:00:00",
					DateTo:   "2024-01-03 00:00:00",
					Timezone: "America/Bogota",
				}, event.Summary)

				return nil
			})

		assert.NoError(t, publisher.SummaryComputed(context.Background(), record))
	})

	t.Run("disabled client sends nothing", func(t *testing.T) {
		publisher, client := newPublisher(t)

		client.EXPECT().Enabled().Return(false)

		assert.NoError(t, publisher.SummaryComputed(context.Background(), record))
	})

	t.Run("send failure is returned", func(t *testing.T) {
		publisher, client := newPublisher(t)

		client.EXPECT().Enabled().Return(true)
		client.EXPECT().SendMessages(gomock.Any(), "board-events", gomock.Any()).Return(errors.New("broker down"))

		assert.Error(t, publisher.SummaryComputed(context.Background(), record))
	})
}

func TestPublisher_WizardActed(t *testing.T) {
	publisher, client := newPublisher(t)

	selector := wizardModel.Selector{ID: "w-1", CheckIn: "2024-01-15 15:03:00", RoomID: 4}
	window := wizardModel.WindowAction{ResModel: wizardModel.ResModelFolio}

	client.EXPECT().Enabled().Return(true)
	client.EXPECT().
		SendMessages(gomock.Any(), "board-events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			event, ok := messages[0].Value.(model.Event)
			require.True(t, ok)

			assert.Equal(t, "w-1", messages[0].Key)
			assert.Equal(t, model.TypeWizardActed, event.Type)
			assert.Equal(t, &model.WizardActed{
				ID:       "w-1",
				Action:   wizardModel.ActionNewCheckin,
				ResModel: wizardModel.ResModelFolio,
				RoomID:   4,
				CheckIn:  "2024-01-15 15:03:00",
			}, event.Wizard)

			return nil
		})

	assert.NoError(t, publisher.WizardActed(context.Background(), selector, wizardModel.ActionNewCheckin, window))
}
