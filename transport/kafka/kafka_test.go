package kafka_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	kafkaGo "github.com/segmentio/kafka-go"

	"hotelboard/config"
	kafkaMocks "hotelboard/infras/kafka/mocks"
	otelMocks "hotelboard/infras/otel/mocks"
	roomMocks "hotelboard/internal/domains/room/mocks"
	"hotelboard/transport/kafka"
)

func newConsumer(t *testing.T) (*kafka.Consumer, *kafkaMocks.MockClient, *roomMocks.MockRoomService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	rooms := roomMocks.NewMockRoomService(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "hotelboard"
	cfg.Kafka.Topics.RoomChanges = "room-changes"

	return kafka.New(cfg, client, rooms, otelMocks.NewOtel()), client, rooms
}

func TestConsumer_Start(t *testing.T) {
	t.Run("disabled client does not consume", func(t *testing.T) {
		consumer, client, _ := newConsumer(t)

		client.EXPECT().Enabled().Return(false)
		client.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		consumer.Start(context.Background())
	})

	t.Run("consumes room changes topic", func(t *testing.T) {
		consumer, client, _ := newConsumer(t)

		client.EXPECT().Enabled().Return(true)
		client.EXPECT().Consume(gomock.Any(), "hotelboard", "room-changes", gomock.Any())

		consumer.Start(context.Background())
	})
}

func TestConsumer_HandleRoomChanged(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		setupMock func(rooms *roomMocks.MockRoomService)
	}{
		{
			name:  "invalidates room",
			value: `{"room_id":7,"operation":"updated"}`,
			setupMock: func(rooms *roomMocks.MockRoomService) {
				rooms.EXPECT().Invalidate(gomock.Any(), int64(7)).Return(nil)
			},
		},
		{
			name:  "invalidation failure is absorbed",
			value: `{"room_id":7,"operation":"deleted"}`,
			setupMock: func(rooms *roomMocks.MockRoomService) {
				rooms.EXPECT().Invalidate(gomock.Any(), int64(7)).Return(errors.New("redis down"))
			},
		},
		{
			name:      "malformed payload skipped",
			value:     `not json`,
			setupMock: func(_ *roomMocks.MockRoomService) {},
		},
		{
			name:      "missing room id skipped",
			value:     `{"operation":"created"}`,
			setupMock: func(_ *roomMocks.MockRoomService) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, _, rooms := newConsumer(t)
			tt.setupMock(rooms)

			consumer.HandleRoomChanged(context.Background(), kafkaGo.Message{Key: []byte("7"), Value: []byte(tt.value)})
		})
	}
}
