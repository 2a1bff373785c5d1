package kafka

import (
	"context"

	"hotelboard/config"
	"hotelboard/infras/kafka"
	"hotelboard/infras/otel"
	eventModel "hotelboard/internal/domains/event/model"
	roomService "hotelboard/internal/domains/room/service"
	"hotelboard/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer keeps cached board reads in step with upstream room writes.
type Consumer struct {
	Config *config.Config
	Client kafka.Client
	Rooms  roomService.Room
	Otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, rooms roomService.Room, otel otel.Otel) *Consumer {
	return &Consumer{
		Config: cfg,
		Client: client,
		Rooms:  rooms,
		Otel:   otel,
	}
}

// Start blocks consuming room changes until ctx is done. It returns at once
// when no brokers are configured.
func (c *Consumer) Start(ctx context.Context) {
	if !c.Client.Enabled() {
		return
	}

	topic := c.Config.Kafka.Topics.RoomChanges

	log.Info().Str("topic", topic).Msg("Starting room changes consumer.")

	c.Client.Consume(ctx, c.Config.Kafka.ConsumerGroup, topic, c.HandleRoomChanged)
}

func (c *Consumer) HandleRoomChanged(ctx context.Context, message kafkaGo.Message) {
	ctx, scope := c.Otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleRoomChanged")
	defer scope.End()

	change, err := kafka.Decode[eventModel.RoomChanged](message)
	if err != nil {
		scope.TraceError(err)

		return
	}

	if change.RoomID == 0 {
		log.Warn().Str("key", string(message.Key)).Msg("room change without room id skipped")

		return
	}

	scope.SetAttribute("room_id", change.RoomID)

	if err = c.Rooms.Invalidate(ctx, change.RoomID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("roomID", change.RoomID).Str("operation", change.Operation).Msg("failed to invalidate room caches")

		return
	}

	log.Info().Int64("roomID", change.RoomID).Str("operation", change.Operation).Msg("room caches invalidated")
}
