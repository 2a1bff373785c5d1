package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Wizard=MockWizardService

import (
	"context"
	"fmt"
	"time"

	"hotelboard/config"
	"hotelboard/infras/otel"
	eventService "hotelboard/internal/domains/event/service"
	roomModel "hotelboard/internal/domains/room/model"
	roomRepo "hotelboard/internal/domains/room/repository"
	"hotelboard/internal/domains/wizard/model"
	"hotelboard/internal/domains/wizard/model/dto"
	"hotelboard/internal/domains/wizard/repository"
	"hotelboard/shared"
	"hotelboard/shared/constant"
	"hotelboard/shared/failure"
	"hotelboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Wizard interface {
	CreateSelector(ctx context.Context, req dto.CreateSelectorRequest) (dto.SelectorResponse, error)
	GetSelector(ctx context.Context, id string) (dto.SelectorResponse, error)
	Act(ctx context.Context, id, action string) (dto.WindowActionResponse, error)
	QuickReservation(ctx context.Context, req dto.QuickReservationRequest) (dto.QuickReservationResponse, error)
}

type serviceImpl struct {
	repo      repository.Wizard
	rooms     roomRepo.Room
	events    eventService.Publisher
	converter timezone.Converter
	offset    time.Duration
	otel      otel.Otel
}

func New(repo repository.Wizard, rooms roomRepo.Room, events eventService.Publisher, converter timezone.Converter, cfg *config.Config, otel otel.Otel) Wizard {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		events:    events,
		converter: converter,
		offset:    time.Duration(cfg.Wizard.CheckinOffsetMinutes) * time.Minute,
		otel:      otel,
	}
}

func (s *serviceImpl) CreateSelector(ctx context.Context, req dto.CreateSelectorRequest) (res dto.SelectorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSelector")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	selector, err := SelectorDefaults(s.converter, shared.SessionTimezone(ctx), s.offset, req.Context)
	if err != nil {
		return res, err
	}

	if selector.CheckIn == constant.Empty {
		return res, failure.BadRequestFromString("check_in is required") // nolint:wrapcheck
	}

	if selector.RoomID == 0 {
		return res, failure.BadRequestFromString("room_id is required") // nolint:wrapcheck
	}

	if err = s.roomExists(ctx, selector.RoomID); err != nil {
		return res, err
	}

	selector.ID = uuid.NewString()
	selector.CreatedAt = s.converter.Now().UTC()

	if err = s.repo.Save(ctx, selector); err != nil {
		log.Error().Err(err).Msg("failed to save wizard")

		return res, fmt.Errorf("failed to save wizard: %w", err)
	}

	res.FromModel(selector)

	return res, nil
}

func (s *serviceImpl) GetSelector(ctx context.Context, id string) (res dto.SelectorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSelector")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	selector, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(selector)

	return res, nil
}

// Act issues the descriptor for action and discards the wizard.
func (s *serviceImpl) Act(ctx context.Context, id, action string) (res dto.WindowActionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Act")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	selector, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.WindowAction, err = Describe(action, selector)
	if err != nil {
		return res, err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete wizard")

		return res, fmt.Errorf("failed to delete wizard: %w", err)
	}

	if err := s.events.WizardActed(ctx, selector, action, res.WindowAction); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("wizard acted event not published")
	}

	return res, nil
}

func (s *serviceImpl) QuickReservation(ctx context.Context, req dto.QuickReservationRequest) (res dto.QuickReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuickReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defaults, err := QuickReservationDefaults(req.Context)
	if err != nil {
		return res, err
	}

	if defaults.RoomID != 0 {
		if err = s.roomExists(ctx, defaults.RoomID); err != nil {
			return res, err
		}
	}

	res.FromModel(defaults)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Selector, error) {
	selector, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get wizard")

		return selector, fmt.Errorf("failed to get wizard: %w", err)
	}

	if selector.ID == constant.Empty {
		return selector, failure.NotFound("wizard not found") // nolint:wrapcheck
	}

	return selector, nil
}

func (s *serviceImpl) roomExists(ctx context.Context, id int64) error {
	exist, err := s.rooms.Exist(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to check room")

		return fmt.Errorf("failed to check room: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	return nil
}
