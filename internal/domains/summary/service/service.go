package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Summary=MockSummaryService

import (
	"context"
	"fmt"

	"hotelboard/config"
	"hotelboard/infras/otel"
	attachmentService "hotelboard/internal/domains/attachment/service"
	eventService "hotelboard/internal/domains/event/service"
	"hotelboard/internal/domains/summary/model"
	"hotelboard/internal/domains/summary/model/dto"
	"hotelboard/internal/domains/summary/repository"
	"hotelboard/shared"
	"hotelboard/shared/constant"
	"hotelboard/shared/failure"
	"hotelboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Summary interface {
	Defaults(ctx context.Context) (dto.SummaryDefaultsResponse, error)
	Create(ctx context.Context, req dto.CreateSummaryRequest) (dto.SummaryResponse, error)
	Get(ctx context.Context, id string) (dto.SummaryResponse, error)
	Recompute(ctx context.Context, id string, req dto.UpdateSummaryRequest) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo        repository.Summary
	builder     *Builder
	attachments attachmentService.Attachment
	events      eventService.Publisher
	converter   timezone.Converter
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Summary,
	builder *Builder,
	attachments attachmentService.Attachment,
	events eventService.Publisher,
	converter timezone.Converter,
	cfg *config.Config,
	otel otel.Otel,
) Summary {
	return &serviceImpl{
		repo:        repo,
		builder:     builder,
		attachments: attachments,
		events:      events,
		converter:   converter,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Defaults(ctx context.Context) (res dto.SummaryDefaultsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Defaults")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.defaults(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSummaryRequest) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.defaults(ctx)
	if err != nil {
		return res, err
	}

	req.Apply(&record)
	record.ID = uuid.NewString()

	if err = s.compute(ctx, &record); err != nil {
		return res, err
	}

	if err = s.repo.Save(ctx, record); err != nil {
		log.Error().Err(err).Str("id", record.ID).Msg("failed to save summary")

		return res, fmt.Errorf("failed to save summary: %w", err)
	}

	s.announce(ctx, record)

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(record)

	return res, nil
}

// Recompute applies new dates to a stored summary and rebuilds its grid. The
// stored record is left untouched when validation or the build fails.
func (s *serviceImpl) Recompute(ctx context.Context, id string, req dto.UpdateSummaryRequest) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recompute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	req.Apply(&record)

	if err = s.compute(ctx, &record); err != nil {
		return res, err
	}

	if err = s.repo.Save(ctx, record); err != nil {
		log.Error().Err(err).Str("id", record.ID).Msg("failed to save summary")

		return res, fmt.Errorf("failed to save summary: %w", err)
	}

	s.announce(ctx, record)

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Record, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get summary")

		return record, fmt.Errorf("failed to get summary: %w", err)
	}

	if record.ID == constant.Empty {
		return record, failure.NotFound("summary not found") // nolint:wrapcheck
	}

	return record, nil
}

// defaults resolves a fresh record spanning DefaultRangeDays from the current
// moment. The clock is read once so both bounds share the same instant.
func (s *serviceImpl) defaults(ctx context.Context) (model.Record, error) {
	now := s.converter.Now().UTC()

	record := model.Record{
		DateFrom: timezone.FormatDateTime(now),
		DateTo:   timezone.FormatDateTime(now.AddDate(0, 0, s.cfg.Summary.DefaultRangeDays)),
	}

	image, err := s.attachments.ImageByName(ctx, s.cfg.Summary.ConventionImage)
	if err != nil {
		log.Error().Err(err).Msg("failed to load convention image")

		return record, fmt.Errorf("failed to load convention image: %w", err)
	}

	record.ConventionImage = image

	return record, nil
}

// compute validates the record range and replaces its grid wholesale.
func (s *serviceImpl) compute(ctx context.Context, record *model.Record) error {
	if err := validateRange(record.DateFrom, record.DateTo); err != nil {
		return err
	}

	tz := shared.SessionTimezone(ctx)

	grid, err := s.builder.Build(ctx, record.DateFrom, record.DateTo, tz)
	if err != nil {
		log.Error().Err(err).Str("date_from", record.DateFrom).Str("date_to", record.DateTo).Msg("failed to build summary")

		return err
	}

	header, rooms, err := dto.EncodeGrid(grid)
	if err != nil {
		return err //nolint:wrapcheck
	}

	record.Timezone = tz
	record.SummaryHeader = header
	record.RoomSummary = rooms
	record.ComputedAt = s.converter.Now().UTC()

	return nil
}

func (s *serviceImpl) announce(ctx context.Context, record model.Record) {
	if err := s.events.SummaryComputed(ctx, record); err != nil {
		log.Warn().Err(err).Str("id", record.ID).Msg("summary computed event not published")
	}
}

func validateRange(dateFrom, dateTo string) error {
	from, ok := timezone.ParseDateTime(dateFrom)
	if !ok {
		return failure.BadRequestFromString("date_from must be a date time formatted as 2006-01-02 15:04:05") // nolint:wrapcheck
	}

	to, ok := timezone.ParseDateTime(dateTo)
	if !ok {
		return failure.BadRequestFromString("date_to must be a date time formatted as 2006-01-02 15:04:05") // nolint:wrapcheck
	}

	if from.After(to) {
		return failure.InvalidDateRange
	}

	return nil
}
