package service

import (
	"context"
	"fmt"
	"time"

	"hotelboard/infras/otel"
	roomRepo "hotelboard/internal/domains/room/repository"
	"hotelboard/internal/domains/summary/model"
	"hotelboard/shared/constant"
	"hotelboard/shared/failure"
	"hotelboard/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Builder struct {
	rooms     roomRepo.Room
	resolver  *Resolver
	converter timezone.Converter
	otel      otel.Otel
}

func NewBuilder(rooms roomRepo.Room, resolver *Resolver, converter timezone.Converter, otel otel.Otel) *Builder {
	return &Builder{
		rooms:     rooms,
		resolver:  resolver,
		converter: converter,
		otel:      otel,
	}
}

// Build renders the board between two UTC dates for the session zone tz.
// Every room appears once, ordered by id, with one cell per day.
func (b *Builder) Build(ctx context.Context, dateFrom, dateTo, tz string) (grid model.Grid, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Build")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dates, err := b.Dates(dateFrom, dateTo, tz)
	if err != nil {
		return grid, err
	}

	scope.SetAttributes(map[string]any{
		"summary.days": len(dates),
		"summary.tz":   tz,
	})

	grid.Header = make([]string, 0, len(dates)+1)
	grid.Header = append(grid.Header, model.HeaderRooms)

	for _, date := range dates {
		day, _ := timezone.ParseDateTime(date)
		grid.Header = append(grid.Header, day.Format(model.HeaderDayLayout))
	}

	rooms, err := b.rooms.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return grid, fmt.Errorf("failed to list rooms: %w", err)
	}

	grid.Rooms = make([]model.RoomRow, len(rooms))
	for i, room := range rooms {
		grid.Rooms[i] = model.RoomRow{
			Name:  room.Name,
			Value: make([]model.Cell, 0, len(dates)),
		}
	}

	for _, date := range dates {
		day, err := b.resolver.LoadDay(ctx, date, tz)
		if err != nil {
			return model.Grid{}, err
		}

		for i, room := range rooms {
			grid.Rooms[i].Value = append(grid.Rooms[i].Value, b.resolver.Resolve(day, room))
		}
	}

	return grid, nil
}

// Dates lists the local board dates from ToLocal(dateFrom) to ToLocal(dateTo)
// inclusive, one day apart.
func (b *Builder) Dates(dateFrom, dateTo, tz string) ([]string, error) {
	from, err := b.localDate(dateFrom, tz)
	if err != nil {
		return nil, err
	}

	to, err := b.localDate(dateTo, tz)
	if err != nil {
		return nil, err
	}

	if from.After(to) {
		return nil, failure.InvalidDateRange
	}

	dates := []string{}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dates = append(dates, timezone.FormatDateTime(day))
	}

	return dates, nil
}

func (b *Builder) localDate(value, tz string) (local time.Time, err error) {
	naive, ok := timezone.ParseDateTime(value)
	if !ok {
		return local, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected format 2006-01-02 15:04:05", value)) // nolint:wrapcheck
	}

	local, err = b.converter.Shift(naive, tz)
	if err != nil {
		return local, failure.BadRequest(err) // nolint:wrapcheck
	}

	return local, nil
}
