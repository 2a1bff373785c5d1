package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelboard/infras/otel"
	"hotelboard/infras/postgres"
	"hotelboard/internal/domains/reservation/model"
	"hotelboard/shared/constant"
	gDto "hotelboard/shared/dto"
	gRepo "hotelboard/shared/repository"
	"time"
)

type Reservation interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ReservationLine, error)
	FindSpanning(ctx context.Context, start, end time.Time) ([]model.ReservationLine, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ReservationLine]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ReservationLine](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindSpanning returns the lines of open reservations that check in no later
// than start and check out no earlier than end, ordered by reservation id.
func (r *repositoryImpl) FindSpanning(ctx context.Context, start, end time.Time) ([]model.ReservationLine, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindSpanning")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"window.start": start,
		"window.end":   end,
	})

	lines, err := r.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldID + "," + model.FieldLineID,
		SortDir: gDto.SortDirAsc,
	}, SpanningFilter(start, end))
	if err != nil {
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	return lines, nil
}

// SpanningFilter selects reservations covering [start, end] that are not closed.
func SpanningFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "window_start",
				Field:    model.FieldCheckin,
				Operator: gDto.FilterOperatorLessEq,
				Value:    start,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_end",
				Field:    model.FieldCheckout,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    end,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "closed_state",
				Field:    model.FieldState,
				Operator: gDto.FilterOperatorNotIn,
				Value:    model.ClosedStates,
				Table:    model.TableName,
			},
		},
	}
}
