package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelboard/infras/otel"
	"hotelboard/infras/postgres"
	"hotelboard/internal/domains/folio/model"
	"hotelboard/shared/constant"
	gDto "hotelboard/shared/dto"
	gRepo "hotelboard/shared/repository"
	"time"
)

type Folio interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.FolioLine, error)
	FindSpanning(ctx context.Context, start, end time.Time) ([]model.FolioLine, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.FolioLine]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Folio {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FolioLine](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindSpanning returns folio lines of open folios whose stay covers [start, end].
func (r *repositoryImpl) FindSpanning(ctx context.Context, start, end time.Time) ([]model.FolioLine, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".folio_line.FindSpanning")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"window.start": start,
		"window.end":   end,
	})

	lines, err := r.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}, SpanningFilter(start, end))
	if err != nil {
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	return lines, nil
}

func SpanningFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "window_start",
				Field:    model.FieldCheckinDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    start,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_end",
				Field:    model.FieldCheckoutDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    end,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "closed_state",
				Field:    model.FieldState,
				Operator: gDto.FilterOperatorNotIn,
				Value:    model.ClosedStates,
				Table:    model.FolioTableName,
			},
		},
	}
}
