package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelboard/infras/otel"
	"hotelboard/infras/postgres"
	"hotelboard/internal/domains/maintenance/model"
	"hotelboard/shared/constant"
	gDto "hotelboard/shared/dto"
	gRepo "hotelboard/shared/repository"
	"time"
)

type Maintenance interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Block, error)
	FindCovering(ctx context.Context, at time.Time) ([]model.Block, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Block]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Maintenance {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Block](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindCovering returns blocks with block_start_time <= at <= block_end_time.
// at is compared as stored, without any zone shift.
func (r *repositoryImpl) FindCovering(ctx context.Context, at time.Time) ([]model.Block, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance.FindCovering")
	defer scope.End()

	scope.SetAttribute("window.at", at)

	blocks, err := r.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}, CoveringFilter(at))
	if err != nil {
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	return blocks, nil
}

func CoveringFilter(at time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "block_start",
				Field:    model.FieldBlockStartTime,
				Operator: gDto.FilterOperatorLessEq,
				Value:    at,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "block_end",
				Field:    model.FieldBlockEndTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    at,
				Table:    model.TableName,
			},
		},
	}
}
