package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelboard/infras/otel"
	"hotelboard/infras/postgres"
	"hotelboard/internal/domains/room/model"
	"hotelboard/shared/constant"
	gDto "hotelboard/shared/dto"
	gRepo "hotelboard/shared/repository"
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ListAll(ctx context.Context) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListAll returns every room, active or not, ordered by id.
func (r *repositoryImpl) ListAll(ctx context.Context) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAll")
	defer scope.End()

	return r.GetAll(ctx, gDto.QueryParams{ //nolint:wrapcheck
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
}
