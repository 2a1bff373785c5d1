package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotelboard/infras/otel"
	"hotelboard/infras/postgres"
	"hotelboard/internal/domains/attachment/model"
	gDto "hotelboard/shared/dto"
	gRepo "hotelboard/shared/repository"
)

type Attachment interface {
	Insert(ctx context.Context, model model.Attachment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Attachment, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Attachment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Attachment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Attachment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
