package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelboard/config"
	"hotelboard/infras/otel"
	"hotelboard/internal/domains/summary/model"
	"hotelboard/shared"
	"hotelboard/shared/cache"
	"hotelboard/shared/constant"
)

const (
	keyRecord = "summary:record"
)

// Summary keeps summary records in redis until they expire.
type Summary interface {
	Save(ctx context.Context, record model.Record) error
	Get(ctx context.Context, id string) (model.Record, error)
}

type repositoryImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Summary {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (r *repositoryImpl) Save(ctx context.Context, record model.Record) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".summary.Save")
	defer scope.End()

	err := r.cache.Save(ctx, shared.BuildCacheKey(keyRecord, record.ID), record, r.cfg.Summary.RecordTTLSeconds)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to save summary record: %w", err)
	}

	return nil
}

// Get returns the zero Record when id is unknown or expired.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Record, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".summary.Get")
	defer scope.End()

	var record model.Record

	err := r.cache.Get(ctx, shared.BuildCacheKey(keyRecord, id), &record)
	if cache.IsMiss(err) {
		return model.Record{}, nil
	}

	if err != nil {
		scope.TraceError(err)

		return model.Record{}, fmt.Errorf("failed to get summary record: %w", err)
	}

	return record, nil
}
