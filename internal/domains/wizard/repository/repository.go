package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelboard/config"
	"hotelboard/infras/otel"
	"hotelboard/internal/domains/wizard/model"
	"hotelboard/shared"
	"hotelboard/shared/cache"
	"hotelboard/shared/constant"
)

const (
	keySelector = "wizard:selector"

	defaultStateTTLSeconds = 1800
)

// Wizard keeps selector wizards in redis between opening and acting.
type Wizard interface {
	Save(ctx context.Context, selector model.Selector) error
	Get(ctx context.Context, id string) (model.Selector, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	ttl   int
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Wizard {
	ttl := cfg.Wizard.StateTTLSeconds
	if ttl <= 0 {
		ttl = defaultStateTTLSeconds
	}

	return &repositoryImpl{
		cache: cache,
		ttl:   ttl,
		otel:  otel,
	}
}

func (r *repositoryImpl) Save(ctx context.Context, selector model.Selector) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wizard.Save")
	defer scope.End()

	if err := r.cache.Save(ctx, shared.BuildCacheKey(keySelector, selector.ID), selector, r.ttl); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to save wizard: %w", err)
	}

	return nil
}

// Get returns the zero Selector when id is unknown or expired.
func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Selector, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wizard.Get")
	defer scope.End()

	var selector model.Selector

	err := r.cache.Get(ctx, shared.BuildCacheKey(keySelector, id), &selector)
	if cache.IsMiss(err) {
		return model.Selector{}, nil
	}

	if err != nil {
		scope.TraceError(err)

		return model.Selector{}, fmt.Errorf("failed to get wizard: %w", err)
	}

	return selector, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".wizard.Delete")
	defer scope.End()

	if err := r.cache.Delete(ctx, shared.BuildCacheKey(keySelector, id)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to delete wizard: %w", err)
	}

	return nil
}
