package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelboard/config"
	"hotelboard/infras/otel/mocks"
	"hotelboard/internal/domains/summary/model"
	"hotelboard/internal/domains/summary/repository"
	"hotelboard/shared/cache"
	cacheMocks "hotelboard/shared/cache/mocks"
)

func TestSummary_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Summary.RecordTTLSeconds = 60

	repo := repository.New(redis, cfg, mocks.NewOtel())
	record := model.Record{ID: "abc", DateFrom: "2024-01-01 00:00:00"}

	redis.EXPECT().Save(gomock.Any(), "summary:record:abc", record, 60).Return(nil)
	require.NoError(t, repo.Save(context.Background(), record))

	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	assert.Error(t, repo.Save(context.Background(), record))
}

func TestSummary_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(redis *cacheMocks.MockRedisCache)
		want      model.Record
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), "summary:record:abc", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Record) = model.Record{ID: "abc"}

						return nil
					})
			},
			want: model.Record{ID: "abc"},
		},
		{
			name: "expired",
			setupMock: func(redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().
					Get(gomock.Any(), "summary:record:abc", gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
			want: model.Record{},
		},
		{
			name: "redis error",
			setupMock: func(redis *cacheMocks.MockRedisCache) {
				redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(redis)

			repo := repository.New(redis, &config.Config{}, mocks.NewOtel())

			got, err := repo.Get(context.Background(), "abc")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
