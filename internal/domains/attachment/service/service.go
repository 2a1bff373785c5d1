package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Attachment=MockAttachmentService

import (
	"context"
	"fmt"
	"net/http"
	"path"

	"hotelboard/config"
	"hotelboard/infras/otel"
	"hotelboard/infras/s3"
	"hotelboard/internal/domains/attachment/model"
	"hotelboard/internal/domains/attachment/model/dto"
	"hotelboard/internal/domains/attachment/repository"
	"hotelboard/shared"
	"hotelboard/shared/cache"
	"hotelboard/shared/constant"
	"hotelboard/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAttachment = "attachment:name"
)

type Attachment interface {
	GetByName(ctx context.Context, name string) (dto.AttachmentResponse, error)
	ImageByName(ctx context.Context, name string) (string, error)
	Upload(ctx context.Context, req dto.UploadAttachmentRequest) (dto.AttachmentResponse, error)
}

type serviceImpl struct {
	repo  repository.Attachment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Attachment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Attachment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) GetByName(ctx context.Context, name string) (res dto.AttachmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByName")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAttachment, name)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for attachment")

		return res, nil
	}

	attachment, err := s.repo.Get(ctx, shared.FilterByID(name, model.FieldName, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to get attachment")

		return res, fmt.Errorf("failed to get attachment: %w", err)
	}

	if attachment.ID == constant.Empty {
		return res, failure.NotFound("attachment not found") // nolint:wrapcheck
	}

	res.FromModel(attachment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save attachment to cache")
		}
	}()

	return res, nil
}

// ImageByName returns the displayable content of the named attachment, or an
// empty string when no such attachment exists.
func (s *serviceImpl) ImageByName(ctx context.Context, name string) (image string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImageByName")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	attachment, err := s.GetByName(ctx, name)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			log.Warn().Str("name", name).Msg("attachment not found, leaving image empty")

			return constant.Empty, nil
		}

		return constant.Empty, err
	}

	return attachment.Image(), nil
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadAttachmentRequest) (res dto.AttachmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(req.Name, model.FieldName, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to check attachment existence")

		return res, fmt.Errorf("failed to check attachment existence: %w", err)
	}

	folder := s.cfg.Summary.AttachmentsFolder
	objectName := uuid.NewString() + path.Ext(req.File.Filename)

	url, err := s.s3.Upload(ctx, folder, objectName, req.ContentType(), req.Data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload attachment to S3")

		return res, fmt.Errorf("failed to upload attachment: %w", err)
	}

	stored := req.ToModel(url)

	if current.ID == constant.Empty {
		err = s.repo.Insert(ctx, stored)
	} else {
		stored.ID = current.ID
		err = s.repo.Update(ctx, req.ToUpdate(url), shared.FilterByID(current.ID, model.FieldID, model.TableName))
	}

	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to store attachment")

		if delErr := s.s3.Delete(ctx, folder, objectName); delErr != nil {
			log.Error().Err(delErr).Str("object", objectName).Msg("failed to remove orphaned object")
		}

		return res, fmt.Errorf("failed to store attachment: %w", err)
	}

	if current.URL != constant.Empty {
		if previous := s.s3.ObjectNameFromURL(current.URL); previous != constant.Empty {
			if delErr := s.s3.Delete(ctx, folder, previous); delErr != nil {
				log.Error().Err(delErr).Str("object", previous).Msg("failed to remove replaced object")
			}
		}
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetAttachment, req.Name)); err != nil {
		log.Error().Err(err).Msg("failed to delete attachment cache")
	}

	res.FromModel(stored)

	return res, nil
}
