package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelboard/config"
	"hotelboard/infras/otel/mocks"
	s3Mocks "hotelboard/infras/s3/mocks"
	attachmentMocks "hotelboard/internal/domains/attachment/mocks"
	"hotelboard/internal/domains/attachment/model"
	"hotelboard/internal/domains/attachment/model/dto"
	"hotelboard/internal/domains/attachment/service"
	cacheMocks "hotelboard/shared/cache/mocks"
	"hotelboard/shared/failure"
)

func newUploadRequest() dto.UploadAttachmentRequest {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "image/png")

	return dto.UploadAttachmentRequest{
		Name: "summary_convention.png",
		File: &multipart.FileHeader{Filename: "legend.png", Header: header, Size: 11},
		Data: []byte("Hello World"),
	}
}

func TestAttachmentService_ImageByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attachmentMocks.NewMockAttachment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	tests := []struct {
		name      string
		setupMock func()
		wantImage string
		wantErr   bool
	}{
		{
			name: "inline content preferred",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "attachment:name:summary_convention.png", gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Attachment{ID: "a-1", Name: "summary_convention.png", Datas: "data:image/png;base64,AA==", URL: "https://cdn/x.png"}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantImage: "data:image/png;base64,AA==",
		},
		{
			name: "url when no inline content",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Attachment{ID: "a-1", Name: "summary_convention.png", URL: "https://cdn/x.png"}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantImage: "https://cdn/x.png",
		},
		{
			name: "missing attachment yields empty image",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Attachment{}, nil)
			},
			wantImage: "",
		},
		{
			name: "repository error propagates",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Attachment{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			image, err := svc.ImageByName(context.Background(), "summary_convention.png")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantImage, image)
		})
	}
}

func TestAttachmentService_GetByName_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attachmentMocks.NewMockAttachment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel(), s3Mocks.NewMockS3(ctrl))

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Attachment{}, nil)

	_, err := svc.GetByName(context.Background(), "missing.png")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestAttachmentService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attachmentMocks.NewMockAttachment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Summary.AttachmentsFolder = "attachments"

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "new attachment is inserted",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Attachment{}, nil)

				mockS3.EXPECT().
					Upload(gomock.Any(), "attachments", gomock.Any(), "image/png", []byte("Hello World")).
					DoAndReturn(func(_ context.Context, _, fileName, _ string, _ []byte) (string, error) {
						assert.True(t, strings.HasSuffix(fileName, ".png"))

						return "https://cdn/attachments/" + fileName, nil
					})

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Attachment) error {
						assert.Equal(t, "summary_convention.png", m.Name)
						assert.Equal(t, "data:image/png;base64,SGVsbG8gV29ybGQ=", m.Datas)
						assert.Equal(t, int64(11), m.FileSize)

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), "attachment:name:summary_convention.png").
					Return(nil)
			},
		},
		{
			name: "existing attachment is replaced and old object removed",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Attachment{ID: "a-1", Name: "summary_convention.png", URL: "https://cdn/attachments/old.png"}, nil)

				mockS3.EXPECT().
					Upload(gomock.Any(), "attachments", gomock.Any(), "image/png", gomock.Any()).
					Return("https://cdn/attachments/new.png", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					ObjectNameFromURL("https://cdn/attachments/old.png").
					Return("old.png")

				mockS3.EXPECT().
					Delete(gomock.Any(), "attachments", "old.png").
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantID: "a-1",
		},
		{
			name: "upload failure stops before storing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Attachment{}, nil)

				mockS3.EXPECT().
					Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 down"))
			},
			wantErr: true,
		},
		{
			name: "store failure removes uploaded object",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Attachment{}, nil)

				mockS3.EXPECT().
					Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn/attachments/new.png", nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))

				mockS3.EXPECT().
					Delete(gomock.Any(), "attachments", gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Upload(context.Background(), newUploadRequest())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "summary_convention.png", res.Name)
			assert.Equal(t, "image/png", res.Mimetype)

			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, res.ID)
			}
		})
	}
}
