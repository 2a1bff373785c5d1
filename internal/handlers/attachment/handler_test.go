package attachment_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelboard/infras/otel/mocks"
	attachmentMocks "hotelboard/internal/domains/attachment/mocks"
	"hotelboard/internal/domains/attachment/model/dto"
	"hotelboard/internal/handlers/attachment"
	"hotelboard/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *attachmentMocks.MockAttachmentService) {
	ctrl := gomock.NewController(t)
	svc := attachmentMocks.NewMockAttachmentService(ctrl)

	handler := attachment.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func uploadRequest(t *testing.T, contentType string, data []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if contentType != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="legend"`)
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/attachments/summary_convention.png", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestHandler_GetAttachment(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			GetByName(gomock.Any(), "summary_convention.png").
			Return(dto.AttachmentResponse{ID: "a-1", Name: "summary_convention.png"}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attachments/summary_convention.png", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"a-1"`)
	})

	t.Run("missing", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().GetByName(gomock.Any(), "nope.png").Return(dto.AttachmentResponse{}, failure.NotFound("attachment not found"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attachments/nope.png", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_UploadAttachment(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nlegend")

	t.Run("stores png", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Upload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.UploadAttachmentRequest) (dto.AttachmentResponse, error) {
				assert.Equal(t, "summary_convention.png", req.Name)
				assert.Equal(t, png, req.Data)
				assert.Equal(t, "image/png", req.ContentType())

				return dto.AttachmentResponse{ID: "a-1", Name: req.Name}, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, "image/png", png))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, "", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unsupported type", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, "application/pdf", []byte("%PDF")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
