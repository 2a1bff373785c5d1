package attachment

import (
	"fmt"
	"io"
	"net/http"

	"hotelboard/infras/otel"
	"hotelboard/internal/domains/attachment/model/dto"
	"hotelboard/internal/domains/attachment/service"
	"hotelboard/shared/constant"
	"hotelboard/shared/failure"
	"hotelboard/shared/validator"
	"hotelboard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Attachment
	otel    otel.Otel
}

func New(service service.Attachment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/attachments", func(routerGroup chi.Router) {
		routerGroup.Get("/{name}", handler.GetAttachment)
		routerGroup.Put("/{name}", handler.UploadAttachment)
	})
}

// GetAttachment retrieves an attachment by name.
// @Summary Get an attachment
// @Tags Attachment
// @Produce json
// @Param name path string true "Attachment name, e.g. summary_convention.png"
// @Success 200 {object} response.Data[dto.AttachmentResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/attachments/{name} [get]
func (handler *Handler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAttachment")
	defer scope.End()

	attachment, err := handler.service.GetByName(ctx, chi.URLParam(r, constant.RequestParamName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get attachment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, attachment)
}

// UploadAttachment creates or replaces an attachment such as the board legend image.
// @Summary Upload an attachment
// @Tags Attachment
// @Accept multipart/form-data
// @Produce json
// @Param name path string true "Attachment name"
// @Param file formData file true "Image file, at most 2 MB"
// @Success 200 {object} response.Data[dto.AttachmentResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/attachments/{name} [put]
// @Security ApiKeyAuth
func (handler *Handler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadAttachment")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UploadAttachmentRequest{
		Name: chi.URLParam(r, constant.RequestParamName),
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.File = fileHeader

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	req.Data, err = io.ReadAll(file)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, fmt.Errorf("failed to read uploaded file: %w", err))

		return
	}

	attachment, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload attachment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Attachment uploaded successfully")

	response.WithJSON(w, http.StatusOK, attachment)
}
