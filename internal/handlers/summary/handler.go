package summary

import (
	"net/http"

	"hotelboard/infras/otel"
	"hotelboard/internal/domains/summary/model/dto"
	"hotelboard/internal/domains/summary/service"
	"hotelboard/shared/constant"
	"hotelboard/shared/validator"
	"hotelboard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Summary
	otel    otel.Otel
}

func New(service service.Summary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/summaries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSummary)
		routerGroup.Get("/defaults", handler.GetDefaults)
		routerGroup.Get("/{id}", handler.GetSummary)
		routerGroup.Patch("/{id}", handler.UpdateSummary)
	})
}

// CreateSummary opens a room availability board.
// @Summary Create a room summary
// @Description Build the room by day availability grid. Missing dates default to now and now plus the configured range.
// @Tags Summary
// @Accept json
// @Produce json
// @Param X-Timezone header string false "Session timezone, e.g. America/Bogota"
// @Param request body dto.CreateSummaryRequest true "Date range (UTC, 2006-01-02 15:04:05)"
// @Success 201 {object} response.Data[dto.SummaryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/summaries [post]
func (handler *Handler) CreateSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSummary")
	defer scope.End()

	var req dto.CreateSummaryRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	summary, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Summary created successfully")

	response.WithJSON(w, http.StatusCreated, summary)
}

// GetDefaults returns the values a new board opens with.
// @Summary Get summary defaults
// @Tags Summary
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryDefaultsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/summaries/defaults [get]
func (handler *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDefaults")
	defer scope.End()

	defaults, err := handler.service.Defaults(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get summary defaults")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, defaults)
}

// GetSummary retrieves a stored board.
// @Summary Get a room summary
// @Tags Summary
// @Produce json
// @Param id path string true "Summary ID"
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/summaries/{id} [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// UpdateSummary changes the board dates and rebuilds the grid.
// @Summary Update a room summary
// @Description Recompute the grid after date_from or date_to changes. An inverted range is rejected and the stored board is kept.
// @Tags Summary
// @Accept json
// @Produce json
// @Param X-Timezone header string false "Session timezone, e.g. America/Bogota"
// @Param id path string true "Summary ID"
// @Param request body dto.UpdateSummaryRequest true "New date range"
// @Success 200 {object} response.Data[dto.SummaryResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/summaries/{id} [patch]
func (handler *Handler) UpdateSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSummary")
	defer scope.End()

	var req dto.UpdateSummaryRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	summary, err := handler.service.Recompute(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Summary recomputed successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
