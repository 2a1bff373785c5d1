package wizard

import (
	"net/http"

	"hotelboard/infras/otel"
	"hotelboard/internal/domains/wizard/model/dto"
	"hotelboard/internal/domains/wizard/service"
	"hotelboard/shared/constant"
	"hotelboard/shared/validator"
	"hotelboard/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wizard
	otel    otel.Otel
}

func New(service service.Wizard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wizards", func(routerGroup chi.Router) {
		routerGroup.Post("/selector", handler.CreateSelector)
		routerGroup.Get("/selector/{id}", handler.GetSelector)
		routerGroup.Post("/selector/{id}/{action}", handler.Act)
		routerGroup.Post("/quick-reservation", handler.QuickReservation)
	})
}

// CreateSelector opens the quick action wizard for a board cell.
// @Summary Open a selector wizard
// @Description The context date is a local time in the session zone; check_in is stored in UTC a few minutes later.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param X-Timezone header string false "Session timezone, e.g. America/Bogota"
// @Param request body dto.CreateSelectorRequest true "Cell context"
// @Success 201 {object} response.Data[dto.SelectorResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/selector [post]
func (handler *Handler) CreateSelector(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSelector")
	defer scope.End()

	var req dto.CreateSelectorRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	selector, err := handler.service.CreateSelector(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create selector wizard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, selector)
}

// GetSelector retrieves an open wizard.
// @Summary Get a selector wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Success 200 {object} response.Data[dto.SelectorResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/selector/{id} [get]
func (handler *Handler) GetSelector(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSelector")
	defer scope.End()

	selector, err := handler.service.GetSelector(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get selector wizard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, selector)
}

// Act returns the form the client should open for the chosen action.
// @Summary Run a selector wizard action
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard ID"
// @Param action path string true "Action" Enums(new_reservation, new_checkin, room_blocking, housekeeping)
// @Success 200 {object} response.Data[dto.WindowActionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/selector/{id}/{action} [post]
func (handler *Handler) Act(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Act")
	defer scope.End()

	action := chi.URLParam(r, constant.RequestParamAction)
	scope.SetAttribute("wizard.action", action)

	descriptor, err := handler.service.Act(ctx, chi.URLParam(r, constant.RequestParamID), action)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", action).Msg("failed to run wizard action")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, descriptor)
}

// QuickReservation resolves the defaults of a quick room reservation form.
// @Summary Quick reservation defaults
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body dto.QuickReservationRequest true "Cell context"
// @Success 200 {object} response.Data[dto.QuickReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/wizards/quick-reservation [post]
func (handler *Handler) QuickReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuickReservation")
	defer scope.End()

	var req dto.QuickReservationRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	defaults, err := handler.service.QuickReservation(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve quick reservation defaults")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, defaults)
}
