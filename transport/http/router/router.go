package router

import (
	"hotelboard/internal/handlers/attachment"
	"hotelboard/internal/handlers/room"
	"hotelboard/internal/handlers/summary"
	"hotelboard/internal/handlers/wizard"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room       room.Handler
	Summary    summary.Handler
	Wizard     wizard.Handler
	Attachment attachment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Summary.Router(routerGroup)
		r.DomainHandlers.Wizard.Router(routerGroup)
		r.DomainHandlers.Attachment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
