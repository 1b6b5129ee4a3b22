package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/elizhang33/room-reservations-api/internal/handlers/inventory"
	"github.com/elizhang33/room-reservations-api/internal/handlers/reservation"
)

type DomainHandlers struct {
	Inventory   inventory.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
