package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elizhang33/room-reservations-api/infras/otel"
	"github.com/elizhang33/room-reservations-api/internal/domains/inventory"
	"github.com/elizhang33/room-reservations-api/shared/constant"
	"github.com/elizhang33/room-reservations-api/transport/http/response"
)

type Handler struct {
	catalog *inventory.Catalog
	otel    otel.Otel
}

func New(catalog *inventory.Catalog, otel otel.Otel) Handler {
	return Handler{
		catalog: catalog,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/buildings", handler.GetBuildings)
}

// GetBuildings lists the building catalog.
// @Summary List buildings and rooms
// @Description Return the static catalog of buildings and their rooms in allocation order.
// @Tags Inventory
// @Produce json
// @Success 200 {object} response.Data[[]inventory.Building] "Building catalog"
// @Router /v1/buildings [get]
func (handler *Handler) GetBuildings(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBuildings")
	defer scope.End()

	scope.AddEvent("Building catalog retrieved")

	response.WithJSON(w, http.StatusOK, handler.catalog.Buildings())
}
