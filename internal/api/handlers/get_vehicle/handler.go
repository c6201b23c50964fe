package get_vehicle

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	fleetService "github.com/dmkvsk/JSR-FleetService/internal/service/fleet"
)

const (
	msgInvalidVehicleID = "некорректный ID гидроцикла"
	msgVehicleNotFound  = "гидроцикл не найден"
)

type Handler struct {
	service FleetService
	logger  Logger
}

func NewHandler(service FleetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("GET /vehicles/{vehicleId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	vehicle, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, fleetService.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{vehicleId} - Vehicle not found: vehicle_id=%d", id)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("GET /vehicles/{vehicleId} - Failed to get vehicle: vehicle_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(vehicle))
}
