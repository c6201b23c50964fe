package delete_vehicle

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	fleetService "github.com/dmkvsk/JSR-FleetService/internal/service/fleet"
)

const (
	msgInvalidVehicleID = "некорректный ID гидроцикла"
	msgVehicleNotFound  = "гидроцикл не найден"
	msgVehicleInUse     = "гидроцикл используется в активных бронях или блоках простоя"
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

// Handle DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("DELETE /vehicles/{vehicleId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, fleetService.ErrVehicleNotFound):
			h.logger.Warn("DELETE /vehicles/{vehicleId} - Vehicle not found: vehicle_id=%d", id)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, fleetService.ErrVehicleInUse):
			h.logger.Warn("DELETE /vehicles/{vehicleId} - Vehicle in use: vehicle_id=%d", id)
			handlers.RespondBadRequest(w, msgVehicleInUse)

		default:
			h.logger.Error("DELETE /vehicles/{vehicleId} - Failed to delete vehicle: vehicle_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{vehicleId} - Vehicle deleted successfully: vehicle_id=%d", id)
	handlers.RespondNoContent(w)
}
