package update_vehicle

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	fleetService "github.com/dmkvsk/JSR-FleetService/internal/service/fleet"
)

const (
	msgInvalidVehicleID   = "некорректный ID гидроцикла"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается RFC3339"
	msgInvalidInput       = "некорректные данные гидроцикла"
	msgVehicleNotFound    = "гидроцикл не найден"
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

// Handle PATCH /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "vehicleId")
	if err != nil {
		h.logger.Warn("PATCH /vehicles/{vehicleId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /vehicles/{vehicleId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		h.logger.Warn("PATCH /vehicles/{vehicleId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	vehicle, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, fleetService.ErrVehicleNotFound):
			h.logger.Warn("PATCH /vehicles/{vehicleId} - Vehicle not found: vehicle_id=%d", id)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, fleetService.ErrInvalidInput):
			h.logger.Warn("PATCH /vehicles/{vehicleId} - Invalid input: vehicle_id=%d, error=%v", id, err)
			handlers.RespondValidationError(w, msgInvalidInput, err.Error())

		default:
			h.logger.Error("PATCH /vehicles/{vehicleId} - Failed to update vehicle: vehicle_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /vehicles/{vehicleId} - Vehicle updated successfully: vehicle_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(vehicle))
}
