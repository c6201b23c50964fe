package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	fleetService "github.com/dmkvsk/JSR-FleetService/internal/service/fleet"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается RFC3339"
	msgInvalidInput       = "некорректные данные гидроцикла"
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

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /vehicles - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), vehicle)
	if err != nil {
		switch {
		case errors.Is(err, fleetService.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err.Error())

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created successfully: vehicle_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(result))
}
