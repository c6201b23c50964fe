package create_downtime

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	downtimeService "github.com/dmkvsk/JSR-FleetService/internal/service/downtime"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInput       = "некорректные данные блока простоя"
	msgVehicleNotFound    = "гидроцикл не найден"
)

type Handler struct {
	service DowntimeService
	logger  Logger
}

func NewHandler(service DowntimeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/downtime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDowntimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /downtime - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	block, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /downtime - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Create(r.Context(), block)
	if err != nil {
		switch {
		case errors.Is(err, downtimeService.ErrVehicleNotFound):
			h.logger.Warn("POST /downtime - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, downtimeService.ErrInvalidInput):
			h.logger.Warn("POST /downtime - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err.Error())

		default:
			h.logger.Error("POST /downtime - Failed to create downtime block: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /downtime - Downtime block created successfully: downtime_id=%d, vehicle_id=%d", result.ID, result.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(result))
}
