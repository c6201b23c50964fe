package update_downtime

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	downtimeService "github.com/dmkvsk/JSR-FleetService/internal/service/downtime"
)

const (
	msgInvalidDowntimeID  = "некорректный ID блока простоя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInput       = "некорректные данные блока простоя"
	msgDowntimeNotFound   = "блок простоя не найден"
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

// Handle PATCH /api/v1/downtime/{downtimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "downtimeId")
	if err != nil {
		h.logger.Warn("PATCH /downtime/{downtimeId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDowntimeID)
		return
	}

	var req UpdateDowntimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /downtime/{downtimeId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		h.logger.Warn("PATCH /downtime/{downtimeId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	block, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, downtimeService.ErrDowntimeNotFound):
			h.logger.Warn("PATCH /downtime/{downtimeId} - Downtime block not found: downtime_id=%d", id)
			handlers.RespondNotFound(w, msgDowntimeNotFound)

		case errors.Is(err, downtimeService.ErrInvalidInput):
			h.logger.Warn("PATCH /downtime/{downtimeId} - Invalid input: downtime_id=%d, error=%v", id, err)
			handlers.RespondValidationError(w, msgInvalidInput, err.Error())

		default:
			h.logger.Error("PATCH /downtime/{downtimeId} - Failed to update downtime block: downtime_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /downtime/{downtimeId} - Downtime block updated successfully: downtime_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(block))
}
