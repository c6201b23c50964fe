package delete_downtime

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	downtimeService "github.com/dmkvsk/JSR-FleetService/internal/service/downtime"
)

const (
	msgInvalidDowntimeID = "некорректный ID блока простоя"
	msgDowntimeNotFound  = "блок простоя не найден"
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

// Handle DELETE /api/v1/downtime/{downtimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "downtimeId")
	if err != nil {
		h.logger.Warn("DELETE /downtime/{downtimeId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDowntimeID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, downtimeService.ErrDowntimeNotFound):
			h.logger.Warn("DELETE /downtime/{downtimeId} - Downtime block not found: downtime_id=%d", id)
			handlers.RespondNotFound(w, msgDowntimeNotFound)

		default:
			h.logger.Error("DELETE /downtime/{downtimeId} - Failed to delete downtime block: downtime_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /downtime/{downtimeId} - Downtime block deleted successfully: downtime_id=%d", id)
	handlers.RespondNoContent(w)
}
