package get_downtime

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

// Handle GET /api/v1/downtime/{downtimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "downtimeId")
	if err != nil {
		h.logger.Warn("GET /downtime/{downtimeId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDowntimeID)
		return
	}

	block, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, downtimeService.ErrDowntimeNotFound):
			h.logger.Warn("GET /downtime/{downtimeId} - Downtime block not found: downtime_id=%d", id)
			handlers.RespondNotFound(w, msgDowntimeNotFound)

		default:
			h.logger.Error("GET /downtime/{downtimeId} - Failed to get downtime block: downtime_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(block))
}
