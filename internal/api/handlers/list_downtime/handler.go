package list_downtime

import (
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
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

// Handle GET /api/v1/downtime
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /downtime - Failed to list downtime blocks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(blocks))
}
