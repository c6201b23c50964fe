package today_bookings

import (
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/today
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListToday(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/today - Failed to list today's bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(bookings))
}
