package availability_windows

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	availabilityWindows "github.com/dmkvsk/JSR-FleetService/internal/usecase/availability_windows"
)

const (
	msgBrandRequired = "не указан бренд"
	msgInvalidAsOf   = "некорректный формат asOf, ожидается RFC3339"
)

type Handler struct {
	useCase AvailabilityWindowsUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityWindowsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability-windows?brand=yamaha&asOf=2026-07-10T09:00:00Z
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &availabilityWindows.Request{
		Brand: query.Get("brand"),
	}

	if raw := query.Get("asOf"); raw != "" {
		asOf, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /availability-windows - Invalid asOf: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidAsOf)
			return
		}
		req.AsOf = &asOf
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityWindows.ErrBrandRequired):
			h.logger.Warn("GET /availability-windows - Brand is missing")
			handlers.RespondBadRequest(w, msgBrandRequired)

		default:
			h.logger.Error("GET /availability-windows - Failed to compute windows: brand=%s, error=%v", req.Brand, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
