package create_booking

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	createBooking "github.com/dmkvsk/JSR-FleetService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается RFC3339"
	msgInvalidTimeRange    = "некорректный временной диапазон"
	msgInvalidInput        = "некорректные данные бронирования"
	msgVehicleNotFound     = "гидроцикл не найден"
	msgVehicleNotAvailable = "гидроцикл недоступен на выбранное время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrVehicleNotAvailable):
			h.logger.Warn("POST /bookings - Vehicle not available: vehicle_id=%d", req.VehicleID)
			handlers.RespondBadRequest(w, msgVehicleNotAvailable)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: vehicle_id=%d", req.VehicleID)
			handlers.RespondValidationError(w, msgInvalidTimeRange, err.Error())

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, vehicle_id=%d", result.ID, result.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
