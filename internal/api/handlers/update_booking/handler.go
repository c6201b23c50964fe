package update_booking

import (
	"errors"
	"net/http"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
	updateBooking "github.com/dmkvsk/JSR-FleetService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTime         = "некорректный формат времени, ожидается RFC3339"
	msgInvalidTimeRange    = "некорректный временной диапазон"
	msgInvalidInput        = "некорректные данные бронирования"
	msgBookingNotFound     = "бронирование не найдено"
	msgVehicleNotFound     = "гидроцикл не найден"
	msgVehicleNotAvailable = "гидроцикл недоступен на выбранное время"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId} - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrVehicleNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId} - Vehicle not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, updateBooking.ErrVehicleNotAvailable):
			h.logger.Warn("PATCH /bookings/{bookingId} - Vehicle not available: booking_id=%d", id)
			handlers.RespondBadRequest(w, msgVehicleNotAvailable)

		case errors.Is(err, updateBooking.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /bookings/{bookingId} - Invalid time range: booking_id=%d", id)
			handlers.RespondValidationError(w, msgInvalidTimeRange, err.Error())

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{bookingId} - Invalid input: booking_id=%d, error=%v", id, err)
			handlers.RespondValidationError(w, msgInvalidInput, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{bookingId} - Failed to update booking: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId} - Booking updated successfully: booking_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
