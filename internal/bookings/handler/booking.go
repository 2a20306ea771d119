package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/service"
	apperrors "staybook/pkg/errors"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"
	"staybook/pkg/middleware"
	"staybook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Error("Booking error",
				"request_id", middleware.RequestIDFromContext(r.Context()),
				"error", rec,
				"stack", string(debug.Stack()),
			)
			h.write(w, "Create", http.StatusInternalServerError, failure(bookingserrors.MessageInternalError))
		}
	}()

	// an empty body decodes like {} and is reported as missing fields
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("Failed to decode booking request",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
		h.write(w, "Create", http.StatusBadRequest, failure(bookingserrors.MessageInvalidBody))
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		appErr := apperrors.AsAppError(err)
		if appErr.StatusCode() >= http.StatusInternalServerError {
			h.log.Error("Booking error", "error", err)
		}
		h.write(w, "Create", appErr.StatusCode(), failure(appErr.Message))
		return
	}

	h.write(w, "Create", http.StatusCreated, resp)
}

func (h *BookingHandler) methodNotAllowed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "MethodNotAllowed", http.StatusMethodNotAllowed, failure(apperrors.MethodNotAllowed().Message))
}

func (h *BookingHandler) write(w http.ResponseWriter, handler string, status int, body *model.BookingResponse) {
	if err := httputil.WriteJSON(w, status, body); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteJSON", "error", err)
	}
}

func failure(message string) *model.BookingResponse {
	return &model.BookingResponse{Success: false, Message: message}
}
