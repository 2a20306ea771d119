package handler

import (
	"net/http"

	httputil "staybook/pkg/http"

	"github.com/julienschmidt/httprouter"
)

const BookingsPath = "/api/bookings"

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST(BookingsPath, h.Create)
	httputil.RejectOtherMethods(router, BookingsPath, h.methodNotAllowed, http.MethodPost)
}
