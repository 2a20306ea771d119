package handler

import (
	"net/http"
	"strconv"

	"staybook/internal/properties/service"
	apperrors "staybook/pkg/errors"
	httputil "staybook/pkg/http"
	"staybook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type PropertyHandler struct {
	service service.PropertyService
	log     *logger.Logger
}

func NewPropertyHandler(service service.PropertyService, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log,
	}
}

func (h *PropertyHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	properties, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WriteSuccess(w, properties); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PropertyHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	index, ok := httputil.ParseLeadingInt(ps.ByName("id"))
	if !ok {
		h.writeError(w, "GetByID", apperrors.NotFound("Property"))
		return
	}

	property, err := h.service.GetByIndex(r.Context(), index)
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, property); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PropertyHandler) GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID, ok := httputil.ParseLeadingInt(ps.ByName("id"))
	if !ok {
		h.writeError(w, "GetReviews", apperrors.InvalidInput("Invalid property ID"))
		return
	}

	resp, err := h.service.Reviews(r.Context(), propertyID)
	if err != nil {
		h.writeError(w, "GetReviews", err)
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "GetReviews", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PropertyHandler) GetQuote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	index, ok := httputil.ParseLeadingInt(ps.ByName("id"))
	if !ok {
		h.writeError(w, "GetQuote", apperrors.NotFound("Property"))
		return
	}

	nights := service.DefaultNights
	if nightsStr := r.URL.Query().Get("nights"); nightsStr != "" {
		var err error
		nights, err = strconv.Atoi(nightsStr)
		if err != nil || nights <= 0 {
			h.writeError(w, "GetQuote", apperrors.InvalidInput("Invalid nights parameter: "+nightsStr))
			return
		}
	}

	quote, err := h.service.Quote(r.Context(), index, nights)
	if err != nil {
		h.writeError(w, "GetQuote", err)
		return
	}

	if err := httputil.WriteSuccess(w, quote); err != nil {
		h.log.Error("failed to write success response", "handler", "GetQuote", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PropertyHandler) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Categories()); err != nil {
		h.log.Error("failed to write success response", "handler", "GetCategories", "operation", "WriteSuccess", "error", err)
	}
}

// listMethodNotAllowed answers with an empty array, the list endpoint's only
// response shape.
func (h *PropertyHandler) listMethodNotAllowed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusMethodNotAllowed, []struct{}{}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetAll", "operation", "WriteJSON", "error", err)
	}
}

func (h *PropertyHandler) methodNotAllowed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeError(w, "MethodNotAllowed", apperrors.MethodNotAllowed())
}

func (h *PropertyHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}
