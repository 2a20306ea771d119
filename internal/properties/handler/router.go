package handler

import (
	"net/http"

	httputil "staybook/pkg/http"

	"github.com/julienschmidt/httprouter"
)

func (h *PropertyHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/properties", h.GetAll)
	router.GET("/api/properties/:id", h.GetByID)
	router.GET("/api/properties/:id/reviews", h.GetReviews)
	router.GET("/api/properties/:id/quote", h.GetQuote)
	router.GET("/api/categories", h.GetCategories)

	httputil.RejectOtherMethods(router, "/api/properties", h.listMethodNotAllowed, http.MethodGet)
	for _, path := range []string{
		"/api/properties/:id",
		"/api/properties/:id/reviews",
		"/api/properties/:id/quote",
		"/api/categories",
	} {
		httputil.RejectOtherMethods(router, path, h.methodNotAllowed, http.MethodGet)
	}
}
