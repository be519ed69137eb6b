package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dogroom/internal/reviews/service"
	httputil "dogroom/pkg/http"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
)

type ReviewHandler struct {
	service service.ReviewService
	log     *logger.Logger
}

func NewReviewHandler(svc service.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{service: svc, log: log}
}

func (h *ReviewHandler) ListByHost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reviews, err := h.service.ListByHost(r.Context(), r.URL.Query().Get("hostId"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListByHost", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]any{"items": reviews}); err != nil {
		h.log.Error("failed to write success response", "handler", "ListByHost", "error", err)
	}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	review, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, review); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *ReviewHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/reviews", h.ListByHost)
	router.POST("/api/reviews", h.Create)
}
