package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dogroom/internal/hosts/service"
	httputil "dogroom/pkg/http"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
)

type HostHandler struct {
	service service.HostService
	log     *logger.Logger
}

func NewHostHandler(svc service.HostService, log *logger.Logger) *HostHandler {
	return &HostHandler{service: svc, log: log}
}

func (h *HostHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cursor, limit, err := httputil.ExtractCursorLimit(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	page, err := h.service.List(r.Context(), cursor, limit)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, page); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *HostHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	details, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, details); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "error", err)
	}
}

func (h *HostHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var host model.Host
	if err := json.NewDecoder(r.Body).Decode(&host); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	created, err := h.service.Create(r.Context(), host)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, created); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *HostHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/hosts", h.List)
	router.GET("/api/hosts/:id", h.Get)
	router.POST("/api/hosts", h.Create)
}
