package health

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "dogroom/pkg/http"
	"dogroom/pkg/logger"
	"dogroom/pkg/store"
)

type Response struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
}

type Handler struct {
	store *store.Store
	log   *logger.Logger
}

func NewHandler(s *store.Store, log *logger.Logger) *Handler {
	return &Handler{store: s, log: log}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, Response{Status: "ok"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "error", err)
	}
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.store.Ping(); err != nil {
		h.log.Error("Storage health check failed", "error", err, "path", r.URL.Path)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, Response{
			Status:  "unavailable",
			Storage: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, Response{Status: "ready", Storage: "ok"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
