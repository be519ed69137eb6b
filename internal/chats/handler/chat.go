package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"dogroom/internal/chats/service"
	httputil "dogroom/pkg/http"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
)

type ChatHandler struct {
	service service.ChatService
	log     *logger.Logger
}

func NewChatHandler(svc service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{service: svc, log: log}
}

type createChatRequest struct {
	Title          string   `json:"title"`
	ParticipantIDs []string `json:"participantIds"`
}

type sendMessageRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	summaries := make([]model.ChatSummary, 0, len(page.Items))
	for _, board := range page.Items {
		summaries = append(summaries, board.Summary())
	}

	if err := httputil.WriteSuccess(w, map[string]any{"items": summaries, "next": page.Next}); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	board, err := h.service.Create(r.Context(), req.Title, req.ParticipantIDs)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, board.Summary()); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	messages, err := h.service.Messages(r.Context(), ps.ByName("chatId"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Messages", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, messages); err != nil {
		h.log.Error("failed to write success response", "handler", "Messages", "error", err)
	}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Send", "error", writeErr)
		}
		return
	}

	msg, err := h.service.Send(r.Context(), ps.ByName("chatId"), req.UserID, req.Text)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Send", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, msg); err != nil {
		h.log.Error("failed to write created response", "handler", "Send", "error", err)
	}
}

func (h *ChatHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/chats", h.List)
	router.POST("/api/chats", h.Create)
	router.GET("/api/chats/:chatId/messages", h.Messages)
	router.POST("/api/chats/:chatId/messages", h.Send)
}
