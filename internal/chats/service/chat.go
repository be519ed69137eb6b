package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/sanitizer"
	"dogroom/pkg/store"
)

type ChatService interface {
	List(ctx context.Context, cursor string, limit int) (*store.Page[model.ChatBoard], error)
	Create(ctx context.Context, title string, participantIDs []string) (model.ChatBoard, error)
	Messages(ctx context.Context, chatID string) ([]model.ChatMessage, error)
	Send(ctx context.Context, chatID, userID, text string) (model.ChatMessage, error)
}

type chatService struct {
	chats *store.Collection[model.ChatBoard]
	log   *logger.Logger
}

func NewChatService(chats *store.Collection[model.ChatBoard], log *logger.Logger) ChatService {
	return &chatService{chats: chats, log: log}
}

func (s *chatService) List(_ context.Context, cursor string, limit int) (*store.Page[model.ChatBoard], error) {
	return s.chats.List(cursor, limit)
}

func (s *chatService) Create(_ context.Context, title string, participantIDs []string) (model.ChatBoard, error) {
	title = sanitizer.SanitizeText(title)
	if title == "" {
		return model.ChatBoard{}, apperrors.InvalidInput("title is required")
	}

	board := model.ChatBoard{
		ID:             uuid.New().String(),
		Title:          title,
		ParticipantIDs: participantIDs,
		Messages:       []model.ChatMessage{},
	}

	board, err := s.chats.Create(board)
	if err != nil {
		return model.ChatBoard{}, err
	}

	s.log.Info("Chat board created", "id", board.ID, "title", board.Title)
	return board, nil
}

func (s *chatService) Messages(_ context.Context, chatID string) ([]model.ChatMessage, error) {
	board, err := s.chats.Get(chatID)
	if err != nil {
		return nil, err
	}
	if board.Messages == nil {
		return []model.ChatMessage{}, nil
	}
	return board.Messages, nil
}

// Send appends a message to the board through its atomic mutation contract.
// Messages are never edited or removed afterwards.
func (s *chatService) Send(_ context.Context, chatID, userID, text string) (model.ChatMessage, error) {
	text = sanitizer.SanitizeText(text)
	if userID == "" || text == "" {
		return model.ChatMessage{}, apperrors.InvalidInput("userId and text are required")
	}

	msg := model.ChatMessage{
		ID:     uuid.New().String(),
		ChatID: chatID,
		UserID: userID,
		Text:   text,
		TS:     time.Now().UnixMilli(),
	}

	if _, err := s.chats.Mutate(chatID, func(board model.ChatBoard) (model.ChatBoard, error) {
		board.Messages = append(board.Messages, msg)
		return board, nil
	}); err != nil {
		return model.ChatMessage{}, err
	}

	return msg, nil
}
