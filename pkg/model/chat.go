package model

type ChatMessage struct {
	ID     string `json:"id" msgpack:"id"`
	ChatID string `json:"chatId" msgpack:"chatId"`
	UserID string `json:"userId" msgpack:"userId" validate:"required"`
	Text   string `json:"text" msgpack:"text" validate:"required,min=1,max=4000"`
	TS     int64  `json:"ts" msgpack:"ts"`
}

// ChatBoard is a conversation between a user and a host. Messages are
// append-only; they are never edited or deleted.
type ChatBoard struct {
	ID             string        `json:"id" msgpack:"id"`
	Title          string        `json:"title" msgpack:"title" validate:"required,min=1,max=200"`
	ParticipantIDs []string      `json:"participantIds,omitempty" msgpack:"participantIds"`
	Messages       []ChatMessage `json:"messages" msgpack:"messages"`
}

func (c ChatBoard) RecordID() string { return c.ID }

// ChatSummary is the list shape for chat boards, without the message log.
type ChatSummary struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	ParticipantIDs []string     `json:"participantIds,omitempty"`
	LastMessage    *ChatMessage `json:"lastMessage,omitempty"`
}

func (c ChatBoard) Summary() ChatSummary {
	s := ChatSummary{ID: c.ID, Title: c.Title, ParticipantIDs: c.ParticipantIDs}
	if n := len(c.Messages); n > 0 {
		last := c.Messages[n-1]
		s.LastMessage = &last
	}
	return s
}
