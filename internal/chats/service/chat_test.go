package service_test

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"dogroom/internal/chats/service"
	apperrors "dogroom/pkg/errors"
	"dogroom/pkg/logger"
	"dogroom/pkg/model"
	"dogroom/pkg/store"
)

func newChatService(t *testing.T) service.ChatService {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	chats, err := store.NewCollection[model.ChatBoard](s, "chat")
	require.NoError(t, err)

	log := logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
	return service.NewChatService(chats, log)
}

func TestCreateChatBoard(t *testing.T) {
	svc := newChatService(t)

	board, err := svc.Create(context.Background(), "  Weekend   stay ", []string{"u1", "h1"})
	require.NoError(t, err)
	require.NotEmpty(t, board.ID)
	require.Equal(t, "Weekend stay", board.Title)
	require.Equal(t, []string{"u1", "h1"}, board.ParticipantIDs)
	require.Empty(t, board.Messages)

	_, err = svc.Create(context.Background(), "   ", nil)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestSendAppendsMessages(t *testing.T) {
	svc := newChatService(t)
	ctx := context.Background()

	board, err := svc.Create(ctx, "Walk schedule", []string{"u1", "h1"})
	require.NoError(t, err)

	first, err := svc.Send(ctx, board.ID, "u1", "Hi! Is Friday still fine?")
	require.NoError(t, err)
	require.Equal(t, board.ID, first.ChatID)
	require.NotZero(t, first.TS)

	second, err := svc.Send(ctx, board.ID, "h1", "Friday works, see you then.")
	require.NoError(t, err)

	msgs, err := svc.Messages(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, first.ID, msgs[0].ID)
	require.Equal(t, second.ID, msgs[1].ID)
}

func TestSendValidation(t *testing.T) {
	svc := newChatService(t)
	ctx := context.Background()

	board, err := svc.Create(ctx, "General", []string{"u1"})
	require.NoError(t, err)

	_, err = svc.Send(ctx, board.ID, "", "hello")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Send(ctx, board.ID, "u1", "   ")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Send(ctx, "missing", "u1", "hello")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestMessagesUnknownChat(t *testing.T) {
	svc := newChatService(t)

	_, err := svc.Messages(context.Background(), "missing")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestConcurrentSendsLoseNoMessage(t *testing.T) {
	svc := newChatService(t)
	ctx := context.Background()

	board, err := svc.Create(ctx, "Busy board", []string{"u1", "h1"})
	require.NoError(t, err)

	const senders = 10
	var wg sync.WaitGroup
	errs := make(chan error, senders)
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.Send(ctx, board.ID, "u1", fmt.Sprintf("message %d", n))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	msgs, err := svc.Messages(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, msgs, senders)

	seen := map[string]bool{}
	for _, m := range msgs {
		require.False(t, seen[m.Text])
		seen[m.Text] = true
	}
}

func TestListChatBoards(t *testing.T) {
	svc := newChatService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, fmt.Sprintf("Board %d", i), nil)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "", 3)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	require.NotNil(t, page.Next)

	page, err = svc.List(ctx, *page.Next, 3)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Nil(t, page.Next)
}
