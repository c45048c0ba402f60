package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "horizon/internal/delivery/context"
	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	mockusecase "horizon/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatHandlerTest(t *testing.T, pollInterval time.Duration) (*ChatHandler, *mockusecase.MockChatUsecase) {
	t.Helper()

	mockChatUC := mockusecase.NewMockChatUsecase(t)
	cfg := newTestHandlerConfig()
	cfg.LiveFeed.PollInterval = pollInterval
	h := NewChatHandler(ChatHandlerParams{
		ChatUC: mockChatUC,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, mockChatUC
}

func newStreamContext(ctx context.Context, userID, threadID uuid.UUID, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(threadID.String())
	c.Set(deliverycontext.KeyUserID, userID)

	return c, rec
}

// parseStreamEvents decodes every messages event in an SSE body, in order.
func parseStreamEvents(t *testing.T, body string) [][]*entity.Message {
	t.Helper()

	var batches [][]*entity.Message
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		require.True(t, strings.HasPrefix(chunk, "event: messages\ndata: "), "unexpected event chunk: %q", chunk)

		var batch []*entity.Message
		payload := strings.TrimPrefix(chunk, "event: messages\ndata: ")
		require.NoError(t, json.Unmarshal([]byte(payload), &batch))
		batches = append(batches, batch)
	}

	return batches
}

func TestChatHandler_StreamMessages_WatermarkAdvancesWithoutDuplicates(t *testing.T) {
	h, chatUC := newChatHandlerTest(t, 2*time.Millisecond)

	userID := uuid.New()
	threadID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batch1 := []*entity.Message{
		{ID: uuid.New(), ThreadID: threadID, SenderID: userID, Body: "first", Seq: 1},
		{ID: uuid.New(), ThreadID: threadID, SenderID: userID, Body: "second", Seq: 2},
	}
	batch2 := []*entity.Message{
		{ID: uuid.New(), ThreadID: threadID, SenderID: userID, Body: "third", Seq: 3},
	}

	chatUC.EXPECT().LatestSeq(mock.Anything, userID, threadID).Return(int64(0), nil).Once()
	chatUC.EXPECT().
		ListMessagesAfter(mock.Anything, userID, threadID, int64(0), streamBatchLimit).
		Return(batch1, nil).
		Once()
	chatUC.EXPECT().
		ListMessagesAfter(mock.Anything, userID, threadID, int64(2), streamBatchLimit).
		Return(batch2, nil).
		Once()
	// Once everything is delivered the poll runs dry; ending the request
	// context here is the client hanging up.
	chatUC.EXPECT().
		ListMessagesAfter(mock.Anything, userID, threadID, int64(3), streamBatchLimit).
		Run(func(ctx context.Context, userID uuid.UUID, threadID uuid.UUID, afterSeq int64, limit int) {
			cancel()
		}).
		Return(nil, nil)

	c, rec := newStreamContext(ctx, userID, threadID, "/threads/"+threadID.String()+"/stream")

	done := make(chan error, 1)
	go func() { done <- h.StreamMessages(c) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close after the client disconnected")
	}

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))

	batches := parseStreamEvents(t, rec.Body.String())
	require.Len(t, batches, 2)

	var seqs []int64
	for _, batch := range batches {
		for _, message := range batch {
			seqs = append(seqs, message.Seq)
		}
	}
	assert.Equal(t, []int64{1, 2, 3}, seqs)
}

func TestChatHandler_StreamMessages_ReconnectResumesAtAfterParam(t *testing.T) {
	h, chatUC := newChatHandlerTest(t, 2*time.Millisecond)

	userID := uuid.New()
	threadID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The thread head is well past the client's watermark; the ?after=
	// parameter must win so the gap is replayed.
	chatUC.EXPECT().LatestSeq(mock.Anything, userID, threadID).Return(int64(7), nil).Once()
	chatUC.EXPECT().
		ListMessagesAfter(mock.Anything, userID, threadID, int64(5), streamBatchLimit).
		Run(func(ctx context.Context, userID uuid.UUID, threadID uuid.UUID, afterSeq int64, limit int) {
			cancel()
		}).
		Return(nil, nil)

	c, _ := newStreamContext(ctx, userID, threadID, "/threads/"+threadID.String()+"/stream?after=5")

	done := make(chan error, 1)
	go func() { done <- h.StreamMessages(c) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close after the client disconnected")
	}
}

func TestChatHandler_StreamMessages_NonMemberFailsBeforeStreaming(t *testing.T) {
	h, chatUC := newChatHandlerTest(t, 2*time.Millisecond)

	userID := uuid.New()
	threadID := uuid.New()

	chatUC.EXPECT().
		LatestSeq(mock.Anything, userID, threadID).
		Return(int64(0), domainerrors.ErrForbidden)

	c, rec := newStreamContext(context.Background(), userID, threadID, "/threads/"+threadID.String()+"/stream")

	err := h.StreamMessages(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	// Nothing was streamed, so the error middleware can still render a 403.
	assert.Empty(t, rec.Body.String())
	assert.NotEqual(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
}

func TestChatHandler_StreamMessages_PollFailureClosesStream(t *testing.T) {
	h, chatUC := newChatHandlerTest(t, 2*time.Millisecond)

	userID := uuid.New()
	threadID := uuid.New()

	chatUC.EXPECT().LatestSeq(mock.Anything, userID, threadID).Return(int64(0), nil).Once()
	chatUC.EXPECT().
		ListMessagesAfter(mock.Anything, userID, threadID, int64(0), streamBatchLimit).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "query failed"))

	c, rec := newStreamContext(context.Background(), userID, threadID, "/threads/"+threadID.String()+"/stream")

	done := make(chan error, 1)
	go func() { done <- h.StreamMessages(c) }()

	select {
	case err := <-done:
		// Headers are already out, so the stream just ends.
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close after the poll failed")
	}

	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Empty(t, parseStreamEvents(t, rec.Body.String()))
}
