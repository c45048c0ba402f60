package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"horizon/config"
	"horizon/internal/delivery/http/response"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// streamBatchLimit caps how many messages one live-feed poll delivers.
const streamBatchLimit = 200

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Config *config.Config
	Logger *slog.Logger
}

// ChatHandler holds dependencies for thread, message and live-feed handlers.
type ChatHandler struct {
	chatUC       usecase.ChatUsecase
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC:       params.ChatUC,
		pollInterval: params.Config.LiveFeed.PollInterval,
		logger:       params.Logger,
	}
}

// CreateThreadRequest represents the request body for opening a thread.
type CreateThreadRequest struct {
	Title     string      `json:"title" validate:"required,max=200"`
	MemberIDs []uuid.UUID `json:"member_ids"`
}

// PostMessageRequest represents the request body for posting a message.
type PostMessageRequest struct {
	Body string `json:"body" validate:"required,max=4000"`
}

// CreateThread opens a thread; the caller is always a member.
func (h *ChatHandler) CreateThread(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateThreadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid thread input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	thread, err := h.chatUC.CreateThread(c.Request().Context(), userID, &usecase.CreateThreadInput{
		Title:     req.Title,
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, thread, "Thread created successfully")
}

// GetThread retrieves a thread the caller is a member of.
func (h *ChatHandler) GetThread(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid thread ID")
	}

	thread, err := h.chatUC.GetThread(c.Request().Context(), userID, threadID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, thread, "Thread retrieved successfully")
}

// ListThreads retrieves the caller's threads, most recently active first.
func (h *ChatHandler) ListThreads(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	threads, err := h.chatUC.ListThreads(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, threads, "Threads retrieved successfully")
}

// PostMessage appends a message to a thread the caller is a member of.
func (h *ChatHandler) PostMessage(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid thread ID")
	}

	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.chatUC.PostMessage(c.Request().Context(), userID, threadID, &usecase.PostMessageInput{
		Body: req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message posted successfully")
}

// ListMessages retrieves messages after a sequence watermark, oldest first.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid thread ID")
	}

	var afterSeq int64
	if after := c.QueryParam("after"); after != "" {
		afterSeq, err = strconv.ParseInt(after, 10, 64)
		if err != nil || afterSeq < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "after must be a non-negative integer")
		}
	}

	messages, err := h.chatUC.ListMessagesAfter(c.Request().Context(), userID, threadID, afterSeq, streamBatchLimit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// StreamMessages serves the thread's live feed over Server-Sent Events.
// Each event carries one batch of messages in sequence order; the watermark
// advances past each delivered batch so no message is sent twice on one
// connection. The connection stays open until the client goes away.
func (h *ChatHandler) StreamMessages(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid thread ID")
	}

	ctx := c.Request().Context()

	// Membership is checked before any SSE bytes go out so a non-member
	// still gets a clean 403 instead of a broken stream.
	latest, err := h.chatUC.LatestSeq(ctx, userID, threadID)
	if err != nil {
		return errors.WithStack(err)
	}

	// A fresh connection starts at the head of the thread; a reconnecting
	// client passes the last sequence it saw to resume without gaps.
	watermark := latest
	if after := c.QueryParam("after"); after != "" {
		watermark, err = strconv.ParseInt(after, 10, 64)
		if err != nil || watermark < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "after must be a non-negative integer")
		}
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.Header().Set("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			batch, err := h.chatUC.ListMessagesAfter(ctx, userID, threadID, watermark, streamBatchLimit)
			if err != nil {
				// Headers are already out; all we can do is end the stream.
				h.logger.Warn("Live feed poll failed, closing stream",
					slog.String("thread_id", threadID.String()),
					slog.Any("error", err),
				)

				return nil
			}
			if len(batch) == 0 {
				continue
			}

			payload, err := json.Marshal(batch)
			if err != nil {
				h.logger.Error("Failed to encode live feed batch", slog.Any("error", err))

				return nil
			}

			if _, err := fmt.Fprintf(resp, "event: messages\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			resp.Flush()

			watermark = batch[len(batch)-1].Seq
		}
	}
}
