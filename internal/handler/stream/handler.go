package stream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	chatService "github.com/zhouzirui/folio/backend/internal/service/chat"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

const heartbeatInterval = 15 * time.Second

// Handler streams chat events to the widget via Server-Sent Events
type Handler struct {
	chatSvc   *chatService.Service
	logger    *zap.Logger
	heartbeat time.Duration
}

// New creates a new stream handler
func New(chatSvc *chatService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		chatSvc:   chatSvc,
		logger:    logger,
		heartbeat: heartbeatInterval,
	}
}

// RegisterRoutes mounts the event stream under a chat router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sessions/{sessionID}/events", func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionID")
		if err := h.HandleStreamRequest(r.Context(), w, sessionID); err != nil {
			switch {
			case errors.Is(err, chatService.ErrSessionNotFound):
				utils.RespondError(w, http.StatusNotFound, err.Error())
			case errors.Is(err, errStreamingUnsupported):
				utils.RespondError(w, http.StatusInternalServerError, err.Error())
			default:
				h.logger.Warn("event stream ended with error", zap.String("session_id", sessionID), zap.Error(err))
			}
		}
	})
}

var errStreamingUnsupported = errors.New("streaming unsupported")

// HandleStreamRequest replays the transcript and then forwards live events
// until the client disconnects or the session closes.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return errStreamingUnsupported
	}

	transcript, events, err := h.chatSvc.SubscribeWithHistory(ctx, sessionID)
	if err != nil {
		return err
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	if err := utils.SendSSEEvent(w, flusher, "history", transcript); err != nil {
		return fmt.Errorf("send history: %w", err)
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	h.logger.Debug("event stream opened", zap.String("session_id", sessionID))
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("event stream closed by client", zap.String("session_id", sessionID))
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := utils.SendSSEEvent(w, flusher, string(ev.Type), ev); err != nil {
				return fmt.Errorf("send %s event: %w", ev.Type, err)
			}
		case <-ticker.C:
			if err := utils.SendSSEComment(w, flusher, "heartbeat"); err != nil {
				return err
			}
		}
	}
}
