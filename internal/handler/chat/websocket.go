package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/model/chat"
	chatService "github.com/zhouzirui/folio/backend/internal/service/chat"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxInbound = 8 << 10
)

// WebSocketHandler 以WebSocket承载聊天会话
type WebSocketHandler struct {
	chatSvc  *chatService.Service
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(chatSvc *chatService.Service, logger *zap.Logger) *WebSocketHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebSocketHandler{
		chatSvc: chatSvc,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// wsConn serialises writes; gorilla connections allow one concurrent writer.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// handleWebSocket 处理WebSocket连接
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	transcript, events, err := h.chatSvc.SubscribeWithHistory(ctx, sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	out := &wsConn{conn: conn}
	log := h.logger.With(zap.String("session_id", sessionID))
	log.Debug("websocket connected")

	if err := out.writeJSON(outgoing("history", sessionID, transcript)); err != nil {
		return
	}

	go h.pump(ctx, cancel, out, events)
	h.readLoop(ctx, out, sessionID, log)
	log.Debug("websocket disconnected")
}

// pump forwards chat events until the subscription ends.
func (h *WebSocketHandler) pump(ctx context.Context, cancel context.CancelFunc, out *wsConn, events <-chan chat.Event) {
	defer cancel()
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				_ = out.conn.Close()
				return
			}
			if err := out.writeJSON(outgoing(string(ev.Type), ev.SessionID, eventData(ev))); err != nil {
				return
			}
		case <-ticker.C:
			if err := out.ping(); err != nil {
				return
			}
		}
	}
}

func (h *WebSocketHandler) readLoop(ctx context.Context, out *wsConn, sessionID string, log *zap.Logger) {
	conn := out.conn
	conn.SetReadLimit(maxInbound)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = out.writeJSON(outgoing("error", sessionID, "invalid message"))
			continue
		}

		switch msg.Type {
		case "message":
			if _, err := h.chatSvc.Send(ctx, sessionID, msg.Text); err != nil {
				if errors.Is(err, chatService.ErrEmptyMessage) {
					continue
				}
				_ = out.writeJSON(outgoing("error", sessionID, err.Error()))
				if errors.Is(err, chatService.ErrSessionNotFound) {
					return
				}
			}
		case "ping":
			_ = out.writeJSON(outgoing("pong", sessionID, nil))
		default:
			_ = out.writeJSON(outgoing("error", sessionID, "unsupported message type"))
		}
	}
}

func eventData(ev chat.Event) interface{} {
	if ev.Message == nil {
		return nil
	}
	return ev.Message
}

func outgoing(kind, sessionID string, data interface{}) outgoingMessage {
	return outgoingMessage{
		Type:      kind,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}
