package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/model/chat"
	"github.com/zhouzirui/folio/backend/internal/model/knowledge"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrReplyPending    = errors.New("a reply is already pending")
	ErrServiceClosed   = errors.New("chat service is shut down")
)

// DefaultWelcome seeds every new conversation when Config.Welcome is empty.
var DefaultWelcome = knowledge.Welcome(knowledge.DefaultOwner)

const subscriberBuffer = 16

// Replier produces the canned reply for a user message.
type Replier interface {
	Match(input string) string
}

// Config tunes reply scheduling.
type Config struct {
	MinReplyDelay time.Duration
	MaxReplyDelay time.Duration
	Welcome       string
}

// Option customises a Service.
type Option func(*Service)

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDelay overrides the reply delay generator.
func WithDelay(delay func() time.Duration) Option {
	return func(s *Service) {
		if delay != nil {
			s.delay = delay
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

type conversation struct {
	session     chat.Session
	messages    []chat.Message
	timer       *time.Timer
	subscribers map[uint64]chan chat.Event
	done        chan struct{}
}

// Service owns conversation state for every live chat widget. Each session
// moves idle -> awaiting-reply -> idle; at most one reply is outstanding.
type Service struct {
	replier Replier
	welcome string
	delay   func() time.Duration
	now     func() time.Time
	logger  *zap.Logger

	mu            sync.RWMutex
	conversations map[string]*conversation
	nextSub       uint64
	closed        bool
}

// NewService bootstraps the in-memory chat service.
func NewService(replier Replier, cfg Config, opts ...Option) *Service {
	minDelay, maxDelay := cfg.MinReplyDelay, cfg.MaxReplyDelay
	if minDelay <= 0 && maxDelay <= 0 {
		minDelay, maxDelay = DefaultMinReplyDelay, DefaultMaxReplyDelay
	}
	welcome := strings.TrimSpace(cfg.Welcome)
	if welcome == "" {
		welcome = DefaultWelcome
	}

	s := &Service{
		replier:       replier,
		welcome:       welcome,
		delay:         UniformDelay(minDelay, maxDelay),
		now:           func() time.Time { return time.Now().UTC() },
		logger:        zap.NewNop(),
		conversations: make(map[string]*conversation),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession provisions an idle conversation seeded with the welcome message.
func (s *Service) CreateSession(_ context.Context) (chat.Session, error) {
	now := s.now()
	session := chat.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
	}
	welcome := chat.Message{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Text:      s.welcome,
		IsBot:     true,
		Timestamp: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return chat.Session{}, ErrServiceClosed
	}

	messages := make([]chat.Message, 0, 16)
	s.conversations[session.ID] = &conversation{
		session:     session,
		messages:    append(messages, welcome),
		subscribers: make(map[uint64]chan chat.Event),
		done:        make(chan struct{}),
	}

	s.logger.Debug("chat session created", zap.String("session_id", session.ID))
	return session, nil
}

// Send records a user message and schedules exactly one bot reply. Blank input
// returns ErrEmptyMessage and changes nothing; otherwise text is kept as typed.
func (s *Service) Send(_ context.Context, sessionID, text string) (chat.Message, error) {
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[sessionID]
	if !ok {
		return chat.Message{}, ErrSessionNotFound
	}
	if conv.session.Pending {
		return chat.Message{}, ErrReplyPending
	}

	message := chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Text:      text,
		Timestamp: s.now(),
	}
	conv.messages = append(conv.messages, message)
	conv.session.Pending = true

	delay := s.delay()
	conv.timer = time.AfterFunc(delay, func() {
		s.deliver(sessionID, conv, text)
	})

	s.publish(conv, chat.Event{Type: chat.EventMessage, SessionID: sessionID, Message: &message})
	s.publish(conv, chat.Event{Type: chat.EventTyping, SessionID: sessionID})

	s.logger.Debug("chat reply scheduled",
		zap.String("session_id", sessionID),
		zap.Duration("delay", delay),
	)
	return message, nil
}

func (s *Service) deliver(sessionID string, conv *conversation, input string) {
	reply := s.replier.Match(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	// the conversation was torn down while the timer was in flight
	if current, ok := s.conversations[sessionID]; !ok || current != conv {
		return
	}

	message := chat.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Text:      reply,
		IsBot:     true,
		Timestamp: s.now(),
	}
	conv.messages = append(conv.messages, message)
	conv.session.Pending = false
	conv.timer = nil

	s.publish(conv, chat.Event{Type: chat.EventMessage, SessionID: sessionID, Message: &message})
}

// publish must be called with s.mu held. Slow subscribers lose events rather
// than stall the conversation.
func (s *Service) publish(conv *conversation, event chat.Event) {
	for id, ch := range conv.subscribers {
		select {
		case ch <- event:
		default:
			s.logger.Warn("dropping chat event for slow subscriber",
				zap.String("session_id", conv.session.ID),
				zap.Uint64("subscriber", id),
				zap.String("event", string(event.Type)),
			)
		}
	}
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return conv.session, nil
}

// Transcript returns the ordered conversation log for the session.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Message, len(conv.messages))
	copy(copied, conv.messages)
	return copied, nil
}

// Subscribe streams session events until ctx is done or the session closes,
// after which the channel is closed.
func (s *Service) Subscribe(ctx context.Context, sessionID string) (<-chan chat.Event, error) {
	_, ch, err := s.subscribe(ctx, sessionID, false)
	return ch, err
}

// SubscribeWithHistory returns the transcript together with a subscription
// registered under the same lock, so every message is either in the history or
// delivered on the channel, never neither.
func (s *Service) SubscribeWithHistory(ctx context.Context, sessionID string) ([]chat.Message, <-chan chat.Event, error) {
	return s.subscribe(ctx, sessionID, true)
}

func (s *Service) subscribe(ctx context.Context, sessionID string, withHistory bool) ([]chat.Message, <-chan chat.Event, error) {
	s.mu.Lock()
	conv, ok := s.conversations[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, ErrSessionNotFound
	}
	var history []chat.Message
	if withHistory {
		history = make([]chat.Message, len(conv.messages))
		copy(history, conv.messages)
	}
	s.nextSub++
	id := s.nextSub
	ch := make(chan chat.Event, subscriberBuffer)
	conv.subscribers[id] = ch
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-conv.done:
		}
		s.unsubscribe(conv, id)
	}()

	return history, ch, nil
}

func (s *Service) unsubscribe(conv *conversation, id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := conv.subscribers[id]; ok {
		delete(conv.subscribers, id)
		close(ch)
	}
}

// Close tears a conversation down and cancels its outstanding reply, if any.
func (s *Service) Close(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	s.teardown(sessionID, conv)
	return nil
}

// Shutdown cancels every outstanding reply and rejects new sessions.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, conv := range s.conversations {
		s.teardown(id, conv)
	}
	s.closed = true
}

func (s *Service) teardown(sessionID string, conv *conversation) {
	cancelled := false
	if conv.timer != nil {
		cancelled = conv.timer.Stop()
		conv.timer = nil
	}
	s.publish(conv, chat.Event{Type: chat.EventClosed, SessionID: sessionID})
	delete(s.conversations, sessionID)
	close(conv.done)

	s.logger.Debug("chat session closed",
		zap.String("session_id", sessionID),
		zap.Bool("reply_cancelled", cancelled),
	)
}
