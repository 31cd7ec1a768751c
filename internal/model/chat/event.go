package chat

// EventType names the notifications pushed to live transports.
type EventType string

const (
	EventTyping  EventType = "typing"
	EventMessage EventType = "message"
	EventClosed  EventType = "closed"
)

// Event is delivered to subscribers of a session.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId"`
	Message   *Message  `json:"message,omitempty"`
}
