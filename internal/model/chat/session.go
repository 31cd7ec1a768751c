package chat

import "time"

// Session captures a transient anonymous conversation with the portfolio bot.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	// Pending is true while a bot reply is scheduled but not yet delivered.
	Pending bool `json:"pending"`
}
