package contact

import (
	"context"
	"sync"

	"github.com/zhouzirui/folio/backend/internal/model/contact"
)

// Inbox stores accepted submissions.
type Inbox interface {
	Save(ctx context.Context, submission contact.Submission) error
	List(ctx context.Context, limit int) ([]contact.Submission, error)
	Close() error
}

type memoryInbox struct {
	mu    sync.RWMutex
	items []contact.Submission
}

// NewMemoryInbox keeps submissions for the lifetime of the process.
func NewMemoryInbox() Inbox {
	return &memoryInbox{}
}

func (m *memoryInbox) Save(_ context.Context, submission contact.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, submission)
	return nil
}

func (m *memoryInbox) List(_ context.Context, limit int) ([]contact.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.items)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]contact.Submission, 0, n)
	for i := len(m.items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}

func (m *memoryInbox) Close() error {
	return nil
}
