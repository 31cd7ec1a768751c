package contact

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/folio/backend/internal/model/contact"
)

func validForm() contact.Form {
	return contact.Form{
		Name:    "  Ada Lovelace ",
		Email:   "ada@example.com",
		Subject: "Collaboration",
		Message: "Would love to build something together.",
	}
}

func TestSubmitStoresNormalizedForm(t *testing.T) {
	inbox := NewMemoryInbox()
	svc := NewService(inbox, Config{}, nil)
	ctx := context.Background()

	receipt, err := svc.Submit(ctx, validForm())
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, SuccessNotice, receipt.Notice)

	items, err := svc.Submissions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, receipt.ID, items[0].ID)
	assert.Equal(t, "Ada Lovelace", items[0].Name)
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	svc := NewService(NewMemoryInbox(), Config{}, nil)

	form := validForm()
	form.Email = "not-an-email"
	form.Subject = "   "

	_, err := svc.Submit(context.Background(), form)
	require.ErrorIs(t, err, ErrInvalidForm)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Fields["email"])
	assert.Equal(t, "required", verr.Fields["subject"])

	items, err := svc.Submissions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSubmitWaitsForDelay(t *testing.T) {
	svc := NewService(NewMemoryInbox(), Config{SubmitDelay: 30 * time.Millisecond}, nil)

	start := time.Now()
	_, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSubmitHonoursCancellation(t *testing.T) {
	svc := NewService(NewMemoryInbox(), Config{SubmitDelay: time.Hour}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Submit(ctx, validForm())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryInboxListNewestFirst(t *testing.T) {
	inbox := NewMemoryInbox()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, inbox.Save(ctx, contact.Submission{ID: id}))
	}

	items, err := inbox.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestSQLiteInboxRoundTrip(t *testing.T) {
	inbox, err := NewSQLiteInbox(filepath.Join(t.TempDir(), "inbox.db"))
	require.NoError(t, err)
	defer inbox.Close()

	ctx := context.Background()
	created := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	for _, id := range []string{"first", "second"} {
		require.NoError(t, inbox.Save(ctx, contact.Submission{
			ID:        id,
			Name:      "Ada",
			Email:     "ada@example.com",
			Subject:   "Hi",
			Message:   "Hello",
			CreatedAt: created,
		}))
	}

	items, err := inbox.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].ID)
	assert.True(t, created.Equal(items[0].CreatedAt))
}
