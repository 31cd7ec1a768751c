package contact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/model/contact"
)

// DefaultSubmitDelay mirrors the fixed pause the form shows before confirming.
const DefaultSubmitDelay = 2 * time.Second

// SuccessNotice is the toast text shown after a submission is accepted.
const SuccessNotice = "Message sent successfully! I'll get back to you soon."

var ErrInvalidForm = errors.New("invalid contact form")

// ValidationError lists the offending fields of a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}

// Config tunes the simulated submission.
type Config struct {
	SubmitDelay time.Duration
}

// Service accepts contact form submissions.
type Service struct {
	inbox    Inbox
	delay    time.Duration
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a contact service to an inbox.
func NewService(inbox Inbox, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	delay := cfg.SubmitDelay
	if delay < 0 {
		delay = 0
	}

	return &Service{
		inbox:    inbox,
		delay:    delay,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates the form, waits the configured delay and stores it.
func (s *Service) Submit(ctx context.Context, form contact.Form) (contact.Receipt, error) {
	form = normalize(form)
	if err := s.check(form); err != nil {
		return contact.Receipt{}, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return contact.Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}

	submission := contact.Submission{
		ID:        uuid.NewString(),
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Message:   form.Message,
		CreatedAt: s.now(),
	}
	if err := s.inbox.Save(ctx, submission); err != nil {
		return contact.Receipt{}, fmt.Errorf("save submission: %w", err)
	}

	s.logger.Info("contact submission stored",
		zap.String("id", submission.ID),
		zap.String("subject", submission.Subject),
	)
	return contact.Receipt{ID: submission.ID, Notice: SuccessNotice}, nil
}

// Submissions lists stored submissions, newest first.
func (s *Service) Submissions(ctx context.Context, limit int) ([]contact.Submission, error) {
	return s.inbox.List(ctx, limit)
}

func (s *Service) check(form contact.Form) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}

func normalize(form contact.Form) contact.Form {
	return contact.Form{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Subject: strings.TrimSpace(form.Subject),
		Message: strings.TrimSpace(form.Message),
	}
}
