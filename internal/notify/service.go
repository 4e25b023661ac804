package notify

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

// Severity classifies a notice for presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityDanger:
		return true
	}
	return false
}

// Notice is a short-lived user-facing message.
type Notice struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service is the notice center. Notices expire automatically after the
// configured TTL; dismissal before expiry cancels the pending timer, and
// dismissing an already-gone notice is a no-op.
type Service interface {
	Notify(ctx context.Context, message string, severity Severity) (*Notice, error)
	Dismiss(ctx context.Context, id uuid.UUID)
	Active(ctx context.Context) []Notice
	Close()
}

type entry struct {
	notice Notice
	timer  *time.Timer
}

type service struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	ttl     time.Duration
	logger  *logger.Logger
	closed  bool
}

// NewService builds the notice center with the given auto-expiry TTL.
func NewService(ttl time.Duration, logg *logger.Logger) (Service, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("notice ttl must be positive")
	}
	if logg == nil {
		return nil, fmt.Errorf("notify logger required")
	}
	return &service{
		entries: make(map[uuid.UUID]*entry),
		ttl:     ttl,
		logger:  logg,
	}, nil
}

func (s *service) Notify(ctx context.Context, message string, severity Severity) (*Notice, error) {
	if message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "notice message required")
	}
	if severity == "" {
		severity = SeverityInfo
	}
	if !severity.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown severity %q", severity))
	}

	now := time.Now()
	notice := Notice{
		ID:        uuid.New(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notice center is shut down")
	}

	id := notice.ID
	s.entries[id] = &entry{
		notice: notice,
		timer: time.AfterFunc(s.ttl, func() {
			s.expire(id)
		}),
	}

	s.logger.Info(s.logger.WithFields(ctx, map[string]any{
		"notice_id": id.String(),
		"severity":  string(severity),
	}), "notice published")
	return &notice, nil
}

func (s *service) Dismiss(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok {
		e.timer.Stop()
		delete(s.entries, id)
	}
	s.mu.Unlock()

	if ok {
		s.logger.Info(s.logger.WithField(ctx, "notice_id", id.String()), "notice dismissed")
	}
}

func (s *service) Active(context.Context) []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	notices := make([]Notice, 0, len(s.entries))
	for _, e := range s.entries {
		notices = append(notices, e.notice)
	}
	sort.Slice(notices, func(i, j int) bool {
		return notices[i].CreatedAt.Before(notices[j].CreatedAt)
	})
	return notices
}

// Close stops all pending expiry timers. Further Notify calls fail.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, id)
	}
}

func (s *service) expire(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}
