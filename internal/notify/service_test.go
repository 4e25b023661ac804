package notify

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

func newTestService(t *testing.T, ttl time.Duration) Service {
	t.Helper()
	svc, err := NewService(ttl, logger.New(logger.Options{ServiceName: "notify-test", Output: os.Stderr}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func TestNotifyAndActive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Minute)

	first, err := svc.Notify(ctx, "견적이 생성되었습니다", SeveritySuccess)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	second, err := svc.Notify(ctx, "서버 연결 실패", SeverityDanger)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	active := svc.Active(ctx)
	if len(active) != 2 {
		t.Fatalf("expected 2 active notices, got %d", len(active))
	}
	if active[0].ID != first.ID || active[1].ID != second.ID {
		t.Fatalf("notices not ordered by creation time")
	}
	if !active[0].ExpiresAt.After(active[0].CreatedAt) {
		t.Fatalf("expiry must be after creation")
	}
}

func TestNotifyRejectsEmptyMessageAndBadSeverity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Minute)

	if _, err := svc.Notify(ctx, "", SeverityInfo); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for empty message, got %v", err)
	}
	if _, err := svc.Notify(ctx, "x", Severity("loud")); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for unknown severity, got %v", err)
	}

	notice, err := svc.Notify(ctx, "x", "")
	if err != nil {
		t.Fatalf("empty severity should default: %v", err)
	}
	if notice.Severity != SeverityInfo {
		t.Fatalf("expected default severity info, got %s", notice.Severity)
	}
}

func TestNoticeAutoExpires(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, 20*time.Millisecond)

	if _, err := svc.Notify(ctx, "잠깐만요", SeverityInfo); err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(svc.Active(ctx)) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("notice did not expire")
}

func TestDismissIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, time.Minute)

	notice, err := svc.Notify(ctx, "dismiss me", SeverityWarning)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	svc.Dismiss(ctx, notice.ID)
	if got := len(svc.Active(ctx)); got != 0 {
		t.Fatalf("expected 0 active notices, got %d", got)
	}

	// second dismissal and unknown ids are no-ops
	svc.Dismiss(ctx, notice.ID)
	svc.Dismiss(ctx, uuid.New())
}

func TestNewServiceGuards(t *testing.T) {
	if _, err := NewService(0, logger.New(logger.Options{})); err == nil {
		t.Fatalf("expected error for zero ttl")
	}
	if _, err := NewService(time.Second, nil); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}
