package printing

import (
	"context"
	"sync"
	"time"

	"github.com/onnuriprint/printshop-backend/internal/render"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

// Step is one stage of the print export choreography.
type Step string

const (
	StepShowInstruction Step = "show_instruction"
	StepPrint           Step = "print"
	StepAutoClose       Step = "auto_close"
)

// Scheduled tracks the pending timers of one timing plan. It cancels itself
// when the underlying document is replaced or removed.
type Scheduled struct {
	mu     sync.Mutex
	timers []*time.Timer
	done   chan struct{}
	closed bool
}

func newScheduled(ctx context.Context, doc *render.Document, plan []planStep, fire func(Step), logg *logger.Logger) *Scheduled {
	s := &Scheduled{done: make(chan struct{})}

	for _, p := range plan {
		step := p.step
		s.timers = append(s.timers, time.AfterFunc(p.at, func() {
			logg.Info(logg.WithField(ctx, "step", string(step)), "print step fired")
			fire(step)
		}))
	}

	go func() {
		select {
		case <-doc.Done():
			s.Cancel()
		case <-s.done:
		}
	}()

	return s
}

// Cancel stops every step that has not fired yet. Safe to call repeatedly.
func (s *Scheduled) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, t := range s.timers {
		t.Stop()
	}
	close(s.done)
}
