package printing

import (
	"context"
	"fmt"
	"time"

	"github.com/onnuriprint/printshop-backend/internal/render"
	"github.com/onnuriprint/printshop-backend/pkg/config"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

// printStylesheet sizes the export for A4 portrait with 15mm margins and
// strips screen-only chrome when printed.
const printStylesheet = `@page {
  size: A4 portrait;
  margin: 15mm;
}
body {
  margin: 0;
  font-family: 'Malgun Gothic', 'Apple SD Gothic Neo', sans-serif;
  color: #111;
}
table {
  width: 100%;
  border-collapse: collapse;
}
th, td {
  border: 1px solid #ddd;
  padding: 8px;
  font-size: 11px;
}
@media print {
  .no-print {
    display: none;
  }
}`

// TimingPlan carries the export choreography as millisecond offsets from the
// moment the export surface opens.
type TimingPlan struct {
	InstructionDelayMS int64 `json:"instruction_delay_ms"`
	PrintAfterLoadMS   int64 `json:"print_after_load_ms"`
	AutoCloseAfterMS   int64 `json:"auto_close_after_ms"`
}

// ExportPayload is a self-contained printable page plus its timing plan.
type ExportPayload struct {
	Kind       render.Style `json:"kind"`
	HTML       string       `json:"html"`
	TimingPlan TimingPlan   `json:"timing_plan"`
}

type documentSource interface {
	Document(ctx context.Context, kind render.Style) (*render.Document, error)
}

// Service builds print exports for rendered quote documents.
type Service interface {
	ExportPrint(ctx context.Context, kind render.Style) (*ExportPayload, error)
	Schedule(ctx context.Context, doc *render.Document, fire func(Step)) *Scheduled
}

type service struct {
	documents documentSource
	timing    config.PrintingConfig
	logger    *logger.Logger
}

// NewService wires the print exporter against the document registry.
func NewService(documents documentSource, timing config.PrintingConfig, logg *logger.Logger) (Service, error) {
	if documents == nil {
		return nil, fmt.Errorf("document source required")
	}
	if logg == nil {
		return nil, fmt.Errorf("printing logger required")
	}
	if timing.InstructionDelay <= 0 || timing.PrintAfterLoad <= 0 || timing.AutoCloseAfter <= 0 {
		return nil, fmt.Errorf("timing plan durations must be positive")
	}
	return &service{documents: documents, timing: timing, logger: logg}, nil
}

// ExportPrint wraps the current document of kind into a standalone printable
// page. A missing document surfaces as NOT_FOUND from the registry.
func (s *service) ExportPrint(ctx context.Context, kind render.Style) (*ExportPayload, error) {
	doc, err := s.documents.Document(ctx, kind)
	if err != nil {
		return nil, err
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>견적서 - %s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>
`, doc.CustomerName, printStylesheet, doc.HTML)

	s.logger.Info(s.logger.WithDocumentKind(ctx, string(kind)), "print export built")
	return &ExportPayload{
		Kind: kind,
		HTML: page,
		TimingPlan: TimingPlan{
			InstructionDelayMS: s.timing.InstructionDelay.Milliseconds(),
			PrintAfterLoadMS:   s.timing.PrintAfterLoad.Milliseconds(),
			AutoCloseAfterMS:   s.timing.AutoCloseAfter.Milliseconds(),
		},
	}, nil
}

// Schedule starts the cancellable timing plan for doc. Steps fire in order:
// instruction, print, auto-close. Replacing or removing the document cancels
// any step that has not fired yet.
func (s *service) Schedule(ctx context.Context, doc *render.Document, fire func(Step)) *Scheduled {
	plan := []planStep{
		{step: StepShowInstruction, at: s.timing.InstructionDelay},
		{step: StepPrint, at: s.timing.InstructionDelay + s.timing.PrintAfterLoad},
		{step: StepAutoClose, at: s.timing.InstructionDelay + s.timing.PrintAfterLoad + s.timing.AutoCloseAfter},
	}
	return newScheduled(ctx, doc, plan, fire, s.logger)
}

type planStep struct {
	step Step
	at   time.Duration
}
