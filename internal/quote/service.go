package quote

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/onnuriprint/printshop-backend/internal/notify"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
	"github.com/onnuriprint/printshop-backend/pkg/metrics"
	"github.com/onnuriprint/printshop-backend/pkg/pricing"
)

const (
	opQuote          = "quote"
	opCalculatePrice = "calculate_price"
	opPreviewQuote   = "preview_quote"
)

type pricingClient interface {
	Quote(ctx context.Context, req pricing.QuoteRequest) (*pricing.PriceBreakdown, error)
	CalculatePrice(ctx context.Context, req pricing.QuoteRequest) (*pricing.PriceBreakdown, error)
	PreviewQuote(ctx context.Context, req pricing.QuoteRequest) (*pricing.PriceBreakdown, error)
}

type inFlightStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	InFlightKey(scope, token string) string
}

// Service runs the quote workflow: validate, guard against duplicate
// submissions, call the pricing engine, surface the outcome as a notice.
type Service interface {
	RequestQuote(ctx context.Context, input FormInput) (*pricing.PriceBreakdown, error)
	CalculatePrice(ctx context.Context, input FormInput) (*pricing.PriceBreakdown, error)
	RequestPreview(ctx context.Context, input FormInput) (*pricing.PriceBreakdown, error)
}

type service struct {
	pricing  pricingClient
	inflight inFlightStore
	notifier notify.Service
	logger   *logger.Logger
	metrics  *metrics.PricingMetrics
	guardTTL time.Duration
}

// NewService wires the quote workflow.
func NewService(client pricingClient, inflight inFlightStore, notifier notify.Service, logg *logger.Logger, m *metrics.PricingMetrics, guardTTL time.Duration) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("pricing client required")
	}
	if inflight == nil {
		return nil, fmt.Errorf("in-flight store required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if guardTTL <= 0 {
		return nil, fmt.Errorf("guard ttl must be positive")
	}
	return &service{
		pricing:  client,
		inflight: inflight,
		notifier: notifier,
		logger:   logg,
		metrics:  m,
		guardTTL: guardTTL,
	}, nil
}

func (s *service) RequestQuote(ctx context.Context, input FormInput) (*pricing.PriceBreakdown, error) {
	return s.run(ctx, opQuote, input, s.pricing.Quote)
}

func (s *service) CalculatePrice(ctx context.Context, input FormInput) (*pricing.PriceBreakdown, error) {
	return s.run(ctx, opCalculatePrice, input, s.pricing.CalculatePrice)
}

func (s *service) RequestPreview(ctx context.Context, input FormInput) (*pricing.PriceBreakdown, error) {
	return s.run(ctx, opPreviewQuote, input, s.pricing.PreviewQuote)
}

type upstreamCall func(ctx context.Context, req pricing.QuoteRequest) (*pricing.PriceBreakdown, error)

// run is the shared workflow. Validation failures never reach the engine, and
// the in-flight token is released on every exit path.
func (s *service) run(ctx context.Context, operation string, input FormInput, call upstreamCall) (*pricing.PriceBreakdown, error) {
	normalized := input.Normalized()
	if err := validateInput(normalized); err != nil {
		return nil, err
	}

	key := s.inflight.InFlightKey(operation, requestToken(normalized))
	acquired, err := s.inflight.SetNX(ctx, key, "1", s.guardTTL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquiring in-flight token")
	}
	if !acquired {
		s.metrics.IncInFlightRejected(operation)
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "an identical request is already in progress")
	}
	defer func() {
		if err := s.inflight.Del(ctx, key); err != nil {
			s.logger.Error(ctx, "releasing in-flight token", err)
		}
	}()

	ctx = s.logger.WithFields(ctx, map[string]any{"operation": operation, "customer": normalized.CustomerName})

	breakdown, err := call(ctx, normalized.ToPricingRequest())
	if err != nil {
		s.logger.Error(ctx, "pricing request failed", err)
		s.pushNotice(ctx, noticeForError(err), notify.SeverityDanger)
		return nil, err
	}

	s.pushNotice(ctx, "견적이 준비되었습니다", notify.SeveritySuccess)
	return breakdown, nil
}

func validateInput(input FormInput) error {
	missing := make([]string, 0, 5)
	if input.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if input.Pages <= 0 {
		missing = append(missing, "pages")
	}
	if input.PrintType == "" {
		missing = append(missing, "printType")
	}
	if input.BindingType == "" {
		missing = append(missing, "bindingType")
	}
	if input.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "required order fields missing").
			WithDetails(map[string]any{"fields": missing})
	}
	return nil
}

// requestToken fingerprints the normalized form so only identical concurrent
// submissions collide on the guard.
func requestToken(input FormInput) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		input.CustomerName,
		input.Email,
		fmt.Sprintf("%d", input.Pages),
		input.PrintType,
		input.PrintMethod,
		input.BindingType,
		fmt.Sprintf("%d", input.Quantity),
		input.Size,
	}, "|")))
	return hex.EncodeToString(sum[:8])
}

func (s *service) pushNotice(ctx context.Context, message string, severity notify.Severity) {
	if _, err := s.notifier.Notify(ctx, message, severity); err != nil {
		s.logger.Error(ctx, "publishing notice", err)
	}
}

func noticeForError(err error) string {
	if coded := pkgerrors.As(err); coded != nil {
		switch coded.Code() {
		case pkgerrors.CodeService:
			return coded.Message()
		case pkgerrors.CodeTransport:
			return "서버 연결에 실패했습니다. 잠시 후 다시 시도해주세요"
		}
	}
	return "견적 요청에 실패했습니다"
}
