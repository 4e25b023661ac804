package render

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/onnuriprint/printshop-backend/internal/quote"
	"github.com/onnuriprint/printshop-backend/pkg/config"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
	"github.com/onnuriprint/printshop-backend/pkg/pricing"
)

// Service renders quote documents and keeps the single-slot registry: at most
// one live document per kind, replace-then-insert under the lock.
type Service interface {
	Render(ctx context.Context, input quote.FormInput, price pricing.PriceBreakdown, style Style) (*Document, error)
	Document(ctx context.Context, kind Style) (*Document, error)
	Remove(ctx context.Context, kind Style) bool
}

type service struct {
	shop   config.ShopConfig
	logger *logger.Logger
	now    func() time.Time

	mu    sync.Mutex
	slots map[Style]*Document
}

// NewService builds the renderer with the shop identity block.
func NewService(shop config.ShopConfig, logg *logger.Logger) (Service, error) {
	if shop.Name == "" || shop.Representative == "" {
		return nil, fmt.Errorf("shop identity required")
	}
	if logg == nil {
		return nil, fmt.Errorf("render logger required")
	}
	return &service{
		shop:   shop,
		logger: logg,
		now:    time.Now,
		slots:  make(map[Style]*Document),
	}, nil
}

func (s *service) Render(ctx context.Context, input quote.FormInput, price pricing.PriceBreakdown, style Style) (*Document, error) {
	if !style.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown document style %q", style))
	}
	normalized := input.Normalized()
	if normalized.CustomerName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	}

	tax := TaxAmount(price)
	doc := &Document{
		Kind:         style,
		CustomerName: normalized.CustomerName,
		ProductName:  ProductName(normalized.PrintType, normalized.PrintMethod, normalized.BindingType),
		Size:         normalized.Size,
		Quantity:     normalized.Quantity,
		IssuedDate:   koreanDate(s.now()),

		UnitPrintPrice: price.UnitPrintPrice,
		PrintPrice:     price.PrintPrice,
		BindingPrice:   price.BindingPrice,
		UnitPrice:      price.UnitPrice,
		TotalPrice:     price.TotalPrice,
		Tax:            tax,
		GrandTotal:     price.TotalPrice + tax,
		TotalWithTax:   price.TotalPriceWithTax,

		DisplayTotal: Won(price.TotalPriceWithTax),
		RenderedAt:   s.now(),
		done:         make(chan struct{}),
	}

	var buf bytes.Buffer
	if err := templateForStyle(style).Execute(&buf, newTemplateData(s.shop, doc)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rendering quote document")
	}
	doc.HTML = buf.String()

	s.mu.Lock()
	if previous, ok := s.slots[style]; ok {
		close(previous.done)
	}
	s.slots[style] = doc
	s.mu.Unlock()

	s.logger.Info(s.logger.WithDocumentKind(ctx, string(style)), "quote document rendered")
	return doc, nil
}

func (s *service) Document(ctx context.Context, kind Style) (*Document, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown document kind %q", kind))
	}

	s.mu.Lock()
	doc, ok := s.slots[kind]
	s.mu.Unlock()

	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no rendered %s document", kind))
	}
	return doc, nil
}

func (s *service) Remove(ctx context.Context, kind Style) bool {
	s.mu.Lock()
	doc, ok := s.slots[kind]
	if ok {
		close(doc.done)
		delete(s.slots, kind)
	}
	s.mu.Unlock()

	if ok {
		s.logger.Info(s.logger.WithDocumentKind(ctx, string(kind)), "quote document removed")
	}
	return ok
}
