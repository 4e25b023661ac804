package render

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/onnuriprint/printshop-backend/pkg/pricing"
)

var krwPrinter = message.NewPrinter(language.Korean)

// Won renders a KRW amount with digit grouping, e.g. 5000 -> "5,000원".
func Won(amount int64) string {
	return krwPrinter.Sprintf("%d", amount) + "원"
}

// Count renders a quantity with digit grouping and the volume counter,
// e.g. 1000 -> "1,000권".
func Count(quantity int) string {
	return krwPrinter.Sprintf("%d", quantity) + "권"
}

var taxRate = decimal.NewFromFloat(0.1)

// TaxAmount returns the engine-supplied tax when present, otherwise the
// display-only fallback round(total_price * 0.1).
func TaxAmount(price pricing.PriceBreakdown) int64 {
	if price.TaxAmount != nil {
		return *price.TaxAmount
	}
	return decimal.NewFromInt(price.TotalPrice).Mul(taxRate).Round(0).IntPart()
}
