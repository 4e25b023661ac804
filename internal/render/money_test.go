package render

import (
	"testing"

	"github.com/onnuriprint/printshop-backend/pkg/pricing"
)

func TestWonFormatsWithGrouping(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0원"},
		{500, "500원"},
		{5000, "5,000원"},
		{5500, "5,500원"},
		{100000, "100,000원"},
		{1234567, "1,234,567원"},
	}
	for _, tc := range cases {
		if got := Won(tc.amount); got != tc.want {
			t.Errorf("Won(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestCountFormatsWithCounter(t *testing.T) {
	if got := Count(1000); got != "1,000권" {
		t.Fatalf("Count(1000) = %q", got)
	}
}

func TestTaxAmountPrefersEngineValue(t *testing.T) {
	supplied := int64(7777)
	got := TaxAmount(pricing.PriceBreakdown{TotalPrice: 100000, TaxAmount: &supplied})
	if got != 7777 {
		t.Fatalf("expected engine tax 7777, got %d", got)
	}
}

func TestTaxAmountFallbackRoundsTenPercent(t *testing.T) {
	cases := []struct {
		total int64
		want  int64
	}{
		{100000, 10000},
		{5000, 500},
		{999, 100},  // 99.9 rounds up
		{994, 99},   // 99.4 rounds down
		{995, 100},  // 99.5 rounds half up
		{0, 0},
	}
	for _, tc := range cases {
		got := TaxAmount(pricing.PriceBreakdown{TotalPrice: tc.total})
		if got != tc.want {
			t.Errorf("TaxAmount(total=%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}
