package render

import (
	"fmt"
	"time"
)

// Style selects the document layout. Both layouts share one derivation path
// and stay numerically consistent with each other.
type Style string

const (
	// StyleCompact is the condensed breakdown card shown inline.
	StyleCompact Style = "compact"
	// StyleFormal is the full business quote sheet used for print/export.
	StyleFormal Style = "formal"
)

func (s Style) IsValid() bool {
	return s == StyleCompact || s == StyleFormal
}

// ParseStyle resolves a wire value to a Style.
func ParseStyle(value string) (Style, bool) {
	s := Style(value)
	return s, s.IsValid()
}

// Document is a rendered quote. At most one live instance exists per kind;
// rendering a new one replaces and invalidates the previous instance.
type Document struct {
	Kind         Style  `json:"kind"`
	CustomerName string `json:"customer_name"`
	ProductName  string `json:"product_name"`
	Size         string `json:"size"`
	Quantity     int    `json:"quantity"`
	IssuedDate   string `json:"issued_date"`

	UnitPrintPrice int64 `json:"unit_print_price"`
	PrintPrice     int64 `json:"print_price"`
	BindingPrice   int64 `json:"binding_price"`
	UnitPrice      int64 `json:"unit_price"`
	TotalPrice     int64 `json:"total_price"`
	Tax            int64 `json:"tax"`
	GrandTotal     int64 `json:"grand_total"`
	TotalWithTax   int64 `json:"total_with_tax"`

	// DisplayTotal is the result-panel figure, always the with-tax amount.
	DisplayTotal string `json:"display_total"`

	HTML       string    `json:"html"`
	RenderedAt time.Time `json:"rendered_at"`

	done chan struct{}
}

// Done is closed when the document is replaced or removed. Pending work tied
// to the document, such as a print timing plan, watches this to cancel.
func (d *Document) Done() <-chan struct{} {
	return d.done
}

// koreanDate formats t in the shop's locale, e.g. "2026년 8월 28일".
func koreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}
