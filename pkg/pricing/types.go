package pricing

import "encoding/json"

// QuoteRequest is the order-form payload forwarded to the pricing engine.
// Field names follow the engine's wire contract.
type QuoteRequest struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email,omitempty"`
	Pages        int    `json:"pages"`
	PrintType    string `json:"printType"`
	PrintMethod  string `json:"printMethod"`
	BindingType  string `json:"bindingType"`
	Quantity     int    `json:"quantity"`
	Size         string `json:"size"`
}

// PriceBreakdown is the engine-owned priced quote. Amounts are KRW integers.
// The engine computes everything; these fields are consumed as given, except
// TaxAmount which may be absent and is then derived downstream.
type PriceBreakdown struct {
	UnitPrintPrice    int64  `json:"unit_print_price"`
	PrintPrice        int64  `json:"print_price"`
	UnitBindingPrice  int64  `json:"unit_binding_price"`
	BindingPrice      int64  `json:"binding_price"`
	UnitPrice         int64  `json:"unit_price"`
	TotalPrice        int64  `json:"total_price"`
	TotalPriceWithTax int64  `json:"total_price_with_tax"`
	TotalPages        int    `json:"total_pages"`
	TaxAmount         *int64 `json:"tax_amount,omitempty"`
}

// previewEnvelope is the legacy {success, price_info, error} wrapper returned
// by /preview_quote.
type previewEnvelope struct {
	Success   bool            `json:"success"`
	PriceInfo json.RawMessage `json:"price_info"`
	Error     string          `json:"error"`
}
