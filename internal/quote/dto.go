package quote

import (
	"strings"

	"github.com/onnuriprint/printshop-backend/pkg/pricing"
)

// FormInput is the order form as submitted. Legacy Korean option labels are
// accepted alongside the canonical codes and normalized before any use.
type FormInput struct {
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Pages        int    `json:"pages" validate:"required,gt=0"`
	PrintType    string `json:"printType" validate:"required"`
	PrintMethod  string `json:"printMethod"`
	BindingType  string `json:"bindingType" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Size         string `json:"size"`
}

const (
	PrintTypeBlackWhite = "black_white"
	PrintTypeInkColor   = "ink_color"
	PrintTypeLaserColor = "laser_color"

	PrintMethodSingle = "single"
	PrintMethodDouble = "double"

	BindingPerfect = "perfect"
	BindingRing    = "ring"
	BindingSaddle  = "saddle"

	defaultSize = "A4"
)

var printTypeSynonyms = map[string]string{
	"흑백":    PrintTypeBlackWhite,
	"잉크칼라":  PrintTypeInkColor,
	"레이져칼라": PrintTypeLaserColor,
}

var printMethodSynonyms = map[string]string{
	"단면": PrintMethodSingle,
	"양면": PrintMethodDouble,
}

var bindingSynonyms = map[string]string{
	"무선": BindingPerfect,
	"링":  BindingRing,
	"중철": BindingSaddle,
}

// Normalized returns a copy with trimmed fields, Korean synonyms mapped to
// canonical codes, and defaults applied. Unrecognized codes pass through
// unchanged; downstream lookups treat them as opaque.
func (f FormInput) Normalized() FormInput {
	out := f
	out.CustomerName = strings.TrimSpace(f.CustomerName)
	out.Email = strings.TrimSpace(f.Email)
	out.PrintType = canonical(f.PrintType, printTypeSynonyms)
	out.PrintMethod = canonical(f.PrintMethod, printMethodSynonyms)
	out.BindingType = canonical(f.BindingType, bindingSynonyms)
	if out.PrintMethod == "" {
		out.PrintMethod = PrintMethodSingle
	}
	out.Size = strings.TrimSpace(f.Size)
	if out.Size == "" {
		out.Size = defaultSize
	}
	return out
}

// ToPricingRequest maps the normalized form onto the upstream wire contract.
func (f FormInput) ToPricingRequest() pricing.QuoteRequest {
	n := f.Normalized()
	return pricing.QuoteRequest{
		CustomerName: n.CustomerName,
		Email:        n.Email,
		Pages:        n.Pages,
		PrintType:    n.PrintType,
		PrintMethod:  n.PrintMethod,
		BindingType:  n.BindingType,
		Quantity:     n.Quantity,
		Size:         n.Size,
	}
}

func canonical(value string, synonyms map[string]string) string {
	trimmed := strings.TrimSpace(value)
	if mapped, ok := synonyms[trimmed]; ok {
		return mapped
	}
	return trimmed
}
