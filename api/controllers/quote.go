package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onnuriprint/printshop-backend/api/responses"
	"github.com/onnuriprint/printshop-backend/api/validators"
	"github.com/onnuriprint/printshop-backend/internal/printing"
	"github.com/onnuriprint/printshop-backend/internal/quote"
	"github.com/onnuriprint/printshop-backend/internal/render"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
	"github.com/onnuriprint/printshop-backend/pkg/pricing"
)

// QuoteCalculate proxies the order form to the pricing engine and passes the
// breakdown through unchanged. Wire-compatible with the original
// /calculate_price and /quote routes.
func QuoteCalculate(svc quote.Service, logg *logger.Logger, calculate bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input quote.FormInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		run := svc.RequestQuote
		if calculate {
			run = svc.CalculatePrice
		}

		breakdown, err := run(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteRaw(w, http.StatusOK, breakdown)
	}
}

// QuotePreview keeps the legacy {success, price_info, error} envelope. On
// success the formal document is rendered into the registry so a follow-up
// print export finds it.
func QuotePreview(quotes quote.Service, documents render.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input quote.FormInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}

		breakdown, err := quotes.RequestPreview(r.Context(), input)
		if err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}

		if _, err := documents.Render(r.Context(), input, *breakdown, render.StyleFormal); err != nil {
			responses.WriteLegacyError(r.Context(), logg, w, err)
			return
		}

		responses.WriteLegacyPriceInfo(w, breakdown)
	}
}

type renderRequest struct {
	Input quote.FormInput        `json:"input" validate:"required"`
	Price pricing.PriceBreakdown `json:"price" validate:"required"`
	Style string                 `json:"style" validate:"required,oneof=compact formal"`
}

// QuoteRender renders a document from an input/breakdown pair and stores it
// in the single-slot registry for its kind.
func QuoteRender(documents render.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req renderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		style, _ := render.ParseStyle(req.Style)
		doc, err := documents.Render(r.Context(), req.Input, req.Price, style)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, doc)
	}
}

// QuoteDocument returns the current rendered document of the given kind.
func QuoteDocument(documents render.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := render.ParseStyle(chi.URLParam(r, "kind"))
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "kind must be compact or formal"))
			return
		}

		doc, err := documents.Document(r.Context(), kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, doc)
	}
}

// QuoteDocumentDismiss removes the current document of the given kind,
// cancelling any print steps still pending against it.
func QuoteDocumentDismiss(documents render.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := render.ParseStyle(chi.URLParam(r, "kind"))
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "kind must be compact or formal"))
			return
		}

		if !documents.Remove(r.Context(), kind) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "no rendered document to dismiss"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"kind": string(kind), "status": "dismissed"})
	}
}

type printRequest struct {
	Kind string `json:"kind" validate:"required,oneof=compact formal"`
}

// QuotePrint builds the print export for the current document of kind.
func QuotePrint(exports printing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req printRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		kind, _ := render.ParseStyle(req.Kind)
		payload, err := exports.ExportPrint(r.Context(), kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, payload)
	}
}
