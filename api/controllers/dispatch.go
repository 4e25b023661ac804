package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onnuriprint/printshop-backend/api/responses"
	"github.com/onnuriprint/printshop-backend/api/validators"
	"github.com/onnuriprint/printshop-backend/internal/dispatch"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

// OrderDispatch builds the hand-off payload for the requested channel.
func OrderDispatch(svc dispatch.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channel, ok := dispatch.ParseChannel(chi.URLParam(r, "channel"))
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "channel must be email, chat, phone, or marketplace"))
			return
		}

		var input dispatch.Input
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload, err := svc.Dispatch(r.Context(), channel, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, payload)
	}
}
