package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/onnuriprint/printshop-backend/api/responses"
	"github.com/onnuriprint/printshop-backend/internal/notify"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

// NoticesList returns the active notices, oldest first.
func NoticesList(svc notify.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Active(r.Context()))
	}
}

// NoticeDismiss removes a notice. Dismissing an already-expired notice is
// still a success; double removal is harmless.
func NoticeDismiss(svc notify.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "noticeId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid notice id"))
			return
		}

		svc.Dismiss(r.Context(), id)
		responses.WriteSuccess(w, map[string]string{"status": "dismissed"})
	}
}
