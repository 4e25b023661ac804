package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/onnuriprint/printshop-backend/api/responses"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
)

const adminTokenHeader = "X-Admin-Token"

// AdminOnly guards privileged gallery mutations. The header token is checked
// server-side on every call; any admin flag a client keeps locally is
// display-only and never trusted.
func AdminOnly(token string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if provided == "" {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeUnauthorized, "admin token required"))
				return
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeForbidden, "admin token rejected"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
