package responses

import (
	"context"
	"net/http"

	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
	"github.com/onnuriprint/printshop-backend/pkg/types"
)

// The storefront's pre-existing endpoints speak flat {success, ...} envelopes.
// These writers keep that wire shape byte-compatible while reusing the coded
// error mapping for status codes and logging.

func WriteLegacyMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, types.LegacyResultEnvelope{Success: true, Message: message})
}

func WriteLegacyPriceInfo(w http.ResponseWriter, priceInfo any) {
	writeJSON(w, http.StatusOK, types.LegacyPriceEnvelope{Success: true, PriceInfo: priceInfo})
}

func WriteLegacyPhotos(w http.ResponseWriter, photos any) {
	writeJSON(w, http.StatusOK, types.LegacyPhotoListEnvelope{Success: true, Photos: photos})
}

func WriteLegacyFolders(w http.ResponseWriter, folders any) {
	writeJSON(w, http.StatusOK, types.LegacyFolderListEnvelope{Success: true, Folders: folders})
}

func WriteLegacyError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())
	msg := typed.Message()
	if msg == "" {
		msg = meta.PublicMessage
	}

	if logg != nil {
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, types.LegacyResultEnvelope{Success: false, Error: msg})
}
