package gallery

import (
	"fmt"
	"mime"
	"strings"

	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
)

var allowedPhotoMimeTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

func sniffMimeType(value string) (string, error) {
	clean := strings.TrimSpace(value)
	if clean == "" {
		return "", fmt.Errorf("mime type required")
	}
	mediaType, _, err := mime.ParseMediaType(clean)
	if err != nil {
		return "", fmt.Errorf("mime type invalid: %w", err)
	}
	return strings.ToLower(mediaType), nil
}

// validateUploadMime rejects anything that is not a supported image and
// returns the canonical extension for the stored filename.
func validateUploadMime(value string) (mimeType, ext string, err error) {
	mediaType, sniffErr := sniffMimeType(value)
	if sniffErr != nil {
		return "", "", pkgerrors.New(pkgerrors.CodeValidation, sniffErr.Error())
	}
	ext, ok := allowedPhotoMimeTypes[mediaType]
	if !ok {
		return "", "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unsupported image type %q, use PNG, JPEG, WEBP, or GIF", mediaType))
	}
	return mediaType, ext, nil
}
