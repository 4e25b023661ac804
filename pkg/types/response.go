package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// LegacyResultEnvelope mirrors the flat {success, message, error} shape the
// pre-existing storefront endpoints speak. New endpoints use SuccessEnvelope
// and ErrorEnvelope instead.
type LegacyResultEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// LegacyPriceEnvelope wraps a pricing breakdown for /preview_quote.
type LegacyPriceEnvelope struct {
	Success   bool   `json:"success"`
	PriceInfo any    `json:"price_info,omitempty"`
	Error     string `json:"error,omitempty"`
}

// LegacyPhotoListEnvelope wraps GET /api/photos.
type LegacyPhotoListEnvelope struct {
	Success bool   `json:"success"`
	Photos  any    `json:"photos"`
	Error   string `json:"error,omitempty"`
}

// LegacyFolderListEnvelope wraps GET /api/folders.
type LegacyFolderListEnvelope struct {
	Success bool   `json:"success"`
	Folders any    `json:"folders"`
	Error   string `json:"error,omitempty"`
}
