// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Target errors
	ErrEmptyTarget   = errors.New("target cannot be empty")
	ErrInvalidDomain = errors.New("invalid domain format")

	// Source errors
	ErrUnknownSource = errors.New("unknown source")

	// Scan errors
	ErrScanCanceled = errors.New("scan was canceled")

	// Export errors
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// IsCanceled reporta si err corresponde a un escaneo cancelado.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrScanCanceled)
}
