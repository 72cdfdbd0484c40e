package domain

import "errors"

// Domain errors.
var (
	ErrLocaleFileMissing   = errors.New("locale file does not exist")
	ErrLocaleFileMalformed = errors.New("locale file could not be parsed")
	ErrEmptyReference      = errors.New("reference locale has no keys")
	ErrValidationFailed    = errors.New("validation failed: missing translation keys")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// IsRecoverableLoadError reports whether err is a per-locale load failure that
// a run may survive by treating the locale as empty.
func IsRecoverableLoadError(err error) bool {
	return errors.Is(err, ErrLocaleFileMissing) || errors.Is(err, ErrLocaleFileMalformed)
}
