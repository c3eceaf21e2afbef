package translator

import (
	"errors"
	"fmt"
)

// ErrTargetIsAuto is returned when the auto-detect sentinel is passed as the
// target language. Detection only makes sense for the source side.
var ErrTargetIsAuto = errors.New("translator: target language cannot be auto")

// ErrIPBanned is returned when the service answers with a failure status.
// The endpoint blocks by IP once it suspects automation, and an HTTP-level
// rejection is the usual symptom.
var ErrIPBanned = errors.New("translator: request rejected, IP is likely banned")

// UnsupportedLanguageError is returned when a language is not in the catalog.
// The check runs before any network I/O.
type UnsupportedLanguageError struct {
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("translator: unsupported language %q", e.Code)
}

// TransportError wraps any network failure below the HTTP protocol level:
// timeouts, DNS errors, broken connections. It is distinct from ErrIPBanned,
// which means the service answered and refused.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("translator: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
