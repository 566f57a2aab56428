// Package ncerr defines the tagged error variants returned by the ncstream
// decoder and normalizer. Every failure the core produces is a returned
// value wrapping one of these sentinels; the core never panics and never
// aborts the process.
package ncerr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for these across the package.
var (
	ErrShortBuffer    = errors.New("ncstream: short buffer")
	ErrMalformed      = errors.New("ncstream: malformed varint")
	ErrFramingError   = errors.New("ncstream: framing error")
	ErrBadMagic       = errors.New("ncstream: bad magic")
	ErrLengthMismatch = errors.New("ncstream: length mismatch")
	ErrMissingField   = errors.New("ncstream: missing required field")
	ErrInvalidCoords  = errors.New("ncstream: invalid coordinate reference")
	ErrTranslation    = errors.New("ncstream: translation error")
	ErrUpstream       = errors.New("ncstream: upstream error")
	ErrServerHTML     = errors.New("ncstream: server returned html")
)

// MissingFieldError carries the name of the required field that was absent
// on decode. Unwraps to ErrMissingField.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("ncstream: missing required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// NewMissingField builds a MissingFieldError for the named field.
func NewMissingField(name string) error {
	return &MissingFieldError{Field: name}
}

// UpstreamError carries the verbatim message from an Error envelope
// (magic = error, §6.3). Unwraps to ErrUpstream.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ncstream: upstream error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// ServerHTMLError carries the bounded HTML excerpt detected by the stream
// framer when a misconfigured server returns an error page instead of a
// wire payload (§4.5). Unwraps to ErrServerHTML.
type ServerHTMLError struct {
	Excerpt string
}

func (e *ServerHTMLError) Error() string {
	return fmt.Sprintf("ncstream: server returned html: %s", e.Excerpt)
}

func (e *ServerHTMLError) Unwrap() error { return ErrServerHTML }
