package docparse

import "fmt"

// UnsupportedFormatError is returned when the declared MIME type matches
// none of the supported formats. Never retried.
type UnsupportedFormatError struct {
	MimeType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document type: %s", e.MimeType)
}

// DecodeError wraps a failure from the underlying extraction step.
// Metadata-only failures are swallowed by the decoders and never reach
// this type; missing extractable text always does.
type DecodeError struct {
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
