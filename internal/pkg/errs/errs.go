package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Markers for the error taxonomy surfaced at the API boundary.
var (
	ErrValidation   = cr.New("validation error")
	ErrUnauthorized = cr.New("unauthorized")
	ErrNotFound     = cr.New("not found")
	ErrUpstream     = cr.New("upstream provider error")
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// Validation builds a user-facing error whose message is shown verbatim.
func Validation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

func Unauthorized(msg string) error {
	return cr.Mark(cr.New(msg), ErrUnauthorized)
}

func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

func Upstream(msg string) error {
	return cr.Mark(cr.New(msg), ErrUpstream)
}

// UpstreamCause keeps cause for logs while the public message stays msg.
func UpstreamCause(msg string, cause error) error {
	return cr.Mark(cr.WithSecondaryError(cr.New(msg), cause), ErrUpstream)
}

// PublicMessage returns the innermost message of err, dropping wrap prefixes.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	return cr.UnwrapAll(err).Error()
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
