package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProviderUnavailable is returned when no language-model provider is
// configured.
var ErrProviderUnavailable = errors.New("summary provider unavailable")

// ValidationError reports required resume fields left empty after
// sanitization.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// RenderError wraps a failure while templating, converting or storing a
// resume.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
