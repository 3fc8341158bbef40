package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRequest    = errors.New("invalid trip parameters")
	ErrTripNotFound      = errors.New("trip not found")
	ErrInvalidDayIndex   = errors.New("invalid day index")
	ErrInvalidPlaceIndex = errors.New("invalid place index")
	ErrEmptyPrompt       = errors.New("prompt is required")
	ErrDatabaseError     = errors.New("database error")
)

// UpstreamError reports a transport-level failure (including timeouts) from
// the LLM or geocoding endpoint. StatusCode is 0 when no HTTP response was
// received.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("upstream call failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// IsRateLimited reports whether err carries an upstream 429.
func IsRateLimited(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == 429
}

// ParseError means the model returned text that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("AI response is not valid JSON: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError means the model returned valid JSON that does not match the
// expected itinerary shape. Violations lists every failed constraint.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return "AI response does not match expected schema: " + strings.Join(e.Violations, "; ")
}

// GenerationError is terminal: the retry budget is exhausted and the last
// underlying error is wrapped for diagnostics.
type GenerationError struct {
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("itinerary generation failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
