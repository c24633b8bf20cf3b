package dto

import (
	"context"
	"errors"
	"sort"

	"github.com/jsamuelsen11/realm-chronicle/internal/domain"
)

// Process exit codes. Each domain sentinel has its own code so scripts can
// branch on the failure kind.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitValidation  = 2
	ExitNotFound    = 3
	ExitConflict    = 4
	ExitEmptyInput  = 5
	ExitUnavailable = 6
)

// Problem is an RFC 9457 style problem document written to stderr when a
// command fails. ExitCode stands in for the HTTP status.
type Problem struct {
	Type     string        `json:"type" yaml:"type"`
	Title    string        `json:"title" yaml:"title"`
	ExitCode int           `json:"exit_code" yaml:"exit_code"`
	Detail   string        `json:"detail,omitempty" yaml:"detail,omitempty"`
	Instance string        `json:"instance,omitempty" yaml:"instance,omitempty"`
	RunID    string        `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ErrorDetail is one field-level validation failure.
type ErrorDetail struct {
	Location string `json:"location" yaml:"location"`
	Message  string `json:"message" yaml:"message"`
}

// NewProblem builds the problem document for err raised by the command
// at path (for example "realm change-ruler").
func NewProblem(path, runID string, err error) Problem {
	code := ExitCode(err)

	p := Problem{
		Type:     "about:blank",
		Title:    exitTitle(code),
		ExitCode: code,
		Detail:   err.Error(),
		Instance: path,
		RunID:    runID,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = validationFieldsToDetails(verr.Fields)
	}

	return p
}

// ExitCode maps domain sentinel errors to process exit codes. A nil error
// is ExitOK.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrValidation):
		return ExitValidation
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrConflict):
		return ExitConflict
	case errors.Is(err, domain.ErrEmptyInput):
		return ExitEmptyInput
	case errors.Is(err, domain.ErrUnavailable):
		return ExitUnavailable
	default:
		return ExitFailure
	}
}

// ErrorKind names the failure class of err for logs and metrics.
func ErrorKind(err error) string {
	switch ExitCode(err) {
	case ExitOK:
		return ""
	case ExitValidation:
		return "validation"
	case ExitNotFound:
		return "not_found"
	case ExitConflict:
		return "conflict"
	case ExitEmptyInput:
		return "empty_input"
	case ExitUnavailable:
		return "unavailable"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "internal"
}

func exitTitle(code int) string {
	switch code {
	case ExitValidation:
		return "Invalid Input"
	case ExitNotFound:
		return "Not Found"
	case ExitConflict:
		return "Conflict"
	case ExitEmptyInput:
		return "Empty Input"
	case ExitUnavailable:
		return "Unavailable"
	default:
		return "Command Failed"
	}
}

func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: field, Message: msg})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
