package task

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// APIError is a failure reported by the remote API. Transport failures that
// never produced a response are plain errors, not APIErrors.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Status is the HTTP status line, e.g. "422 Unprocessable Entity".
	Status string

	// Message is the server-provided message field, if any.
	Message string

	// Fields holds server-side validation messages keyed by field name.
	Fields map[string][]string
}

func (e *APIError) Error() string {
	if joined := e.joinedFields(); joined != "" {
		return joined
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Status
}

// joinedFields flattens the field-level validation messages into one
// multi-line string, in field-name order for stable output.
func (e *APIError) joinedFields() string {
	if len(e.Fields) == 0 {
		return ""
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var messages []string
	for _, name := range names {
		messages = append(messages, e.Fields[name]...)
	}
	return strings.Join(messages, "\n")
}

// Operation names a store operation for error formatting.
type Operation string

const (
	OpFetch    Operation = "fetch"
	OpCreate   Operation = "create"
	OpUpdate   Operation = "update"
	OpComplete Operation = "complete"
	OpDelete   Operation = "delete"
)

func (op Operation) label() string {
	switch op {
	case OpCreate:
		return "Registration"
	case OpUpdate:
		return "Update"
	case OpComplete:
		return "Completion"
	case OpDelete:
		return "Deletion"
	default:
		return "Fetch"
	}
}

// FormatError renders a failed operation as the human-readable string shown
// in the UI. Server field-level validation messages win over the server
// message, which wins over the bare HTTP status; anything that is not an
// APIError at all (transport failures, cancelled contexts) falls through to
// the unknown-error form.
func FormatError(op Operation, err error) string {
	label := op.label()

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if joined := apiErr.joinedFields(); joined != "" {
			return fmt.Sprintf("%s error:\n%s", label, joined)
		}
		if apiErr.Message != "" {
			return fmt.Sprintf("%s error: %s", label, apiErr.Message)
		}
		return fmt.Sprintf("%s error: %s", label, apiErr.Status)
	}

	return fmt.Sprintf("Unknown %s error: %v", strings.ToLower(label), err)
}
