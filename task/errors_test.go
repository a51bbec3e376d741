package task

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError_FieldErrorsWin(t *testing.T) {
	err := &APIError{
		StatusCode: 422,
		Status:     "422 Unprocessable Entity",
		Message:    "The given data was invalid.",
		Fields: map[string][]string{
			"chassis_number": {"must be 8 digits"},
			"color_id":       {"is required"},
		},
	}

	formatted := FormatError(OpCreate, err)

	if !strings.Contains(formatted, "must be 8 digits") {
		t.Errorf("expected field message in output, got %q", formatted)
	}
	if !strings.Contains(formatted, "is required") {
		t.Errorf("expected all field messages joined, got %q", formatted)
	}
	if strings.Contains(formatted, "The given data was invalid.") {
		t.Errorf("expected field errors to win over the server message, got %q", formatted)
	}
	if !strings.HasPrefix(formatted, "Registration error:") {
		t.Errorf("expected the operation label, got %q", formatted)
	}
}

func TestFormatError_ServerMessage(t *testing.T) {
	err := &APIError{
		StatusCode: 409,
		Status:     "409 Conflict",
		Message:    "task already completed",
	}

	formatted := FormatError(OpUpdate, err)

	if formatted != "Update error: task already completed" {
		t.Errorf("unexpected format: %q", formatted)
	}
}

func TestFormatError_StatusOnly(t *testing.T) {
	err := &APIError{StatusCode: 500, Status: "500 Internal Server Error"}

	formatted := FormatError(OpDelete, err)

	if formatted != "Deletion error: 500 Internal Server Error" {
		t.Errorf("unexpected format: %q", formatted)
	}
}

func TestFormatError_UnknownFallback(t *testing.T) {
	formatted := FormatError(OpComplete, errors.New("connection refused"))

	if formatted != "Unknown completion error: connection refused" {
		t.Errorf("unexpected format: %q", formatted)
	}
}

func TestFormatError_WrappedAPIError(t *testing.T) {
	wrapped := errors.Join(errors.New("request failed"), &APIError{
		Status:  "404 Not Found",
		Message: "no such task",
	})

	formatted := FormatError(OpFetch, wrapped)

	if !strings.Contains(formatted, "no such task") {
		t.Errorf("expected wrapped APIError to be unwrapped, got %q", formatted)
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Status: "400 Bad Request"}
	if err.Error() != "400 Bad Request" {
		t.Errorf("expected status line, got %q", err.Error())
	}

	err.Message = "bad payload"
	if err.Error() != "bad payload" {
		t.Errorf("expected message to win over status, got %q", err.Error())
	}

	err.Fields = map[string][]string{"user_id": {"is required"}}
	if err.Error() != "is required" {
		t.Errorf("expected field messages to win, got %q", err.Error())
	}
}
