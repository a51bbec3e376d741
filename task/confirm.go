package task

import "fmt"

// ConfirmKind tags a confirmation request so the UI layer can interpret it
// without the store knowing anything about dialog shapes.
type ConfirmKind string

const (
	// ConfirmComplete asks to transition a task's completion flag.
	ConfirmComplete ConfirmKind = "confirm-complete"

	// ConfirmDelete asks to remove a task.
	ConfirmDelete ConfirmKind = "confirm-delete"
)

// ConfirmRequest describes a destructive operation awaiting explicit
// confirmation. The network call fires only through Store.ConfirmPending;
// dismissing the request any other way has no side effects.
type ConfirmRequest struct {
	Kind        ConfirmKind
	TaskID      string
	Title       string
	Message     string
	ConfirmText string
	CancelText  string
}

// Notice is the terminal informational dialog shown after a confirmed
// operation resolves, reporting success or the formatted error.
type Notice struct {
	Title   string
	Message string
	IsError bool
}

func newCompleteRequest(id string) ConfirmRequest {
	return ConfirmRequest{
		Kind:        ConfirmComplete,
		TaskID:      id,
		Title:       "Confirm task completion",
		Message:     fmt.Sprintf("Mark task ID %s as completed?", id),
		ConfirmText: "Complete",
		CancelText:  "Cancel",
	}
}

func newDeleteRequest(id string) ConfirmRequest {
	return ConfirmRequest{
		Kind:        ConfirmDelete,
		TaskID:      id,
		Title:       "Confirm task deletion",
		Message:     fmt.Sprintf("Really delete task ID %s?", id),
		ConfirmText: "Delete",
		CancelText:  "Cancel",
	}
}

func successNotice(message string) Notice {
	return Notice{Title: "Success", Message: message}
}

func errorNotice(message string) Notice {
	return Notice{Title: "Error", Message: message, IsError: true}
}
