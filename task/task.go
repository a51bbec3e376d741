// Package task implements the client-side task store for the workshop
// tracking API.
//
// A task is a work order tying together a work type, a car model, a chassis
// number, a color, and an assigned user. All task data lives behind the
// remote REST API; the Store keeps an in-memory copy of the currently
// displayed list plus the UI state derived from it (selection, calendar
// markings, busy/error flags).
//
// The public API mirrors the client operations:
//   - FetchTasks, CreateTask, UpdateTask for the main lifecycle
//   - RequestComplete, RequestDelete, ConfirmPending, CancelPending for the
//     confirm-gated state transitions
//   - SelectDate, SelectTask for UI selection
package task

import "time"

// Task is a normalized work order as displayed by the client.
//
// Foreign references point at master-data records (work type, car model,
// color, user, admin) fetched separately. The descriptive fields (Title,
// Name, Code, UserName, AdminName) are resolved from those records at fetch
// time so consumers never need to chase the references for display.
type Task struct {
	// ID is the server-assigned identifier. The client never invents one.
	ID string `json:"id"`

	// Title is the display title, resolved via the fallback chain
	// title -> name -> car_model.name -> PlaceholderTitle.
	Title string `json:"title"`

	// Content describes the work to perform.
	Content string `json:"content"`

	// ChassisNumber is the 8-digit vehicle identifier.
	ChassisNumber string `json:"chassis_number"`

	// Remark is optional free text.
	Remark string `json:"remark,omitempty"`

	// CompFlag is the completion flag (0 = open, nonzero = completed).
	// It is only changed through the dedicated complete endpoint.
	CompFlag int `json:"comp_flg"`

	// Completion is the target/completion calendar date as stored by the
	// server. May be empty; use CompletionDate to parse it.
	Completion string `json:"completion,omitempty"`

	// Master-data references.
	WorkID  int `json:"work_id"`
	CarID   int `json:"car_id"`
	ColorID int `json:"color_id"`
	UserID  int `json:"user_id"`
	AdminID int `json:"admin_id,omitempty"`

	// Name is the car model name.
	Name string `json:"name,omitempty"`

	// Code is the color code.
	Code string `json:"code,omitempty"`

	// UserName is the assigned user's name.
	UserName string `json:"u_name,omitempty"`

	// AdminName is the managing admin's name.
	AdminName string `json:"admin_name,omitempty"`
}

// IsCompleted reports whether the task's completion flag is set.
func (t Task) IsCompleted() bool {
	return t.CompFlag != CompFlagOpen
}

// CompletionDate parses the task's completion value as a calendar date,
// discarding any time-of-day component. It reports false when the value is
// empty or unparsable.
func (t Task) CompletionDate() (time.Time, bool) {
	return ParseDate(t.Completion)
}

// dateLayouts are the accepted forms for completion values. The server
// stores plain dates but older records carry a full timestamp.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses a stored date value, accepting a plain calendar date or a
// timestamp. It reports false for empty or unparsable input.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// DateKey re-serializes a parsed date as the ISO YYYY-MM-DD key used
// throughout the calendar.
func DateKey(date time.Time) string {
	return date.Format(DateLayout)
}
