package task

import (
	"context"
	"fmt"
	"sync"
)

// fetchFailedMessage is shown when a list fetch fails. The previous list is
// kept so a transient error never flashes an empty screen.
const fetchFailedMessage = "Failed to fetch tasks."

// Client performs the remote API calls on behalf of the store. The date
// argument to ListTasks is an ISO calendar date, or empty for the full list.
type Client interface {
	ListTasks(ctx context.Context, date string) ([]Record, error)
	CreateTask(ctx context.Context, draft Draft) error
	UpdateTask(ctx context.Context, id string, draft Draft) error
	CompleteTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
}

// Prompter is used to ask the user for confirmation.
type Prompter interface {
	// Confirm asks the user a yes/no question and returns true if they say yes.
	Confirm(message string) (bool, error)
}

// StdioPrompter implements Prompter using stdin/stdout.
type StdioPrompter struct{}

// Confirm asks the user a yes/no question via stdin/stdout.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	fmt.Printf("%s [y/n]: ", message)
	var response string
	_, err := fmt.Scanln(&response)
	if err != nil {
		return false, err
	}
	return response == "y" || response == "Y" || response == "yes" || response == "Yes", nil
}

// Store is the single source of truth for the currently displayed task list
// and the UI state derived from it. One Store is constructed per application
// session; screens subscribe to it and read state through the accessors.
//
// Operations are serialized: at most one fetch or mutation runs at a time,
// and a refresh after a successful mutation happens inside the same
// operation. Accessors are safe to call from subscriber callbacks.
type Store struct {
	client Client

	// opMu serializes operations, held across the network round trip.
	opMu sync.Mutex

	mu           sync.Mutex
	tasks        []Task
	loading      bool
	lastError    string
	selectedID   string
	selectedDate string
	markings     map[string]Marking
	pending      *ConfirmRequest
	notice       *Notice

	subMu       sync.Mutex
	nextSubID   int
	subscribers map[int]func()
}

// NewStore creates a store backed by the given API client.
func NewStore(client Client) *Store {
	return &Store{
		client:      client,
		markings:    map[string]Marking{},
		subscribers: map[int]func(){},
	}
}

// Subscribe registers a callback invoked after every state change. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	callbacks := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.subMu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Tasks returns a copy of the current task list.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.tasks...)
}

// Find returns the task with the given id from the current list.
func (s *Store) Find(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// Loading reports whether an operation is in flight. It is advisory, for
// disabling controls; the store serializes operations itself.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last operation's formatted error message, or empty.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// SelectedID returns the currently selected task id, or empty.
func (s *Store) SelectedID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// SelectedDate returns the active calendar date filter, or empty.
func (s *Store) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

// Markings returns a copy of the derived calendar marking map.
func (s *Store) Markings() map[string]Marking {
	s.mu.Lock()
	defer s.mu.Unlock()
	markings := make(map[string]Marking, len(s.markings))
	for date, marking := range s.markings {
		markings[date] = marking
	}
	return markings
}

// Pending returns the outstanding confirmation request, if any.
func (s *Store) Pending() *ConfirmRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil
	}
	request := *s.pending
	return &request
}

// Notice returns the most recent result notice, if any.
func (s *Store) Notice() *Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notice == nil {
		return nil
	}
	notice := *s.notice
	return &notice
}

// ClearNotice dismisses the current result notice.
func (s *Store) ClearNotice() {
	s.mu.Lock()
	s.notice = nil
	s.mu.Unlock()
	s.notify()
}

// SelectTask records the selected task id.
func (s *Store) SelectTask(id string) {
	s.mu.Lock()
	s.selectedID = id
	s.mu.Unlock()
	s.notify()
}

// FetchTasks retrieves the task list, optionally filtered to a single
// calendar date. On success the in-memory list is replaced with the
// normalized response and the calendar markings recompute; on failure the
// previous list is left untouched and a human-readable message is stored.
func (s *Store) FetchTasks(ctx context.Context, date string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.fetchLocked(ctx, date)
}

// fetchLocked performs a fetch. Callers must hold opMu.
func (s *Store) fetchLocked(ctx context.Context, date string) error {
	s.beginOperation()

	records, err := s.client.ListTasks(ctx, date)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastError = fetchFailedMessage
		s.mu.Unlock()
		s.notify()
		return fmt.Errorf("fetch tasks: %w", err)
	}
	s.tasks = NormalizeAll(records)
	s.markings = DeriveMarkings(s.tasks, s.selectedDate)
	s.mu.Unlock()
	s.notify()
	return nil
}

// SelectDate sets the calendar date filter and refetches the list scoped to
// it. Selecting the already-selected date toggles the filter off.
func (s *Store) SelectDate(ctx context.Context, date string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	if date != "" && date == s.selectedDate {
		date = ""
	}
	s.selectedDate = date
	s.markings = DeriveMarkings(s.tasks, date)
	s.mu.Unlock()
	s.notify()

	return s.fetchLocked(ctx, date)
}

// CreateTask validates the draft and posts it. Invalid drafts fail fast
// with a local message and never reach the network. On success the list is
// refreshed, scoped to the selected date when a filter is active; a failing
// refresh does not turn the accepted mutation into an error.
func (s *Store) CreateTask(ctx context.Context, draft Draft) error {
	if err := s.validateDraft(draft); err != nil {
		return err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOperation()

	if err := s.client.CreateTask(ctx, draft); err != nil {
		return s.failOperation(OpCreate, err)
	}

	s.setNotice(successNotice("Task registered."))
	// The server accepted the task; a failed follow-up refresh keeps the
	// previous list and leaves its message in Err() without failing the
	// operation.
	_ = s.fetchLocked(ctx, s.SelectedDate())
	return nil
}

// UpdateTask validates the draft and submits a full replacement of the
// record, with the same validation and refresh behavior as CreateTask.
func (s *Store) UpdateTask(ctx context.Context, id string, draft Draft) error {
	if err := s.validateDraft(draft); err != nil {
		return err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOperation()

	if err := s.client.UpdateTask(ctx, id, draft); err != nil {
		return s.failOperation(OpUpdate, err)
	}

	s.setNotice(successNotice("Task updated."))
	_ = s.fetchLocked(ctx, s.SelectedDate())
	return nil
}

// RequestComplete stages a confirmation request for completing the task.
// Nothing is sent until ConfirmPending runs.
func (s *Store) RequestComplete(id string) ConfirmRequest {
	return s.stageRequest(newCompleteRequest(id))
}

// RequestDelete stages a confirmation request for deleting the task.
// Nothing is sent until ConfirmPending runs.
func (s *Store) RequestDelete(id string) ConfirmRequest {
	return s.stageRequest(newDeleteRequest(id))
}

func (s *Store) stageRequest(request ConfirmRequest) ConfirmRequest {
	s.mu.Lock()
	s.pending = &request
	s.mu.Unlock()
	s.notify()
	return request
}

// CancelPending dismisses the outstanding confirmation request, if any,
// without side effects.
func (s *Store) CancelPending() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
	s.notify()
}

// ConfirmPending executes the staged operation. The returned notice is the
// terminal result dialog: success, or the formatted error. The pending
// request is consumed either way.
func (s *Store) ConfirmPending(ctx context.Context) (Notice, error) {
	s.mu.Lock()
	request := s.pending
	s.pending = nil
	s.mu.Unlock()
	if request == nil {
		return Notice{}, ErrNoPendingConfirmation
	}
	s.notify()

	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOperation()

	switch request.Kind {
	case ConfirmComplete:
		if err := s.client.CompleteTask(ctx, request.TaskID); err != nil {
			return s.noticeFailure(OpComplete, err)
		}
		return s.noticeSuccess(ctx, "Task completed.")
	case ConfirmDelete:
		if err := s.client.DeleteTask(ctx, request.TaskID); err != nil {
			return s.noticeFailure(OpDelete, err)
		}
		s.mu.Lock()
		if s.selectedID == request.TaskID {
			s.selectedID = ""
		}
		s.mu.Unlock()
		return s.noticeSuccess(ctx, "Task deleted.")
	default:
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify()
		return Notice{}, fmt.Errorf("unknown confirmation kind %q", request.Kind)
	}
}

func (s *Store) validateDraft(draft Draft) error {
	if err := ValidateDraft(draft); err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.mu.Unlock()
		s.notify()
		return err
	}
	return nil
}

// beginOperation marks the store busy and clears the previous error.
func (s *Store) beginOperation() {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()
}

// failOperation records a formatted error and hands the original back,
// wrapped with the operation name.
func (s *Store) failOperation(op Operation, err error) error {
	s.mu.Lock()
	s.loading = false
	s.lastError = FormatError(op, err)
	s.mu.Unlock()
	s.notify()
	return fmt.Errorf("%s task: %w", op, err)
}

func (s *Store) noticeFailure(op Operation, err error) (Notice, error) {
	wrapped := s.failOperation(op, err)
	notice := errorNotice(FormatError(op, err))
	s.setNotice(notice)
	return notice, wrapped
}

func (s *Store) noticeSuccess(ctx context.Context, message string) (Notice, error) {
	notice := successNotice(message)
	s.setNotice(notice)
	_ = s.fetchLocked(ctx, s.SelectedDate())
	return notice, nil
}

func (s *Store) setNotice(notice Notice) {
	s.mu.Lock()
	s.notice = &notice
	s.mu.Unlock()
	s.notify()
}
