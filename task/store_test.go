package task

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

// fakeClient implements Client against an in-memory record list.
type fakeClient struct {
	mu      sync.Mutex
	records []Record

	listErr     error
	createErr   error
	updateErr   error
	completeErr error
	deleteErr   error

	listDates []string
	creates   []Draft
	updates   []string
	completes []string
	deletes   []string
}

func (c *fakeClient) ListTasks(ctx context.Context, date string) ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listDates = append(c.listDates, date)
	if c.listErr != nil {
		return nil, c.listErr
	}
	return append([]Record(nil), c.records...), nil
}

func (c *fakeClient) CreateTask(ctx context.Context, draft Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creates = append(c.creates, draft)
	return c.createErr
}

func (c *fakeClient) UpdateTask(ctx context.Context, id string, draft Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, id)
	return c.updateErr
}

func (c *fakeClient) CompleteTask(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completes = append(c.completes, id)
	return c.completeErr
}

func (c *fakeClient) DeleteTask(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, id)
	if c.deleteErr != nil {
		return c.deleteErr
	}
	kept := c.records[:0]
	for _, record := range c.records {
		if record.ID.String() != id {
			kept = append(kept, record)
		}
	}
	c.records = kept
	return nil
}

func (c *fakeClient) listCallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listDates)
}

func TestStore_FetchTasks_ReplacesList(t *testing.T) {
	client := &fakeClient{records: []Record{{ID: "1", Title: "Respray"}, {ID: "2"}}}
	store := NewStore(client)

	if err := store.FetchTasks(context.Background(), ""); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	tasks := store.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "1" || tasks[0].Title != "Respray" {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
	if store.Loading() {
		t.Error("expected loading to clear after fetch")
	}
}

func TestStore_FetchTasks_FailureKeepsPreviousList(t *testing.T) {
	client := &fakeClient{records: []Record{{ID: "1"}}}
	store := NewStore(client)

	if err := store.FetchTasks(context.Background(), ""); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	client.listErr = errors.New("connection refused")
	if err := store.FetchTasks(context.Background(), ""); err == nil {
		t.Fatal("expected fetch error")
	}

	if len(store.Tasks()) != 1 {
		t.Error("expected the previous list to survive a failed fetch")
	}
	if store.Err() != fetchFailedMessage {
		t.Errorf("expected %q, got %q", fetchFailedMessage, store.Err())
	}
	if store.Loading() {
		t.Error("expected loading to clear after a failed fetch")
	}
}

func TestStore_CreateTask_InvalidDraftSkipsNetwork(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client)

	draft := validDraft()
	draft.ChassisNumber = "1234567a"

	err := store.CreateTask(context.Background(), draft)
	if !errors.Is(err, ErrInvalidChassisNumber) {
		t.Fatalf("expected chassis validation error, got %v", err)
	}
	if len(client.creates) != 0 {
		t.Error("expected no network call for an invalid draft")
	}
	if client.listCallCount() != 0 {
		t.Error("expected no refresh for an invalid draft")
	}
	if store.Err() == "" {
		t.Error("expected a local error message")
	}
}

func TestStore_CreateTask_MissingSelectionSkipsNetwork(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client)

	draft := validDraft()
	draft.ColorID = 0

	if err := store.CreateTask(context.Background(), draft); !errors.Is(err, ErrMissingColor) {
		t.Fatalf("expected ErrMissingColor, got %v", err)
	}
	if len(client.creates) != 0 {
		t.Error("expected no network call when a selection is missing")
	}
}

func TestStore_CreateTask_RefreshesOnce(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client)

	if err := store.CreateTask(context.Background(), validDraft()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(client.creates) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(client.creates))
	}
	if client.listCallCount() != 1 {
		t.Errorf("expected exactly 1 follow-up list call, got %d", client.listCallCount())
	}
	notice := store.Notice()
	if notice == nil || notice.IsError {
		t.Errorf("expected a success notice, got %+v", notice)
	}
}

func TestStore_CreateTask_RefreshKeepsDateFilter(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client)

	if err := store.SelectDate(context.Background(), "2024-06-01"); err != nil {
		t.Fatalf("select date failed: %v", err)
	}
	if err := store.CreateTask(context.Background(), validDraft()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	client.mu.Lock()
	last := client.listDates[len(client.listDates)-1]
	client.mu.Unlock()
	if last != "2024-06-01" {
		t.Errorf("expected the refresh to keep the date filter, got %q", last)
	}
}

func TestStore_CreateTask_FailedRefreshDoesNotFailMutation(t *testing.T) {
	client := &fakeClient{records: []Record{{ID: "1"}}}
	store := NewStore(client)

	if err := store.FetchTasks(context.Background(), ""); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	client.listErr = errors.New("connection refused")
	if err := store.CreateTask(context.Background(), validDraft()); err != nil {
		t.Fatalf("expected the accepted create to succeed, got %v", err)
	}

	notice := store.Notice()
	if notice == nil || notice.IsError || notice.Message != "Task registered." {
		t.Errorf("expected the success notice to survive, got %+v", notice)
	}
	if store.Err() != fetchFailedMessage {
		t.Errorf("expected the refresh failure in Err(), got %q", store.Err())
	}
	if len(store.Tasks()) != 1 {
		t.Error("expected the previous list to survive the failed refresh")
	}
}

func TestStore_UpdateTask_FailedRefreshDoesNotFailMutation(t *testing.T) {
	client := &fakeClient{listErr: errors.New("connection refused")}
	store := NewStore(client)

	if err := store.UpdateTask(context.Background(), "7", validDraft()); err != nil {
		t.Fatalf("expected the accepted update to succeed, got %v", err)
	}
	if len(client.updates) != 1 {
		t.Fatalf("unexpected update calls: %v", client.updates)
	}
	if store.Err() != fetchFailedMessage {
		t.Errorf("expected the refresh failure in Err(), got %q", store.Err())
	}
}

func TestStore_ConfirmComplete_FailedRefreshKeepsSuccess(t *testing.T) {
	client := &fakeClient{listErr: errors.New("connection refused")}
	store := NewStore(client)

	store.RequestComplete("9")
	notice, err := store.ConfirmPending(context.Background())
	if err != nil {
		t.Fatalf("expected the accepted completion to succeed, got %v", err)
	}
	if notice.IsError || notice.Message != "Task completed." {
		t.Errorf("expected the success notice, got %+v", notice)
	}
	if store.Err() != fetchFailedMessage {
		t.Errorf("expected the refresh failure in Err(), got %q", store.Err())
	}
}

func TestStore_CreateTask_FormatsServerFieldErrors(t *testing.T) {
	client := &fakeClient{createErr: &APIError{
		StatusCode: 422,
		Status:     "422 Unprocessable Entity",
		Fields:     map[string][]string{"chassis_number": {"must be 8 digits"}},
	}}
	store := NewStore(client)

	if err := store.CreateTask(context.Background(), validDraft()); err == nil {
		t.Fatal("expected create to fail")
	}

	if !strings.Contains(store.Err(), "must be 8 digits") {
		t.Errorf("expected the field message in the stored error, got %q", store.Err())
	}
	if client.listCallCount() != 0 {
		t.Error("expected no refresh after a failed create")
	}
}

func TestStore_UpdateTask_Refreshes(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client)

	if err := store.UpdateTask(context.Background(), "7", validDraft()); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(client.updates) != 1 || client.updates[0] != "7" {
		t.Errorf("unexpected update calls: %v", client.updates)
	}
	if client.listCallCount() != 1 {
		t.Errorf("expected exactly 1 follow-up list call, got %d", client.listCallCount())
	}
}

func TestStore_ConfirmDelete_RemovesTask(t *testing.T) {
	client := &fakeClient{records: []Record{{ID: "42"}, {ID: "43"}}}
	store := NewStore(client)

	if err := store.FetchTasks(context.Background(), ""); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}
	store.SelectTask("42")

	store.RequestDelete("42")
	notice, err := store.ConfirmPending(context.Background())
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if notice.IsError {
		t.Errorf("expected a success notice, got %+v", notice)
	}

	for _, item := range store.Tasks() {
		if item.ID == "42" {
			t.Error("expected task 42 to be gone after the follow-up fetch")
		}
	}
	if store.SelectedID() != "" {
		t.Errorf("expected the deleted task's selection to clear, got %q", store.SelectedID())
	}
	if store.Pending() != nil {
		t.Error("expected the pending request to be consumed")
	}
}

func TestStore_RequestDelete_MessageCarriesID(t *testing.T) {
	store := NewStore(&fakeClient{})

	request := store.RequestDelete("42")

	if request.Kind != ConfirmDelete {
		t.Errorf("expected kind %q, got %q", ConfirmDelete, request.Kind)
	}
	if !strings.Contains(request.Message, "42") {
		t.Errorf("expected the task id in the message, got %q", request.Message)
	}
	if request.ConfirmText == "" || request.CancelText == "" {
		t.Errorf("expected explicit confirm and cancel labels, got %+v", request)
	}
}

func TestStore_CancelPending_NoNetworkCall(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client)

	store.RequestComplete("9")
	store.CancelPending()

	if len(client.completes) != 0 {
		t.Error("expected no network call after cancel")
	}
	if store.Pending() != nil {
		t.Error("expected the pending request to be cleared")
	}
	if _, err := store.ConfirmPending(context.Background()); !errors.Is(err, ErrNoPendingConfirmation) {
		t.Errorf("expected ErrNoPendingConfirmation after cancel, got %v", err)
	}
}

func TestStore_ConfirmComplete_CallsDedicatedEndpoint(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client)

	store.RequestComplete("9")
	if _, err := store.ConfirmPending(context.Background()); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	if len(client.completes) != 1 || client.completes[0] != "9" {
		t.Errorf("unexpected complete calls: %v", client.completes)
	}
	if client.listCallCount() != 1 {
		t.Errorf("expected a follow-up fetch, got %d list calls", client.listCallCount())
	}
}

func TestStore_ConfirmComplete_FailureNotice(t *testing.T) {
	client := &fakeClient{completeErr: &APIError{Status: "500 Internal Server Error"}}
	store := NewStore(client)

	store.RequestComplete("9")
	notice, err := store.ConfirmPending(context.Background())
	if err == nil {
		t.Fatal("expected confirm to fail")
	}
	if !notice.IsError {
		t.Errorf("expected an error notice, got %+v", notice)
	}
	if !strings.Contains(notice.Message, "500 Internal Server Error") {
		t.Errorf("expected the status in the notice, got %q", notice.Message)
	}
	if client.listCallCount() != 0 {
		t.Error("expected no refresh after a failed complete")
	}
}

func TestStore_SelectDate_TogglesFilterOff(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client)

	if err := store.SelectDate(context.Background(), "2024-06-01"); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if store.SelectedDate() != "2024-06-01" {
		t.Errorf("expected the date filter to stick, got %q", store.SelectedDate())
	}

	if err := store.SelectDate(context.Background(), "2024-06-01"); err != nil {
		t.Fatalf("reselect failed: %v", err)
	}
	if store.SelectedDate() != "" {
		t.Errorf("expected reselecting the date to clear the filter, got %q", store.SelectedDate())
	}

	client.mu.Lock()
	last := client.listDates[len(client.listDates)-1]
	client.mu.Unlock()
	if last != "" {
		t.Errorf("expected the toggled-off fetch to be unfiltered, got %q", last)
	}
}

func TestStore_SelectDate_RecomputesMarkings(t *testing.T) {
	client := &fakeClient{records: []Record{{ID: "1", Completion: "2024-06-01"}}}
	store := NewStore(client)

	if err := store.SelectDate(context.Background(), "2024-06-02"); err != nil {
		t.Fatalf("select failed: %v", err)
	}

	markings := store.Markings()
	if !markings["2024-06-01"].Marked {
		t.Error("expected the completion date to be marked")
	}
	if !markings["2024-06-02"].Selected {
		t.Error("expected the selected date to be highlighted")
	}
}

func TestStore_Subscribe_NotifiesAndUnsubscribes(t *testing.T) {
	store := NewStore(&fakeClient{})

	var calls int
	unsubscribe := store.Subscribe(func() { calls++ })

	store.SelectTask("1")
	if calls == 0 {
		t.Fatal("expected a notification after a state change")
	}

	calls = 0
	unsubscribe()
	store.SelectTask("2")
	if calls != 0 {
		t.Error("expected no notification after unsubscribe")
	}
}

func TestStore_Find(t *testing.T) {
	client := &fakeClient{records: []Record{{ID: "1", Title: "Respray"}}}
	store := NewStore(client)
	if err := store.FetchTasks(context.Background(), ""); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	found, err := store.Find("1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Title != "Respray" {
		t.Errorf("unexpected task: %+v", found)
	}

	if _, err := store.Find("99"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
