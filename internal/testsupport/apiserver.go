// Package testsupport provides the stub workshop API server and testscript
// plumbing shared by the CLI tests.
package testsupport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/vctasks/vct/task"
)

// APIServer is an in-memory stand-in for the workshop task API. It serves
// the same routes and payload shapes the real backend does, including
// field-level validation errors, so CLI tests exercise the full
// request/response path.
type APIServer struct {
	mu      sync.Mutex
	nextID  int
	records []task.Record
	master  task.MasterData
}

// NewAPIServer returns a server seeded with a fixed master-data bundle and
// no tasks.
func NewAPIServer() *APIServer {
	return &APIServer{
		nextID: 1,
		master: task.MasterData{
			Works: []task.MasterItem{
				{ID: 1, Content: "Full body coating"},
				{ID: 2, Content: "Bumper respray"},
				{ID: 3, Content: "Wheel refurbishment"},
			},
			CarModels: []task.MasterItem{
				{ID: 1, Name: "Corolla", Number: "E210"},
				{ID: 2, Name: "Civic", Number: "FL1"},
			},
			Colors: []task.MasterItem{
				{ID: 1, Code: "1G3", ColorCode: "#8E8E8E"},
				{ID: 2, Code: "040", ColorCode: "#FFFFFF"},
			},
			Users: []task.MasterItem{
				{ID: 1, Name: "Sato"},
				{ID: 2, Name: "Tanaka"},
			},
		},
	}
}

// Seed inserts a record directly, assigning the next id when the record has
// none. It returns the stored record.
func (s *APIServer) Seed(record task.Record) task.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = json.Number(strconv.Itoa(s.nextID))
		s.nextID++
	}
	s.records = append(s.records, record)
	return record
}

// Handler returns the API routes.
func (s *APIServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/tasks", s.handleList)
	mux.HandleFunc("POST /api/tasks", s.handleCreate)
	mux.HandleFunc("GET /api/tasks/create/init", s.handleMasterData)
	mux.HandleFunc("GET /api/tasks/{id}", s.handleGet)
	mux.HandleFunc("PUT /api/tasks/{id}", s.handleUpdate)
	mux.HandleFunc("PUT /api/tasks/{id}/complete", s.handleComplete)
	mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDelete)
	return mux
}

func (s *APIServer) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := r.URL.Query()
	year, month, day := query.Get("year"), query.Get("month"), query.Get("day")

	matched := make([]task.Record, 0, len(s.records))
	for _, record := range s.records {
		if year != "" && !completionMatches(record.Completion, year, month, day) {
			continue
		}
		matched = append(matched, record)
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *APIServer) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.find(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Task not found.", nil)
		return
	}
	writeJSON(w, http.StatusOK, s.records[index])
}

func (s *APIServer) handleMasterData(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.master)
}

func (s *APIServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft task.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := validateDraftFields(draft); len(fields) > 0 {
		writeError(w, http.StatusUnprocessableEntity, "", fields)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.recordFromDraft(draft)
	record.ID = json.Number(strconv.Itoa(s.nextID))
	s.nextID++
	s.records = append(s.records, record)
	writeJSON(w, http.StatusCreated, record)
}

func (s *APIServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var draft task.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.", nil)
		return
	}
	if fields := validateDraftFields(draft); len(fields) > 0 {
		writeError(w, http.StatusUnprocessableEntity, "", fields)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.find(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Task not found.", nil)
		return
	}
	record := s.recordFromDraft(draft)
	record.ID = s.records[index].ID
	record.CompFlag = s.records[index].CompFlag
	s.records[index] = record
	writeJSON(w, http.StatusOK, record)
}

func (s *APIServer) handleComplete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.find(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Task not found.", nil)
		return
	}
	s.records[index].CompFlag = task.CompFlagDone
	writeJSON(w, http.StatusOK, s.records[index])
}

func (s *APIServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, ok := s.find(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Task not found.", nil)
		return
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

func (s *APIServer) find(id string) (int, bool) {
	for i, record := range s.records {
		if record.ID.String() == id {
			return i, true
		}
	}
	return 0, false
}

func (s *APIServer) recordFromDraft(draft task.Draft) task.Record {
	return task.Record{
		Title:         draft.Title,
		Content:       draft.Content,
		Name:          draft.Name,
		ChassisNumber: draft.ChassisNumber,
		UserName:      draft.UserName,
		WorkID:        draft.WorkID,
		CarID:         draft.CarID,
		ColorID:       draft.ColorID,
		UserID:        draft.UserID,
		Remark:        draft.Remark,
		Completion:    draft.Completion,
	}
}

func validateDraftFields(draft task.Draft) map[string][]string {
	fields := map[string][]string{}
	if err := task.ValidateChassisNumber(draft.ChassisNumber); err != nil {
		fields["chassis_number"] = []string{"The chassis number must be 8 digits."}
	}
	if draft.WorkID == 0 {
		fields["work_id"] = []string{"The work field is required."}
	}
	if draft.CarID == 0 {
		fields["car_id"] = []string{"The car model field is required."}
	}
	if draft.ColorID == 0 {
		fields["color_id"] = []string{"The color field is required."}
	}
	if draft.UserID == 0 {
		fields["user_id"] = []string{"The user field is required."}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func completionMatches(completion, year, month, day string) bool {
	date, ok := task.ParseDate(completion)
	if !ok {
		return false
	}
	key := task.DateKey(date)
	parts := strings.SplitN(key, "-", 3)
	return parts[0] == padLeft(year, 4) && parts[1] == padLeft(month, 2) && parts[2] == padLeft(day, 2)
}

func padLeft(value string, width int) string {
	for len(value) < width {
		value = "0" + value
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fmt.Println("encode response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, fields map[string][]string) {
	body := struct {
		Errors  map[string][]string `json:"errors,omitempty"`
		Message string              `json:"message,omitempty"`
	}{Errors: fields, Message: message}
	writeJSON(w, status, body)
}
