// Package api implements the HTTP client for the workshop task API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	internalstrings "github.com/vctasks/vct/internal/strings"
	"github.com/vctasks/vct/task"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost/api"

// Client calls the task API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the given address or URL. A zero timeout
// leaves the transport's default in place.
func NewClient(addr string, timeout time.Duration) *Client {
	if addr == "" {
		addr = DefaultBaseURL
	}
	baseURL := internalstrings.TrimTrailingSlash(addr)
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &Client{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

// ListTasks retrieves tasks, optionally filtered to a single calendar date.
// The date decomposes into year/month/day query parameters.
func (c *Client) ListTasks(ctx context.Context, date string) ([]task.Record, error) {
	endpoint := c.baseURL + "/tasks"
	if date != "" {
		if _, ok := task.ParseDate(date); !ok {
			return nil, fmt.Errorf("invalid date filter %q", date)
		}
		parts := strings.SplitN(date, "-", 3)
		query := url.Values{}
		query.Set("year", parts[0])
		query.Set("month", parts[1])
		query.Set("day", parts[2])
		endpoint += "?" + query.Encode()
	}

	var records []task.Record
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &records, http.StatusOK); err != nil {
		return nil, err
	}
	return records, nil
}

// GetTask fetches a single record, used to seed the edit form.
func (c *Client) GetTask(ctx context.Context, id string) (task.Record, error) {
	var record task.Record
	err := c.do(ctx, http.MethodGet, c.taskURL(id), nil, &record, http.StatusOK)
	return record, err
}

// MasterData fetches the reference bundle for the create form.
func (c *Client) MasterData(ctx context.Context) (task.MasterData, error) {
	var master task.MasterData
	err := c.do(ctx, http.MethodGet, c.baseURL+"/tasks/create/init", nil, &master, http.StatusOK)
	return master, err
}

// CreateTask posts a draft. Both 200 and 201 count as success.
func (c *Client) CreateTask(ctx context.Context, draft task.Draft) error {
	return c.do(ctx, http.MethodPost, c.baseURL+"/tasks", draft, nil, http.StatusOK, http.StatusCreated)
}

// UpdateTask submits a full replacement of the record.
func (c *Client) UpdateTask(ctx context.Context, id string, draft task.Draft) error {
	return c.do(ctx, http.MethodPut, c.taskURL(id), draft, nil, http.StatusOK)
}

// CompleteTask transitions the task's completion flag via the dedicated
// endpoint. The request carries no body.
func (c *Client) CompleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, c.taskURL(id)+"/complete", nil, nil, http.StatusOK)
}

// DeleteTask removes the task. Both 200 and 204 count as success.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(id), nil, nil, http.StatusOK, http.StatusNoContent)
}

func (c *Client) taskURL(id string) string {
	return c.baseURL + "/tasks/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any, dest any, accepted ...int) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !statusAccepted(resp.StatusCode, accepted) {
		return readErrorResponse(resp)
	}

	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusAccepted(status int, accepted []int) bool {
	for _, code := range accepted {
		if status == code {
			return true
		}
	}
	return false
}

// errorBody is the expected failure shape: field-level validation messages
// and/or a single message.
type errorBody struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

func readErrorResponse(resp *http.Response) error {
	apiErr := &task.APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}

	var payload errorBody
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&payload); err == nil {
		apiErr.Message = payload.Message
		if len(payload.Errors) > 0 {
			apiErr.Fields = payload.Errors
		}
	}

	return apiErr
}
