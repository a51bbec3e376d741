package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/vctasks/vct/task"
)

// DraftData represents the data used to render the TOML template.
type DraftData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task id (only for updates).
	ID string
	// WorkID, CarID, ColorID, UserID are the master-data selections.
	WorkID  int
	CarID   int
	ColorID int
	UserID  int
	// ChassisNumber is the 8-digit vehicle identifier.
	ChassisNumber string
	// Completion is the target date (YYYY-MM-DD).
	Completion string
	// Remark is optional free text, edited below the separator.
	Remark string
}

// DefaultCreateData returns DraftData seeded for a new task: the first item
// of each master table is preselected and the completion date defaults to
// today.
func DefaultCreateData(master task.MasterData, now time.Time) DraftData {
	data := DraftData{Completion: now.Format(task.DateLayout)}
	if len(master.Works) > 0 {
		data.WorkID = master.Works[0].ID
	}
	if len(master.CarModels) > 0 {
		data.CarID = master.CarModels[0].ID
	}
	if len(master.Colors) > 0 {
		data.ColorID = master.Colors[0].ID
	}
	if len(master.Users) > 0 {
		data.UserID = master.Users[0].ID
	}
	return data
}

// DataFromTask creates DraftData from an existing task for editing.
func DataFromTask(t task.Task) DraftData {
	return DraftData{
		IsUpdate:      true,
		ID:            t.ID,
		WorkID:        t.WorkID,
		CarID:         t.CarID,
		ColorID:       t.ColorID,
		UserID:        t.UserID,
		ChassisNumber: t.ChassisNumber,
		Completion:    t.Completion,
		Remark:        t.Remark,
	}
}

var draftTemplate = template.Must(template.New("draft").Parse(`work_id = {{ .WorkID }} # work type id (see 'vct masters')
car_id = {{ .CarID }} # car model id
chassis_number = {{ printf "%q" .ChassisNumber }} # 8 digits
color_id = {{ .ColorID }} # color id
user_id = {{ .UserID }} # assigned user id
completion = {{ printf "%q" .Completion }} # YYYY-MM-DD
---
{{ .Remark }}
`))

// RenderDraftTOML renders the draft data as a TOML string for editing.
// Everything below the --- separator is the free-text remark.
func RenderDraftTOML(data DraftData) (string, error) {
	var buf bytes.Buffer
	if err := draftTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedDraft represents the parsed result from the TOML editor output.
type ParsedDraft struct {
	WorkID        int    `toml:"work_id"`
	CarID         int    `toml:"car_id"`
	ChassisNumber string `toml:"chassis_number"`
	ColorID       int    `toml:"color_id"`
	UserID        int    `toml:"user_id"`
	Completion    string `toml:"completion"`
	Remark        string
}

// ParseDraftTOML parses the TOML content from the editor and validates the
// client-side constraints before anything reaches the network.
func ParseDraftTOML(content string) (*ParsedDraft, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedDraft
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Remark = strings.TrimSpace(body)
	parsed.ChassisNumber = strings.TrimSpace(parsed.ChassisNumber)
	parsed.Completion = strings.TrimSpace(parsed.Completion)

	if err := task.ValidateDraft(parsed.toDraftShape()); err != nil {
		return nil, err
	}

	return &parsed, nil
}

// ToDraft converts the parsed result to a submission draft, resolving the
// display names from the master bundle.
func (p *ParsedDraft) ToDraft(master task.MasterData) task.Draft {
	draft := p.toDraftShape()
	draft.ResolveNames(master)
	return draft
}

func (p *ParsedDraft) toDraftShape() task.Draft {
	return task.Draft{
		WorkID:        p.WorkID,
		CarID:         p.CarID,
		ColorID:       p.ColorID,
		UserID:        p.UserID,
		ChassisNumber: p.ChassisNumber,
		Remark:        p.Remark,
		Completion:    p.Completion,
	}
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditDraft opens the editor with pre-populated data and returns the parsed
// result.
func EditDraft(data DraftData) (*ParsedDraft, error) {
	content, err := RenderDraftTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "vct-task-*.toml")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseDraftTOML(string(edited))
}
