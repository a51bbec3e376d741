package main

import (
	"fmt"
	"strings"

	"github.com/vctasks/vct/internal/markdown"
	"github.com/vctasks/vct/internal/ui"
	"github.com/vctasks/vct/task"
)

const taskDetailLineWidth = 80

func formatTaskDetail(t task.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:         %s\n", ui.Bold(t.ID))
	fmt.Fprintf(&b, "Title:      %s\n", t.Title)
	fmt.Fprintf(&b, "Content:    %s\n", valueOrDash(t.Content))
	fmt.Fprintf(&b, "Car model:  %s\n", valueOrDash(t.Name))
	fmt.Fprintf(&b, "Chassis:    %s\n", valueOrDash(t.ChassisNumber))
	fmt.Fprintf(&b, "Color:      %s\n", valueOrDash(t.Code))
	fmt.Fprintf(&b, "User:       %s\n", valueOrDash(t.UserName))
	if t.AdminName != "" {
		fmt.Fprintf(&b, "Admin:      %s\n", t.AdminName)
	}
	fmt.Fprintf(&b, "Status:     %s\n", taskStatus(t))
	fmt.Fprintf(&b, "Completion: %s\n", valueOrDash(t.Completion))

	if t.Remark != "" {
		fmt.Fprintf(&b, "\nRemark:\n%s\n", markdown.Render(taskDetailLineWidth, t.Remark))
	}
	return b.String()
}

func taskStatus(t task.Task) string {
	if t.IsCompleted() {
		return "completed"
	}
	return "open"
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
