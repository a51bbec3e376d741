package caltui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vctasks/vct/task"
)

type taskItem struct {
	task task.Task
}

func (item taskItem) FilterValue() string {
	return item.task.Title
}

type taskItemDelegate struct {
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	doneStyle     lipgloss.Style
}

func newTaskItemDelegate() taskItemDelegate {
	return taskItemDelegate{
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		doneStyle:     completedStyle,
	}
}

func (d taskItemDelegate) Height() int                             { return 1 }
func (d taskItemDelegate) Spacing() int                            { return 0 }
func (d taskItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(taskItem)
	if !ok {
		return
	}

	line := formatTaskItem(item.task, m.Width())
	style := d.normalStyle
	if index == m.Index() {
		style = d.selectedStyle
	} else if item.task.IsCompleted() {
		style = d.doneStyle
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTaskItem(t task.Task, width int) string {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = task.PlaceholderTitle
	}
	marker := " "
	if t.IsCompleted() {
		marker = "x"
	}
	line := fmt.Sprintf("[%s] %s  %s  %s", marker, t.ID, title, t.ChassisNumber)
	if t.UserName != "" {
		line += "  (" + t.UserName + ")"
	}
	return truncateText(line, width)
}
