// Package caltui implements the interactive calendar screen: a month grid
// with per-day density markings, a task pane scoped to the focused day, and
// confirm-gated completion and deletion.
package caltui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vctasks/vct/task"
)

type focusPane int

const (
	focusCalendar focusPane = iota
	focusTasks
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type model struct {
	ctx    context.Context
	store  *task.Store
	width  int
	height int

	month  time.Time
	cursor time.Time
	focus  focusPane

	taskList list.Model

	pending       *task.ConfirmRequest
	modalSelected int

	status      string
	statusLevel statusLevel
}

// Run starts the calendar program on the given store and blocks until the
// user quits.
func Run(ctx context.Context, store *task.Store, start time.Time) error {
	if store == nil {
		return fmt.Errorf("task store is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(ctx, store, start), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, store *task.Store, start time.Time) model {
	taskList := list.New(nil, newTaskItemDelegate(), 0, 0)
	taskList.Title = "Tasks"
	taskList.SetShowStatusBar(false)
	taskList.SetFilteringEnabled(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)

	return model{
		ctx:      ctx,
		store:    store,
		month:    MonthOf(start),
		cursor:   start,
		focus:    focusCalendar,
		taskList: taskList,
	}
}

func (m model) Init() tea.Cmd {
	return m.fetchTasksCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.pending != nil {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg)
	case confirmResolvedMsg:
		return m.handleConfirmResolved(msg)
	}

	if m.focus == focusTasks {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		if m.focus == focusCalendar {
			m.focus = focusTasks
		} else {
			m.focus = focusCalendar
		}
		return m, nil
	case "r":
		m.setStatus("Refreshing...", statusInfo)
		return m, m.fetchTasksCmd()
	}

	if m.focus == focusCalendar {
		return m.handleCalendarKey(msg.String())
	}
	return m.handleTasksKey(msg)
}

func (m model) handleCalendarKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		return m.moveCursor(0, -1), nil
	case "right", "l":
		return m.moveCursor(0, 1), nil
	case "up", "k":
		return m.moveCursor(0, -7), nil
	case "down", "j":
		return m.moveCursor(0, 7), nil
	case "pgup", "[":
		return m.moveCursor(-1, 0), nil
	case "pgdown", "]":
		return m.moveCursor(1, 0), nil
	case "t":
		now := time.Now()
		m.cursor = now
		m.month = MonthOf(now)
		return m, nil
	case "enter", " ":
		return m, m.selectDateCmd(task.DateKey(m.cursor))
	}
	return m, nil
}

func (m model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusCalendar
		return m, nil
	case "enter":
		if item, ok := m.currentTaskItem(); ok {
			m.store.SelectTask(item.task.ID)
		}
		return m, nil
	case "c":
		if item, ok := m.currentTaskItem(); ok {
			request := m.store.RequestComplete(item.task.ID)
			m.pending = &request
			m.modalSelected = 1
		}
		return m, nil
	case "d", "x":
		if item, ok := m.currentTaskItem(); ok {
			request := m.store.RequestDelete(item.task.ID)
			m.pending = &request
			m.modalSelected = 1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m model) moveCursor(months, days int) model {
	if months != 0 {
		m.month = m.month.AddDate(0, months, 0)
		m.cursor = m.month
		return m
	}
	m.cursor = m.cursor.AddDate(0, 0, days)
	m.month = MonthOf(m.cursor)
	return m
}

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "backtab":
		if m.modalSelected == 0 {
			m.modalSelected = 1
		} else {
			m.modalSelected = 0
		}
		return m, nil
	case "enter":
		confirm := m.modalSelected == 0
		m.pending = nil
		if !confirm {
			m.store.CancelPending()
			return m, nil
		}
		return m, m.confirmPendingCmd()
	case "esc":
		m.pending = nil
		m.store.CancelPending()
		return m, nil
	}
	return m, nil
}

func (m model) handleTasksLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(m.store.Err(), statusError)
	} else {
		m.setStatus("", statusNone)
	}
	m.syncTaskItems()
	return m, nil
}

func (m model) handleConfirmResolved(msg confirmResolvedMsg) (tea.Model, tea.Cmd) {
	level := statusInfo
	if msg.notice.IsError {
		level = statusError
	}
	m.setStatus(msg.notice.Message, level)
	m.store.ClearNotice()
	m.syncTaskItems()
	return m, nil
}

func (m *model) syncTaskItems() {
	tasks := m.store.Tasks()
	selectedDate := m.store.SelectedDate()
	if selectedDate != "" {
		tasks = TasksOn(tasks, selectedDate)
	}

	previousID := ""
	if item, ok := m.currentTaskItem(); ok {
		previousID = item.task.ID
	}

	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{task: t})
	}
	m.taskList.SetItems(items)
	if previousID != "" {
		for i, item := range items {
			if item.(taskItem).task.ID == previousID {
				m.taskList.Select(i)
				break
			}
		}
	}
	if len(items) > 0 && m.taskList.Index() < 0 {
		m.taskList.Select(0)
	}
}

func (m model) currentTaskItem() (taskItem, bool) {
	item := m.taskList.SelectedItem()
	if item == nil {
		return taskItem{}, false
	}
	current, ok := item.(taskItem)
	return current, ok
}

func (m model) fetchTasksCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.store.FetchTasks(m.ctx, m.store.SelectedDate())
		return tasksLoadedMsg{err: err}
	}
}

func (m model) selectDateCmd(date string) tea.Cmd {
	return func() tea.Msg {
		err := m.store.SelectDate(m.ctx, date)
		return tasksLoadedMsg{err: err}
	}
}

func (m model) confirmPendingCmd() tea.Cmd {
	return func() tea.Msg {
		notice, err := m.store.ConfirmPending(m.ctx)
		return confirmResolvedMsg{notice: notice, err: err}
	}
}

func (m *model) resize() {
	m.taskList.SetSize(m.taskPaneWidth()-4, m.contentHeight()-2)
}

func (m model) contentHeight() int {
	height := m.height - 3
	if height < 1 {
		height = 1
	}
	return height
}

func (m model) calendarPaneWidth() int {
	width := 7*4 + 6
	if width > m.width/2 {
		width = m.width / 2
	}
	if width < 20 {
		width = 20
	}
	return width
}

func (m model) taskPaneWidth() int {
	width := m.width - m.calendarPaneWidth()
	if width < 20 {
		width = 20
	}
	return width
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading calendar..."
	}

	calendarPane := m.renderPane(m.renderCalendar(), m.calendarPaneWidth(), m.contentHeight(), m.focus == focusCalendar)
	taskPane := m.renderPane(m.renderTaskPane(), m.taskPaneWidth(), m.contentHeight(), m.focus == focusTasks)
	content := lipgloss.JoinHorizontal(lipgloss.Top, calendarPane, taskPane)

	view := strings.Join([]string{m.renderTitle(), content, m.renderStatusLine()}, "\n")
	if m.pending != nil {
		view = m.renderModalOverlay()
	}
	return view
}

func (m model) renderTitle() string {
	title := titleBarStyle.Render(m.month.Format("January 2006"))
	hint := valueMuted.Render("arrows move | [/] month | enter select | tab tasks | q quit")
	spacerWidth := m.width - lipgloss.Width(title) - lipgloss.Width(hint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return title + strings.Repeat(" ", spacerWidth) + hint
}

func (m model) renderCalendar() string {
	markings := m.store.Markings()
	cursorKey := task.DateKey(m.cursor)

	headings := make([]string, 0, 7)
	for _, day := range weekdayHeadings {
		headings = append(headings, weekdayStyle.Render(" "+day+" "))
	}
	lines := []string{strings.Join(headings, "")}

	for _, week := range MonthGrid(m.month) {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cells = append(cells, m.renderDayCell(day, markings, cursorKey))
		}
		lines = append(lines, strings.Join(cells, ""))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderDayCell(day time.Time, markings map[string]task.Marking, cursorKey string) string {
	if day.IsZero() {
		return dayStyle.Render("  ")
	}
	key := task.DateKey(day)
	marking := markings[key]

	number := fmt.Sprintf("%2d", day.Day())
	dot := " "
	if marking.Marked {
		dot = dotGreenStyle.Render("●")
		if marking.DotColor == task.DotColorRed {
			dot = dotRedStyle.Render("●")
		}
	}

	style := dayStyle
	if marking.Selected {
		style = selectedStyle
	}
	if key == cursorKey {
		style = cursorStyle
	}
	return style.Render(number) + dot
}

func (m model) renderTaskPane() string {
	header := labelStyle.Render(m.taskPaneTitle())
	return header + "\n" + m.taskList.View()
}

func (m model) taskPaneTitle() string {
	selectedDate := m.store.SelectedDate()
	if selectedDate == "" {
		return "All tasks"
	}
	return "Tasks on " + selectedDate
}

func (m model) renderPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = paneActiveStyle
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return style.Width(width).Height(height).Render(content)
}

func (m model) renderStatusLine() string {
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(truncateText(m.status, m.width))
}

func (m model) renderModalOverlay() string {
	if m.pending == nil {
		return ""
	}
	buttons := make([]string, 0, 2)
	for i, option := range []string{m.pending.ConfirmText, m.pending.CancelText} {
		style := valueMuted
		if i == m.modalSelected {
			style = selectedBorder
		}
		buttons = append(buttons, style.Render("["+option+"]"))
	}
	width := m.modalTextWidth()
	content := strings.Join([]string{
		labelStyle.Render(wrapDialogText(m.pending.Title, width)),
		wrapDialogText(m.pending.Message, width),
		"",
		strings.Join(buttons, " "),
	}, "\n")
	modalStyle := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modalStyle.Render(content))
}

// modalTextWidth leaves room for the modal border and padding so a long
// server message never renders wider than the terminal.
func (m model) modalTextWidth() int {
	width := m.width - 8
	if width > 60 {
		width = 60
	}
	if width < 20 {
		width = 20
	}
	return width
}

func wrapDialogText(value string, width int) string {
	if width < 1 {
		width = 1
	}
	return wordwrap.String(value, width)
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}

type tasksLoadedMsg struct {
	err error
}

type confirmResolvedMsg struct {
	notice task.Notice
	err    error
}
