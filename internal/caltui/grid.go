package caltui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vctasks/vct/internal/ui"
	"github.com/vctasks/vct/task"
)

var weekdayHeadings = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// MonthOf truncates a time to the first day of its month.
func MonthOf(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), 1, 0, 0, 0, 0, value.Location())
}

// ParseMonth parses a YYYY-MM month reference.
func ParseMonth(value string) (time.Time, error) {
	month, err := time.Parse("2006-01", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %w", value, err)
	}
	return month, nil
}

// MonthGrid lays out a month as Sunday-first weeks. Cells outside the month
// are the zero time.
func MonthGrid(month time.Time) [][7]time.Time {
	first := MonthOf(month)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var weeks [][7]time.Time
	var week [7]time.Time
	column := int(first.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		week[column] = first.AddDate(0, 0, day-1)
		column++
		if column == 7 {
			weeks = append(weeks, week)
			week = [7]time.Time{}
			column = 0
		}
	}
	if column > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// TasksOn returns the tasks whose completion date matches the given
// YYYY-MM-DD key, in input order.
func TasksOn(tasks []task.Task, dateKey string) []task.Task {
	var matched []task.Task
	for _, t := range tasks {
		date, ok := t.CompletionDate()
		if !ok {
			continue
		}
		if task.DateKey(date) == dateKey {
			matched = append(matched, t)
		}
	}
	return matched
}

// RenderPlainMonth renders a month grid with markings for non-interactive
// output. Marked days carry a density dot and the selected day is
// highlighted.
func RenderPlainMonth(month time.Time, markings map[string]task.Marking) string {
	var b strings.Builder
	b.WriteString(ui.Bold(month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(strings.Join(weekdayHeadings, "  "))
	b.WriteString("\n")

	for _, week := range MonthGrid(month) {
		cells := make([]string, 0, 7)
		for _, day := range week {
			cells = append(cells, plainDayCell(day, markings))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func plainDayCell(day time.Time, markings map[string]task.Marking) string {
	if day.IsZero() {
		return "   "
	}
	marking := markings[task.DateKey(day)]
	number := fmt.Sprintf("%2d", day.Day())
	if marking.Selected {
		number = ui.Highlight(number)
	}
	if marking.Marked {
		return number + ui.Dot(marking.DotColor)
	}
	return number + " "
}
