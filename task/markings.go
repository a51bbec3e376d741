package task

// Dot and highlight colors for calendar markings.
const (
	DotColorGreen = "green"
	DotColorRed   = "red"

	// SelectedColor is the fixed highlight color for the selected date.
	SelectedColor = "blue"
)

// DenseDayCount is the per-day task count above which a day's dot turns red.
const DenseDayCount = 3

// Marking is the calendar display metadata for a single date.
type Marking struct {
	// Marked is true when at least one task completes on the date.
	Marked bool `json:"marked"`

	// DotColor is DotColorGreen for 1 to DenseDayCount tasks and
	// DotColorRed above that. Empty when Marked is false.
	DotColor string `json:"dot_color,omitempty"`

	// Count is the number of tasks completing on the date.
	Count int `json:"count,omitempty"`

	// Selected is true when the date is the currently selected one.
	Selected bool `json:"selected,omitempty"`

	// SelectedColor is the highlight color, set only when Selected is true.
	SelectedColor string `json:"selected_color,omitempty"`
}

// DeriveMarkings computes the date -> marking map for the calendar. Tasks
// are grouped by completion date (time-of-day discarded); tasks without a
// parsable completion value are skipped. The selected-date overlay is
// applied last so it wins over the density coloring, and it is present even
// when no task completes on that date. Dates with neither tasks nor
// selection are absent from the map.
func DeriveMarkings(tasks []Task, selectedDate string) map[string]Marking {
	markings := make(map[string]Marking)

	counts := make(map[string]int)
	for _, t := range tasks {
		date, ok := t.CompletionDate()
		if !ok {
			continue
		}
		counts[DateKey(date)]++
	}

	for date, count := range counts {
		color := DotColorGreen
		if count > DenseDayCount {
			color = DotColorRed
		}
		markings[date] = Marking{
			Marked:   true,
			DotColor: color,
			Count:    count,
		}
	}

	if selectedDate != "" {
		marking := markings[selectedDate]
		marking.Selected = true
		marking.SelectedColor = SelectedColor
		markings[selectedDate] = marking
	}

	return markings
}
