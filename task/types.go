package task

// DateLayout is the ISO calendar-date form used for completion dates,
// calendar keys, and the list date filter.
const DateLayout = "2006-01-02"

// Completion flag values for Task.CompFlag.
const (
	// CompFlagOpen marks a task that still needs work.
	CompFlagOpen = 0

	// CompFlagDone marks a completed task.
	CompFlagDone = 1
)

// PlaceholderTitle is used when neither the task nor its car model provides
// a displayable title.
const PlaceholderTitle = "Untitled task"

// Fallback display values applied during normalization.
const (
	placeholderContent = "No Content"
	placeholderChassis = "No Car Number"
)

// ChassisNumberLength is the required number of digits in a chassis number.
const ChassisNumberLength = 8
