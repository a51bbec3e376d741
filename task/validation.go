package task

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrMissingWork is returned when a draft has no work-type selection.
	ErrMissingWork = errors.New("work type is required")

	// ErrMissingCar is returned when a draft has no car-model selection.
	ErrMissingCar = errors.New("car model is required")

	// ErrMissingColor is returned when a draft has no color selection.
	ErrMissingColor = errors.New("color is required")

	// ErrMissingUser is returned when a draft has no assigned user.
	ErrMissingUser = errors.New("assigned user is required")

	// ErrMissingChassisNumber is returned when a draft has no chassis number.
	ErrMissingChassisNumber = errors.New("chassis number is required")

	// ErrInvalidChassisNumber is returned when a chassis number is not
	// exactly eight ASCII digits.
	ErrInvalidChassisNumber = errors.New("chassis number must be 8 digits")

	// ErrInvalidCompletion is returned when a draft's completion value does
	// not parse as a calendar date.
	ErrInvalidCompletion = errors.New("completion must be a YYYY-MM-DD date")

	// ErrTaskNotFound is returned when a task with the given id is not in
	// the store's current list.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNoPendingConfirmation is returned when confirming or cancelling
	// without an outstanding confirmation request.
	ErrNoPendingConfirmation = errors.New("no pending confirmation")
)

var chassisNumberPattern = regexp.MustCompile(`^[0-9]{8}$`)

// ValidateChassisNumber checks that the value is exactly eight ASCII digits.
func ValidateChassisNumber(value string) error {
	if value == "" {
		return ErrMissingChassisNumber
	}
	if !chassisNumberPattern.MatchString(value) {
		return fmt.Errorf("%w: got %q", ErrInvalidChassisNumber, value)
	}
	return nil
}

// ValidateDraft checks the client-side constraints enforced before any
// request: the four master-data selections and the chassis number are
// required, the chassis number must be eight digits, and the completion
// date, when set, must parse.
func ValidateDraft(d Draft) error {
	if d.WorkID == 0 {
		return ErrMissingWork
	}
	if d.CarID == 0 {
		return ErrMissingCar
	}
	if d.ColorID == 0 {
		return ErrMissingColor
	}
	if d.UserID == 0 {
		return ErrMissingUser
	}
	if err := ValidateChassisNumber(d.ChassisNumber); err != nil {
		return err
	}
	if d.Completion != "" {
		if _, ok := ParseDate(d.Completion); !ok {
			return fmt.Errorf("%w: got %q", ErrInvalidCompletion, d.Completion)
		}
	}
	return nil
}
