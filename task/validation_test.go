package task

import (
	"errors"
	"testing"
)

func validDraft() Draft {
	return Draft{
		Title:         "Full respray",
		Content:       "Full respray",
		Name:          "Hiace",
		ChassisNumber: "12345678",
		WorkID:        1,
		CarID:         2,
		ColorID:       3,
		UserID:        4,
		Completion:    "2024-06-01",
	}
}

func TestValidateChassisNumber(t *testing.T) {
	if err := ValidateChassisNumber("12345678"); err != nil {
		t.Errorf("expected 8 digits to pass, got %v", err)
	}

	invalid := []string{"1234567", "123456789", "1234567a", "abcdefgh"}
	for _, value := range invalid {
		err := ValidateChassisNumber(value)
		if !errors.Is(err, ErrInvalidChassisNumber) {
			t.Errorf("expected %q to fail with ErrInvalidChassisNumber, got %v", value, err)
		}
	}

	if err := ValidateChassisNumber(""); !errors.Is(err, ErrMissingChassisNumber) {
		t.Errorf("expected empty value to fail with ErrMissingChassisNumber, got %v", err)
	}
}

func TestValidateDraft(t *testing.T) {
	if err := ValidateDraft(validDraft()); err != nil {
		t.Fatalf("expected valid draft to pass, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Draft)
		want   error
	}{
		{"missing work", func(d *Draft) { d.WorkID = 0 }, ErrMissingWork},
		{"missing car", func(d *Draft) { d.CarID = 0 }, ErrMissingCar},
		{"missing color", func(d *Draft) { d.ColorID = 0 }, ErrMissingColor},
		{"missing user", func(d *Draft) { d.UserID = 0 }, ErrMissingUser},
		{"missing chassis", func(d *Draft) { d.ChassisNumber = "" }, ErrMissingChassisNumber},
		{"short chassis", func(d *Draft) { d.ChassisNumber = "1234567" }, ErrInvalidChassisNumber},
		{"bad completion", func(d *Draft) { d.Completion = "June 1st" }, ErrInvalidCompletion},
	}

	for _, test := range tests {
		draft := validDraft()
		test.mutate(&draft)
		err := ValidateDraft(draft)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, err)
		}
	}
}

func TestValidateDraft_EmptyCompletionAllowed(t *testing.T) {
	draft := validDraft()
	draft.Completion = ""
	if err := ValidateDraft(draft); err != nil {
		t.Errorf("expected empty completion to be allowed, got %v", err)
	}
}
