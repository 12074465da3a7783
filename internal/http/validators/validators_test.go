package validators

import (
	"errors"
	"testing"
	"time"

	dto "todo-store.com/todo-store/internal/data_models"
	apperrors "todo-store.com/todo-store/internal/errors"
	model "todo-store.com/todo-store/pkg/models"
)

var (
	testLoc = time.FixedZone("UTC+2", 2*60*60)
	testNow = time.Date(2026, 10, 17, 14, 20, 0, 0, testLoc)
)

func strPtr(s string) *string { return &s }

func TestValidateCreateTaskRequest_NameRequired(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Name: "   "}, testNow, testLoc)
	if !errors.Is(err, apperrors.ErrTaskNameRequired) {
		t.Fatalf("err = %v, want %v", err, apperrors.ErrTaskNameRequired)
	}
}

func TestValidateCreateTaskRequest_DateAndTime(t *testing.T) {
	data, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Name:     " Buy milk ",
		DueDate:  "2026-10-18",
		Time:     "09:00",
		Category: "shopping",
	}, testNow, testLoc)
	if err != nil {
		t.Fatalf("err = %v", err)
	}

	want := time.Date(2026, 10, 18, 9, 0, 0, 0, testLoc)
	if data.Name != "Buy milk" || !data.DueDate.Equal(want) || data.Time != "09:00" || data.Category != "shopping" {
		t.Fatalf("data = %+v", data)
	}
}

func TestValidateCreateTaskRequest_DateWithoutTimeUsesNextHour(t *testing.T) {
	data, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Name: "x", DueDate: "2026-10-18"}, testNow, testLoc)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if data.Time != "15:00" || data.DueDate.Hour() != 15 {
		t.Fatalf("data = %+v, want 15:00", data)
	}
}

func TestValidateCreateTaskRequest_RFC3339DerivesTime(t *testing.T) {
	data, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Name: "x", DueDate: "2026-10-18T07:30:00Z"}, testNow, testLoc)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if data.Time != "09:30" {
		t.Fatalf("Time = %q, want 09:30 in UTC+2", data.Time)
	}
}

func TestValidateCreateTaskRequest_BadInput(t *testing.T) {
	_, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Name: "x", Time: "25:00"}, testNow, testLoc)
	if !errors.Is(err, apperrors.ErrInvalidTime) {
		t.Errorf("bad time err = %v", err)
	}

	_, err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{Name: "x", DueDate: "tomorrow"}, testNow, testLoc)
	if !errors.Is(err, apperrors.ErrInvalidDueDate) {
		t.Errorf("bad date err = %v", err)
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	current := model.Task{
		ID:      "t1",
		Name:    "old",
		DueDate: time.Date(2026, 10, 20, 8, 0, 0, 0, testLoc),
		Time:    "08:00",
	}

	patch, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Time: strPtr("10:15")}, current, testNow, testLoc)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if patch.Time == nil || *patch.Time != "10:15" {
		t.Fatalf("patch.Time = %v", patch.Time)
	}
	want := time.Date(2026, 10, 20, 10, 15, 0, 0, testLoc)
	if patch.DueDate == nil || !patch.DueDate.Equal(want) {
		t.Fatalf("patch.DueDate = %v, want %v", patch.DueDate, want)
	}

	patch, err = ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{DueDate: strPtr("2026-11-01")}, current, testNow, testLoc)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !patch.DueDate.Equal(time.Date(2026, 11, 1, 8, 0, 0, 0, testLoc)) || *patch.Time != "08:00" {
		t.Fatalf("date-only patch = %v %v, want current time kept", patch.DueDate, *patch.Time)
	}

	if _, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{}, current, testNow, testLoc); !errors.Is(err, apperrors.ErrEmptyPatch) {
		t.Errorf("empty patch err = %v", err)
	}
	if _, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Name: strPtr("")}, current, testNow, testLoc); !errors.Is(err, apperrors.ErrTaskNameRequired) {
		t.Errorf("empty name err = %v", err)
	}
}

func TestValidateUpdateTaskRequest_ClearingDueDateClearsTime(t *testing.T) {
	current := model.Task{
		ID:      "t1",
		Name:    "old",
		DueDate: time.Date(2026, 10, 20, 8, 0, 0, 0, testLoc),
		Time:    "08:00",
	}

	patch, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{DueDate: strPtr("")}, current, testNow, testLoc)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if patch.DueDate == nil || !patch.DueDate.IsZero() {
		t.Fatalf("patch.DueDate = %v, want zero", patch.DueDate)
	}
	if patch.Time == nil || *patch.Time != "" {
		t.Fatalf("patch.Time = %v, want empty", patch.Time)
	}

	updated := current
	patch.Apply(&updated)
	if !updated.DueDate.IsZero() || updated.Time != "" {
		t.Fatalf("updated task = %+v, want no due date and no time", updated)
	}
}
