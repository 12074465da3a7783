package validators

import (
	"strings"
	"time"

	dto "todo-store.com/todo-store/internal/data_models"
	apperrors "todo-store.com/todo-store/internal/errors"
	model "todo-store.com/todo-store/pkg/models"
)

// ValidateUpdateTaskRequest builds a patch against current. A new due date
// without a time keeps the task's current time of day; an empty due date
// clears the time as well.
func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest, current model.Task, now time.Time, loc *time.Location) (model.TaskPatch, error) {
	patch := model.TaskPatch{
		Description: r.Description,
		Completed:   r.Completed,
	}

	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return model.TaskPatch{}, apperrors.ErrTaskNameRequired
		}
		patch.Name = &name
	}

	if r.Category != nil {
		category := strings.TrimSpace(*r.Category)
		patch.Category = &category
	}

	switch {
	case r.DueDate != nil:
		clock := current.Time
		if r.Time != nil {
			clock = strings.TrimSpace(*r.Time)
		}
		due, clock, err := ParseDueDate(strings.TrimSpace(*r.DueDate), clock, now, loc)
		if err != nil {
			return model.TaskPatch{}, err
		}
		if due.IsZero() {
			clock = ""
		}
		patch.DueDate = &due
		patch.Time = &clock
	case r.Time != nil:
		clock := strings.TrimSpace(*r.Time)
		if err := ValidateTime(clock); err != nil {
			return model.TaskPatch{}, err
		}
		patch.Time = &clock
		if !current.DueDate.IsZero() && clock != "" {
			at, _ := time.Parse("15:04", clock)
			y, m, d := current.DueDate.In(loc).Date()
			due := time.Date(y, m, d, at.Hour(), at.Minute(), 0, 0, loc)
			patch.DueDate = &due
		}
	}

	if patch.IsEmpty() {
		return model.TaskPatch{}, apperrors.ErrEmptyPatch
	}
	return patch, nil
}
