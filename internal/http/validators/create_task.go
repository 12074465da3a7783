package validators

import (
	"strings"
	"time"

	dto "todo-store.com/todo-store/internal/data_models"
	apperrors "todo-store.com/todo-store/internal/errors"
	model "todo-store.com/todo-store/pkg/models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest, now time.Time, loc *time.Location) (model.TaskData, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return model.TaskData{}, apperrors.ErrTaskNameRequired
	}

	due, clock, err := ParseDueDate(strings.TrimSpace(r.DueDate), strings.TrimSpace(r.Time), now, loc)
	if err != nil {
		return model.TaskData{}, err
	}

	return model.TaskData{
		Name:        name,
		Description: r.Description,
		DueDate:     due,
		Time:        clock,
		Category:    strings.TrimSpace(r.Category),
	}, nil
}
