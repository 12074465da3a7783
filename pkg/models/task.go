package model

import "time"

const UncategorizedCategory = "uncategorized"

type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Time        string    `json:"time"`
	Category    string    `json:"category"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TrashedTask is a Task that was moved to the trash. Restoring it drops
// DeletedAt and puts the embedded Task back in the active list.
type TrashedTask struct {
	Task
	DeletedAt time.Time `json:"deletedAt"`
}

// TaskData holds the caller supplied fields of a new task.
type TaskData struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Time        string    `json:"time"`
	Category    string    `json:"category"`
}

// TaskPatch is a shallow update; nil fields are left untouched.
type TaskPatch struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Time        *string    `json:"time,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

func (p TaskPatch) Apply(task *Task) {
	if p.Name != nil {
		task.Name = *p.Name
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.DueDate != nil {
		task.DueDate = *p.DueDate
	}
	if p.Time != nil {
		task.Time = *p.Time
	}
	if p.Category != nil {
		task.Category = *p.Category
	}
	if p.Completed != nil {
		task.Completed = *p.Completed
	}
}

func (p TaskPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.DueDate == nil &&
		p.Time == nil && p.Category == nil && p.Completed == nil
}

type TaskStats struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Active     int            `json:"active"`
	DueToday   int            `json:"dueToday"`
	Categories map[string]int `json:"categories"`
	TrashCount int            `json:"trashCount"`
}
