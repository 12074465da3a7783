package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTaskPatch_Apply(t *testing.T) {
	created := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	task := Task{ID: "t1", Name: "old", Category: "work", Time: "08:00", CreatedAt: created}

	name := "new"
	done := true
	TaskPatch{Name: &name, Completed: &done}.Apply(&task)

	if task.Name != "new" || !task.Completed {
		t.Fatalf("patch not applied: %+v", task)
	}
	if task.ID != "t1" || task.Category != "work" || task.Time != "08:00" || !task.CreatedAt.Equal(created) {
		t.Fatalf("untouched fields changed: %+v", task)
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	if !(TaskPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	category := ""
	if (TaskPatch{Category: &category}).IsEmpty() {
		t.Error("patch clearing the category is not empty")
	}
}

func TestTrashedTask_JSONShape(t *testing.T) {
	trashed := TrashedTask{
		Task:      Task{ID: "t1", Name: "a"},
		DeletedAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(trashed)
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}

	s := string(raw)
	for _, field := range []string{`"id":"t1"`, `"name":"a"`, `"dueDate"`, `"createdAt"`, `"deletedAt":"2026-10-17T09:00:00Z"`} {
		if !strings.Contains(s, field) {
			t.Errorf("encoded task %s missing %s", s, field)
		}
	}
	if strings.Contains(s, `"Task"`) {
		t.Errorf("embedded task should be flattened: %s", s)
	}
}
