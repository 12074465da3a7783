package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	apperrors "todo-store.com/todo-store/internal/errors"
)

func setupCLI(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", filepath.Join(t.TempDir(), "todo.db"))
	t.Setenv("TODO_TIMEZONE", "UTC")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()

	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("todo %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestCLI_TaskLifecycle(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "add", "--name", "Buy milk", "--category", "shopping", "--due", "2026-10-18", "--time", "09:00")
	id := strings.TrimSpace(strings.TrimPrefix(out, "added "))
	if id == "" {
		t.Fatalf("unexpected add output %q", out)
	}
	mustRun(t, "add", "--name", "Write report", "--category", "work")

	out = mustRun(t, "list", "--category", "shopping")
	if !strings.Contains(out, "Buy milk") || strings.Contains(out, "Write report") {
		t.Fatalf("category filter output:\n%s", out)
	}

	out = mustRun(t, "toggle", id)
	if !strings.Contains(out, "completed=true") {
		t.Fatalf("toggle output %q", out)
	}

	out = mustRun(t, "list", "--status", "completed")
	if !strings.Contains(out, "Buy milk") || strings.Contains(out, "Write report") {
		t.Fatalf("status filter output:\n%s", out)
	}

	out = mustRun(t, "clear-completed")
	if !strings.Contains(out, "trashed 1 completed tasks") {
		t.Fatalf("clear-completed output %q", out)
	}

	out = mustRun(t, "trash-list")
	if !strings.Contains(out, id) {
		t.Fatalf("trash-list missing %s:\n%s", id, out)
	}

	mustRun(t, "restore", id)
	out = mustRun(t, "stats")
	for _, want := range []string{"total:     2", "completed: 1", "in trash:  0", "shopping: 1", "work: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}

	mustRun(t, "edit", id, "--name", "Buy oat milk")
	out = mustRun(t, "list")
	if !strings.Contains(out, "Buy oat milk") {
		t.Fatalf("edit not persisted:\n%s", out)
	}

	mustRun(t, "trash", id)
	mustRun(t, "purge", id)
	out = mustRun(t, "trash-list")
	if strings.Contains(out, id) {
		t.Fatalf("purged task still listed:\n%s", out)
	}
}

func TestCLI_UnknownIDs(t *testing.T) {
	setupCLI(t)

	if _, err := run(t, "toggle", "nonexistent-id"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("toggle err = %v, want %v", err, apperrors.ErrTaskNotFound)
	}
	if _, err := run(t, "restore", "nonexistent-id"); !errors.Is(err, apperrors.ErrTrashedTaskNotFound) {
		t.Errorf("restore err = %v, want %v", err, apperrors.ErrTrashedTaskNotFound)
	}

	out := mustRun(t, "empty-trash")
	if !strings.Contains(out, "deleted 0 trashed tasks") {
		t.Errorf("empty-trash output %q", out)
	}
}

func TestCLI_AddRequiresName(t *testing.T) {
	setupCLI(t)

	if _, err := run(t, "add", "--name", " "); !errors.Is(err, apperrors.ErrTaskNameRequired) {
		t.Errorf("add err = %v, want %v", err, apperrors.ErrTaskNameRequired)
	}
}
