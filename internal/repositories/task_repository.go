package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"todo-store.com/todo-store/internal/storage"
	model "todo-store.com/todo-store/pkg/models"
)

const (
	TasksKey        = "todoAppTasks"
	DeletedTasksKey = "todoAppDeletedTasks"
)

// ErrCorruptValue marks a stored value that could not be decoded. Any other
// load error means the backend itself could not be read.
var ErrCorruptValue = errors.New("corrupt value")

// TaskRepository maps the two task collections onto fixed keys of a
// KeyValueStore.
type TaskRepository struct {
	kv  storage.KeyValueStore
	now func() time.Time
}

func NewTaskRepository(kv storage.KeyValueStore) *TaskRepository {
	return &TaskRepository{kv: kv, now: time.Now}
}

// LoadTasks returns the active collection. A missing key yields an empty
// list and a nil error; a corrupt value yields an empty list and an error
// wrapping ErrCorruptValue. A backend read failure is returned as is.
func (r *TaskRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.load(ctx, TasksKey, &tasks); err != nil {
		return []model.Task{}, err
	}

	seen := make(map[string]struct{}, len(tasks))
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if _, dup := seen[task.ID]; dup {
			continue
		}
		seen[task.ID] = struct{}{}
		out = append(out, task)
	}
	return out, nil
}

// LoadDeletedTasks returns the trashed collection. Entries without a
// deletedAt are stamped with the load time.
func (r *TaskRepository) LoadDeletedTasks(ctx context.Context) ([]model.TrashedTask, error) {
	var trashed []model.TrashedTask
	if err := r.load(ctx, DeletedTasksKey, &trashed); err != nil {
		return []model.TrashedTask{}, err
	}

	now := r.now()
	seen := make(map[string]struct{}, len(trashed))
	out := make([]model.TrashedTask, 0, len(trashed))
	for _, task := range trashed {
		if _, dup := seen[task.ID]; dup {
			continue
		}
		seen[task.ID] = struct{}{}
		if task.DeletedAt.IsZero() {
			task.DeletedAt = now
		}
		out = append(out, task)
	}
	return out, nil
}

func (r *TaskRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return r.save(ctx, TasksKey, tasks)
}

func (r *TaskRepository) SaveDeletedTasks(ctx context.Context, trashed []model.TrashedTask) error {
	if trashed == nil {
		trashed = []model.TrashedTask{}
	}
	return r.save(ctx, DeletedTasksKey, trashed)
}

func (r *TaskRepository) load(ctx context.Context, key string, dst any) error {
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w: %w", key, ErrCorruptValue, err)
	}
	return nil
}

func (r *TaskRepository) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
