package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	repository "todo-store.com/todo-store/internal/repositories"
	model "todo-store.com/todo-store/pkg/models"
)

// ErrNotLoaded is reported instead of writing a collection whose stored
// value could not be read at startup, so the write cannot replace it.
var ErrNotLoaded = errors.New("collection was not loaded from storage")

// TaskStore owns the active and trashed task collections. Every mutation
// is applied in memory first and then written through to the repository;
// a failed write is reported and otherwise ignored.
type TaskStore struct {
	mu      sync.RWMutex
	active  []model.Task
	trashed []model.TrashedTask

	repo           *repository.TaskRepository
	now            func() time.Time
	loc            *time.Location
	newID          func() string
	onPersistError func(key string, err error)
	bulkTimestamp  bool

	activeUnread  bool
	trashedUnread bool
	loadErr       error
}

type Option func(*TaskStore)

func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) { s.now = now }
}

// WithLocation sets the time zone used to decide which tasks are due today.
func WithLocation(loc *time.Location) Option {
	return func(s *TaskStore) { s.loc = loc }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *TaskStore) { s.newID = newID }
}

func WithPersistErrorHandler(fn func(key string, err error)) Option {
	return func(s *TaskStore) { s.onPersistError = fn }
}

// WithBulkTimestamp makes ClearCompletedTasks stamp every trashed task with
// the same deletedAt instead of one reading of the clock per task.
func WithBulkTimestamp(enabled bool) Option {
	return func(s *TaskStore) { s.bulkTimestamp = enabled }
}

func NewTaskStore(ctx context.Context, repo *repository.TaskRepository, opts ...Option) *TaskStore {
	s := &TaskStore{
		repo:  repo,
		now:   time.Now,
		loc:   time.Local,
		newID: uuid.NewString,
		onPersistError: func(key string, err error) {
			log.Printf("failed to persist %s: %v", key, err)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	active, err := repo.LoadTasks(ctx)
	if err != nil {
		s.activeUnread = s.recordLoadError(repository.TasksKey, err)
	}
	trashed, err := repo.LoadDeletedTasks(ctx)
	if err != nil {
		s.trashedUnread = s.recordLoadError(repository.DeletedTasksKey, err)
	}

	s.active = active
	s.trashed = dropActiveIDs(trashed, active)

	return s
}

// recordLoadError reports whether the collection under key must not be
// written. Corrupt values start empty and are overwritten on the next write.
func (s *TaskStore) recordLoadError(key string, err error) bool {
	if errors.Is(err, repository.ErrCorruptValue) {
		log.Printf("error loading %s, starting empty: %v", key, err)
		return false
	}
	log.Printf("error loading %s, writes to it are disabled: %v", key, err)
	s.loadErr = errors.Join(s.loadErr, err)
	return true
}

// LoadErr returns the backend read failures hit while constructing the
// store, or nil when both collections were read.
func (s *TaskStore) LoadErr() error {
	return s.loadErr
}

func dropActiveIDs(trashed []model.TrashedTask, active []model.Task) []model.TrashedTask {
	ids := make(map[string]struct{}, len(active))
	for _, task := range active {
		ids[task.ID] = struct{}{}
	}

	out := trashed[:0]
	for _, task := range trashed {
		if _, ok := ids[task.ID]; ok {
			log.Printf("task %s present in both collections, keeping active copy", task.ID)
			continue
		}
		out = append(out, task)
	}
	return out
}

// AddTask appends a new, not completed task and returns it.
func (s *TaskStore) AddTask(ctx context.Context, data model.TaskData) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := model.Task{
		ID:          s.newID(),
		Name:        data.Name,
		Description: data.Description,
		DueDate:     data.DueDate,
		Time:        data.Time,
		Category:    data.Category,
		Completed:   false,
		CreatedAt:   s.now(),
	}
	s.active = append(s.active, task)
	s.persistActive(ctx)

	return task
}

func (s *TaskStore) ToggleTaskCompletion(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.activeIndex(id)
	if i < 0 {
		return
	}
	s.active[i].Completed = !s.active[i].Completed
	s.persistActive(ctx)
}

func (s *TaskStore) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.activeIndex(id)
	if i < 0 {
		return
	}
	patch.Apply(&s.active[i])
	s.persistActive(ctx)
}

func (s *TaskStore) MoveToTrash(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.activeIndex(id)
	if i < 0 {
		return
	}
	task := s.active[i]
	s.active = append(s.active[:i:i], s.active[i+1:]...)
	s.trashed = append(s.trashed, model.TrashedTask{Task: task, DeletedAt: s.now()})

	s.persistActive(ctx)
	s.persistTrashed(ctx)
}

func (s *TaskStore) RestoreFromTrash(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trashedIndex(id)
	if i < 0 {
		return
	}
	task := s.trashed[i].Task
	s.trashed = append(s.trashed[:i:i], s.trashed[i+1:]...)
	s.active = append(s.active, task)

	s.persistActive(ctx)
	s.persistTrashed(ctx)
}

func (s *TaskStore) PermanentlyDeleteTask(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trashedIndex(id)
	if i < 0 {
		return
	}
	s.trashed = append(s.trashed[:i:i], s.trashed[i+1:]...)
	s.persistTrashed(ctx)
}

func (s *TaskStore) EmptyTrash(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trashed = []model.TrashedTask{}
	s.persistTrashed(ctx)
}

// ClearCompletedTasks moves every completed task to the trash, keeping the
// relative order of both the remaining and the trashed tasks. It returns the
// number of tasks moved.
func (s *TaskStore) ClearCompletedTasks(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bulkAt time.Time
	if s.bulkTimestamp {
		bulkAt = s.now()
	}
	remaining := make([]model.Task, 0, len(s.active))
	trashed := s.trashed
	for _, task := range s.active {
		if !task.Completed {
			remaining = append(remaining, task)
			continue
		}
		deletedAt := bulkAt
		if !s.bulkTimestamp {
			deletedAt = s.now()
		}
		trashed = append(trashed, model.TrashedTask{Task: task, DeletedAt: deletedAt})
	}
	moved := len(trashed) - len(s.trashed)
	s.active = remaining
	s.trashed = trashed

	s.persistActive(ctx)
	s.persistTrashed(ctx)

	return moved
}

// GetTaskStats is recomputed from the current collections on every call.
func (s *TaskStore) GetTaskStats() model.TaskStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := model.TaskStats{
		Total:      len(s.active),
		Categories: make(map[string]int),
		TrashCount: len(s.trashed),
	}

	ty, tm, td := s.now().In(s.loc).Date()
	for _, task := range s.active {
		if task.Completed {
			stats.Completed++
		} else {
			y, m, d := task.DueDate.In(s.loc).Date()
			if y == ty && m == tm && d == td {
				stats.DueToday++
			}
		}

		category := task.Category
		if category == "" {
			category = model.UncategorizedCategory
		}
		stats.Categories[category]++
	}
	stats.Active = stats.Total - stats.Completed

	return stats
}

// Tasks returns a copy of the active collection in insertion order.
func (s *TaskStore) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.active))
	copy(out, s.active)
	return out
}

// TrashedTasks returns a copy of the trashed collection in insertion order.
func (s *TaskStore) TrashedTasks() []model.TrashedTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.TrashedTask, len(s.trashed))
	copy(out, s.trashed)
	return out
}

func (s *TaskStore) FindTask(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.activeIndex(id); i >= 0 {
		return s.active[i], true
	}
	return model.Task{}, false
}

func (s *TaskStore) FindTrashedTask(id string) (model.TrashedTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.trashedIndex(id); i >= 0 {
		return s.trashed[i], true
	}
	return model.TrashedTask{}, false
}

func (s *TaskStore) activeIndex(id string) int {
	for i := range s.active {
		if s.active[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) trashedIndex(id string) int {
	for i := range s.trashed {
		if s.trashed[i].ID == id {
			return i
		}
	}
	return -1
}

// Writes outlive the caller: a cancelled request must not drop a change
// that is already applied in memory.
func (s *TaskStore) persistActive(ctx context.Context) {
	if s.activeUnread {
		s.onPersistError(repository.TasksKey, ErrNotLoaded)
		return
	}
	if err := s.repo.SaveTasks(context.WithoutCancel(ctx), s.active); err != nil {
		s.onPersistError(repository.TasksKey, err)
	}
}

func (s *TaskStore) persistTrashed(ctx context.Context) {
	if s.trashedUnread {
		s.onPersistError(repository.DeletedTasksKey, ErrNotLoaded)
		return
	}
	if err := s.repo.SaveDeletedTasks(context.WithoutCancel(ctx), s.trashed); err != nil {
		s.onPersistError(repository.DeletedTasksKey, err)
	}
}
