package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "todo-store.com/todo-store/internal/data_models"
	apperrors "todo-store.com/todo-store/internal/errors"
	"todo-store.com/todo-store/internal/http/validators"
	"todo-store.com/todo-store/internal/services"
	"todo-store.com/todo-store/internal/views"
)

// Settings is the read-only configuration shown on the settings page.
type Settings struct {
	StorageDriver      string `json:"storageDriver"`
	TimeZone           string `json:"timeZone"`
	RateLimitPerMinute int    `json:"rateLimitPerMinute"`
	BulkTrashTimestamp bool   `json:"bulkTrashTimestamp"`
}

type Handler struct {
	store    *services.TaskStore
	settings Settings
	loc      *time.Location
	now      func() time.Time
}

func NewHandler(store *services.TaskStore, settings Settings, loc *time.Location) *Handler {
	return &Handler{
		store:    store,
		settings: settings,
		loc:      loc,
		now:      time.Now,
	}
}

func httpError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}

	data, err := validators.ValidateCreateTaskRequest(&req, h.now(), h.loc)
	if err != nil {
		return httpError(err)
	}

	task := h.store.AddTask(c.Request().Context(), data)
	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	task, ok := h.store.FindTask(id)
	if !ok {
		return httpError(apperrors.ErrTaskNotFound)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	var q dto.ListTasksQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	tasks := views.FilterTasks(h.store.Tasks(), views.Filter{Category: q.Category, Status: q.Status})
	if q.Sort != "" {
		tasks = views.SortByDue(tasks, q.Sort)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GroupedTasks(c echo.Context) error {
	tasks := views.FilterTasks(h.store.Tasks(), views.Filter{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	})

	return c.JSON(http.StatusOK, views.GroupByDueDate(tasks, h.now(), h.loc))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	current, ok := h.store.FindTask(id)
	if !ok {
		return httpError(apperrors.ErrTaskNotFound)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}

	patch, err := validators.ValidateUpdateTaskRequest(&req, current, h.now(), h.loc)
	if err != nil {
		return httpError(err)
	}

	h.store.UpdateTask(c.Request().Context(), id, patch)
	return h.respondWithTask(c, id)
}

func (h *Handler) ToggleTask(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.FindTask(id); !ok {
		return httpError(apperrors.ErrTaskNotFound)
	}

	h.store.ToggleTaskCompletion(c.Request().Context(), id)
	return h.respondWithTask(c, id)
}

func (h *Handler) TrashTask(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.FindTask(id); !ok {
		return httpError(apperrors.ErrTaskNotFound)
	}

	h.store.MoveToTrash(c.Request().Context(), id)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ClearCompleted(c echo.Context) error {
	n := h.store.ClearCompletedTasks(c.Request().Context())

	return c.JSON(http.StatusOK, echo.Map{
		"trashed": n,
	})
}

func (h *Handler) ListTrash(c echo.Context) error {
	trashed := views.SortTrash(h.store.TrashedTasks(), c.QueryParam("sort"))

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(trashed),
		"tasks": trashed,
	})
}

func (h *Handler) RestoreTask(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.FindTrashedTask(id); !ok {
		return httpError(apperrors.ErrTrashedTaskNotFound)
	}

	h.store.RestoreFromTrash(c.Request().Context(), id)
	return h.respondWithTask(c, id)
}

func (h *Handler) DeleteTrashedTask(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.store.FindTrashedTask(id); !ok {
		return httpError(apperrors.ErrTrashedTaskNotFound)
	}

	h.store.PermanentlyDeleteTask(c.Request().Context(), id)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) EmptyTrash(c echo.Context) error {
	h.store.EmptyTrash(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.GetTaskStats())
}

func (h *Handler) Settings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings)
}

func (h *Handler) respondWithTask(c echo.Context, id string) error {
	task, ok := h.store.FindTask(id)
	if !ok {
		return httpError(apperrors.ErrTaskNotFound)
	}
	return c.JSON(http.StatusOK, task)
}
