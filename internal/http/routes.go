package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "todo-store.com/todo-store/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/grouped", h.GroupedTasks)
	e.POST("/tasks/clear-completed", h.ClearCompleted)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.POST("/tasks/:id/toggle", h.ToggleTask)
	e.DELETE("/tasks/:id", h.TrashTask)

	e.GET("/trash", h.ListTrash)
	e.DELETE("/trash", h.EmptyTrash)
	e.POST("/trash/:id/restore", h.RestoreTask)
	e.DELETE("/trash/:id", h.DeleteTrashedTask)

	e.GET("/stats", h.Stats)
	e.GET("/settings", h.Settings)
}
