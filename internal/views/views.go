// Package views holds the read-only projections the UI layers apply to the
// task store output: filtering, ordering, grouping by due date and the
// human readable time labels.
package views

import (
	"fmt"
	"slices"
	"strings"
	"time"

	model "todo-store.com/todo-store/pkg/models"
)

const (
	StatusAll       = "all"
	StatusActive    = "active"
	StatusCompleted = "completed"

	SortNearest  = "nearest"
	SortFarthest = "farthest"

	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortAlphabetical = "alphabetical"
)

type Filter struct {
	Category string
	Status   string
}

func FilterTasks(tasks []model.Task, f Filter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Category != "" && task.Category != f.Category {
			continue
		}
		switch f.Status {
		case StatusActive:
			if task.Completed {
				continue
			}
		case StatusCompleted:
			if !task.Completed {
				continue
			}
		}
		out = append(out, task)
	}
	return out
}

// SortByDue orders tasks by due date; any order other than SortFarthest
// puts the nearest due date first.
func SortByDue(tasks []model.Task, order string) []model.Task {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b model.Task) int {
		if order == SortFarthest {
			return b.DueDate.Compare(a.DueDate)
		}
		return a.DueDate.Compare(b.DueDate)
	})
	return out
}

// SortTrash orders trashed tasks. Unknown orders keep insertion order.
func SortTrash(trashed []model.TrashedTask, order string) []model.TrashedTask {
	out := slices.Clone(trashed)
	switch order {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b model.TrashedTask) int {
			return b.DeletedAt.Compare(a.DeletedAt)
		})
	case SortOldest:
		slices.SortStableFunc(out, func(a, b model.TrashedTask) int {
			return a.DeletedAt.Compare(b.DeletedAt)
		})
	case SortAlphabetical:
		slices.SortStableFunc(out, func(a, b model.TrashedTask) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}
	return out
}

type DueGroups struct {
	Overdue     []model.Task `json:"overdue"`
	Today       []model.Task `json:"today"`
	Tomorrow    []model.Task `json:"tomorrow"`
	ThisWeek    []model.Task `json:"thisWeek"`
	Later       []model.Task `json:"later"`
	Unscheduled []model.Task `json:"unscheduled"`
}

// GroupByDueDate buckets tasks by calendar day in loc. The week ends on the
// coming Sunday; tasks without a due date are unscheduled.
func GroupByDueDate(tasks []model.Task, now time.Time, loc *time.Location) DueGroups {
	groups := DueGroups{
		Overdue:     []model.Task{},
		Today:       []model.Task{},
		Tomorrow:    []model.Task{},
		ThisWeek:    []model.Task{},
		Later:       []model.Task{},
		Unscheduled: []model.Task{},
	}

	today := startOfDay(now, loc)
	tomorrow := today.AddDate(0, 0, 1)
	endOfWeek := today.AddDate(0, 0, 7-int(today.Weekday()))

	for _, task := range tasks {
		if task.DueDate.IsZero() {
			groups.Unscheduled = append(groups.Unscheduled, task)
			continue
		}

		due := startOfDay(task.DueDate, loc)
		switch {
		case due.Before(today):
			groups.Overdue = append(groups.Overdue, task)
		case due.Equal(today):
			groups.Today = append(groups.Today, task)
		case due.Equal(tomorrow):
			groups.Tomorrow = append(groups.Tomorrow, task)
		case !due.After(endOfWeek):
			groups.ThisWeek = append(groups.ThisWeek, task)
		default:
			groups.Later = append(groups.Later, task)
		}
	}

	return groups
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// RelativeTime renders how long ago t was, e.g. "3 hours ago". Anything
// older than 30 days is shown as a date.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "Unknown time"
	}

	diff := now.Sub(t)
	days := int(diff.Hours() / 24)
	hours := int(diff.Hours())
	mins := int(diff.Minutes())

	switch {
	case days > 30:
		return t.Format("Mon, Jan 2, 2006")
	case days > 0:
		return plural(days, "day") + " ago"
	case hours > 0:
		return plural(hours, "hour") + " ago"
	case mins > 0:
		return plural(mins, "minute") + " ago"
	default:
		return "Just now"
	}
}

// TimeUntilDue renders the distance to a due date, e.g. "In 2 days".
func TimeUntilDue(due, now time.Time) string {
	diff := due.Sub(now)
	if diff < 0 {
		return "Overdue"
	}

	days := int(diff.Hours() / 24)
	hours := int(diff.Hours()) % 24

	switch {
	case days > 0:
		return "In " + plural(days, "day")
	case hours > 0:
		return "In " + plural(hours, "hour")
	default:
		return "Due soon"
	}
}

// DefaultTime is the suggested HH:MM for a new task: the next full hour.
func DefaultTime(now time.Time) string {
	next := time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
	return next.Format("15:04")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
