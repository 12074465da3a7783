package cmd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	dto "todo-store.com/todo-store/internal/data_models"
	apperrors "todo-store.com/todo-store/internal/errors"
	"todo-store.com/todo-store/internal/http/validators"
	"todo-store.com/todo-store/internal/views"
	model "todo-store.com/todo-store/pkg/models"
)

func newAddCmd() *cobra.Command {
	var req dto.CreateTaskRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, closeStore := openStore(cmd.Context())
			defer closeStore()

			data, err := validators.ValidateCreateTaskRequest(&req, time.Now(), cfg.Location())
			if err != nil {
				return err
			}

			task := store.AddTask(cmd.Context(), data)
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "task name (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "free text description")
	cmd.Flags().StringVar(&req.DueDate, "due", "", "due date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&req.Time, "time", "", "due time, HH:MM")
	cmd.Flags().StringVar(&req.Category, "category", "", "category label")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEditCmd() *cobra.Command {
	var (
		name, description, due, clock, category string
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of an active task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, closeStore := openStore(cmd.Context())
			defer closeStore()

			current, ok := store.FindTask(args[0])
			if !ok {
				return apperrors.ErrTaskNotFound
			}

			var req dto.UpdateTaskRequest
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("due") {
				req.DueDate = &due
			}
			if flags.Changed("time") {
				req.Time = &clock
			}
			if flags.Changed("category") {
				req.Category = &category
			}

			patch, err := validators.ValidateUpdateTaskRequest(&req, current, time.Now(), cfg.Location())
			if err != nil {
				return err
			}

			store.UpdateTask(cmd.Context(), current.ID, patch)
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", current.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "task name")
	cmd.Flags().StringVar(&description, "description", "", "free text description")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&clock, "time", "", "due time, HH:MM")
	cmd.Flags().StringVar(&category, "category", "", "category label")

	return cmd
}

func newListCmd() *cobra.Command {
	var (
		q       dto.ListTasksQuery
		grouped bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, closeStore := openStore(cmd.Context())
			defer closeStore()

			tasks := views.FilterTasks(store.Tasks(), views.Filter{Category: q.Category, Status: q.Status})
			now := time.Now()
			out := cmd.OutOrStdout()

			if !grouped {
				if q.Sort != "" {
					tasks = views.SortByDue(tasks, q.Sort)
				}
				return printTasks(out, tasks, now, cfg.Location())
			}

			groups := views.GroupByDueDate(views.SortByDue(tasks, views.SortNearest), now, cfg.Location())
			for _, g := range []struct {
				title string
				tasks []model.Task
			}{
				{"Overdue", groups.Overdue},
				{"Today", groups.Today},
				{"Tomorrow", groups.Tomorrow},
				{"This week", groups.ThisWeek},
				{"Later", groups.Later},
				{"Unscheduled", groups.Unscheduled},
			} {
				if len(g.tasks) == 0 {
					continue
				}
				fmt.Fprintf(out, "%s\n", g.title)
				if err := printTasks(out, g.tasks, now, cfg.Location()); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&q.Category, "category", "", "only tasks in this category")
	cmd.Flags().StringVar(&q.Status, "status", views.StatusAll, "all, active or completed")
	cmd.Flags().StringVar(&q.Sort, "sort", "", "nearest or farthest due date first")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "group tasks by due date")

	return cmd
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a task between completed and not completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore := openStore(cmd.Context())
			defer closeStore()

			if _, ok := store.FindTask(args[0]); !ok {
				return apperrors.ErrTaskNotFound
			}
			store.ToggleTaskCompletion(cmd.Context(), args[0])

			task, _ := store.FindTask(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s completed=%t\n", task.ID, task.Completed)
			return nil
		},
	}
}

func newTrashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trash ID",
		Short: "Move a task to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore := openStore(cmd.Context())
			defer closeStore()

			if _, ok := store.FindTask(args[0]); !ok {
				return apperrors.ErrTaskNotFound
			}
			store.MoveToTrash(cmd.Context(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "trashed %s\n", args[0])
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore ID",
		Short: "Restore a task from the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore := openStore(cmd.Context())
			defer closeStore()

			if _, ok := store.FindTrashedTask(args[0]); !ok {
				return apperrors.ErrTrashedTaskNotFound
			}
			store.RestoreFromTrash(cmd.Context(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "restored %s\n", args[0])
			return nil
		},
	}
}

func newPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge ID",
		Short: "Permanently delete a trashed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore := openStore(cmd.Context())
			defer closeStore()

			if _, ok := store.FindTrashedTask(args[0]); !ok {
				return apperrors.ErrTrashedTaskNotFound
			}
			store.PermanentlyDeleteTask(cmd.Context(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func newEmptyTrashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "empty-trash",
		Short: "Permanently delete every trashed task",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore := openStore(cmd.Context())
			defer closeStore()

			n := len(store.TrashedTasks())
			store.EmptyTrash(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d trashed tasks\n", n)
			return nil
		},
	}
}

func newClearCompletedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Move every completed task to the trash",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore := openStore(cmd.Context())
			defer closeStore()

			n := store.ClearCompletedTasks(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "trashed %d completed tasks\n", n)
			return nil
		},
	}
}

func newTrashListCmd() *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "trash-list",
		Short: "List trashed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore := openStore(cmd.Context())
			defer closeStore()

			now := time.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tDELETED")
			for _, task := range views.SortTrash(store.TrashedTasks(), order) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", task.ID, task.Name, categoryLabel(task.Category), views.RelativeTime(task.DeletedAt, now))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&order, "sort", views.SortNewest, "newest, oldest or alphabetical")

	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, closeStore := openStore(cmd.Context())
			defer closeStore()

			stats := store.GetTaskStats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total:     %d\n", stats.Total)
			fmt.Fprintf(out, "active:    %d\n", stats.Active)
			fmt.Fprintf(out, "completed: %d\n", stats.Completed)
			fmt.Fprintf(out, "due today: %d\n", stats.DueToday)
			fmt.Fprintf(out, "in trash:  %d\n", stats.TrashCount)

			categories := make([]string, 0, len(stats.Categories))
			for c := range stats.Categories {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			for _, c := range categories {
				fmt.Fprintf(out, "  %s: %d\n", c, stats.Categories[c])
			}
			return nil
		},
	}
}

func printTasks(out io.Writer, tasks []model.Task, now time.Time, loc *time.Location) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tNAME\tCATEGORY\tDUE\t")
	for _, task := range tasks {
		done := " "
		if task.Completed {
			done = "x"
		}
		due := "-"
		if !task.DueDate.IsZero() {
			due = task.DueDate.In(loc).Format("Mon Jan 2 15:04")
			if !task.Completed {
				due += " (" + views.TimeUntilDue(task.DueDate, now) + ")"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", task.ID, done, task.Name, categoryLabel(task.Category), due)
	}
	return w.Flush()
}

func categoryLabel(category string) string {
	if category == "" {
		return model.UncategorizedCategory
	}
	return category
}
