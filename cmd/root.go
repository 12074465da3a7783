package cmd

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "todo-store.com/todo-store/internal/configs"
	repository "todo-store.com/todo-store/internal/repositories"
	"todo-store.com/todo-store/internal/services"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "Personal to-do list manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newAddCmd(),
		newListCmd(),
		newEditCmd(),
		newToggleCmd(),
		newTrashCmd(),
		newRestoreCmd(),
		newPurgeCmd(),
		newEmptyTrashCmd(),
		newClearCompletedCmd(),
		newTrashListCmd(),
		newStatsCmd(),
	)

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// openStore loads configuration and rehydrates the task store from the
// configured backend. The returned func closes the backend.
func openStore(ctx context.Context) (*services.TaskStore, config.Config, func()) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to read .env file: %v", err)
	}

	cfg := config.Load()
	kv, closeKV := config.NewKeyValueStore(cfg)

	store := services.NewTaskStore(ctx, repository.NewTaskRepository(kv),
		services.WithLocation(cfg.Location()),
		services.WithBulkTimestamp(cfg.BulkTrashTimestamp),
	)
	if err := store.LoadErr(); err != nil {
		log.Fatalf("storage unreadable: %v", err)
	}

	return store, cfg, closeKV
}
