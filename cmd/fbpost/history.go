package main

import (
	"context"
	"fmt"

	"github.com/abdulachik/fbpost/internal/app"
	"github.com/abdulachik/fbpost/internal/config"
	"github.com/abdulachik/fbpost/internal/db"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show posts recorded in the local database",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of posts to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.StoreDriver != config.DriverSQLite && cfg.StoreDriver != "" {
		return fmt.Errorf("history is only available for the sqlite store (STORE_DRIVER=%s)", cfg.StoreDriver)
	}

	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	total, err := store.CountPosts(ctx)
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	posts, err := store.ListPosts(ctx, app.Platform, int64(historyLimit))
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database: %s\n", cfg.DatabasePath)
	fmt.Fprintf(out, "Recorded posts: %d\n\n", total)
	for _, p := range posts {
		fmt.Fprintf(out, "%s  %s  %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"), p.PostID, p.Data)
	}
	return nil
}
