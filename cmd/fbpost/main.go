package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var pageName string

var rootCmd = &cobra.Command{
	Use:   "fbpost",
	Short: "Post to a Facebook profile or the pages it manages",
	Long: `fbpost publishes, lists, edits and deletes Facebook posts as the
owner of ACCESS_TOKEN or as any page that token manages.`,
	SilenceUsage: true,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	rootCmd.PersistentFlags().StringVarP(&pageName, "page", "p", "me", `page name to act as, or "me"`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
