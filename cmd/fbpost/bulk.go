package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/abdulachik/fbpost/internal/graph"
	"github.com/spf13/cobra"
)

var bulkCmd = &cobra.Command{
	Use:   "bulk FILE",
	Short: "Publish a list of posts from a JSON file",
	Long: `Publish every post described in a JSON file, in order.

The file holds an array of objects with "message" and one of "link",
"photos" (list of paths) or "videos" (list of paths; only the first is
uploaded). A failed item does not stop the ones after it.`,
	Args: cobra.ExactArgs(1),
	RunE: runBulk,
}

func init() {
	rootCmd.AddCommand(bulkCmd)
}

func runBulk(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	contents, err := graph.ParseContents(data)
	if err != nil {
		return err
	}

	a, err := openApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	results := a.Client.PostBulk(ctx, pageName, contents)

	recorded := 0
	for _, res := range results {
		recorded += a.Record(ctx, res)
	}
	slog.Info("bulk post finished", "items", len(results), "recorded", recorded)

	failed, err := printResults(cmd.OutOrStdout(), results...)
	if err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("some posts failed")
	}
	return nil
}
