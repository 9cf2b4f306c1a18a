package main

import (
	"context"

	"github.com/abdulachik/fbpost/internal/graph"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent posts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", graph.DefaultPostsLimit, "number of posts to fetch")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(context.Background(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	posts, err := a.Client.GetPostsList(context.Background(), pageName, listLimit)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), posts)
}
