package main

import (
	"context"
	"fmt"

	"github.com/abdulachik/fbpost/internal/graph"
	"github.com/spf13/cobra"
)

var editMessage string

var editCmd = &cobra.Command{
	Use:   "edit POST_ID",
	Short: "Replace the message of a post",
	Long: `Replace the message of a post. --page must be "me" or a page the
token managed when the command started.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var deleteCmd = &cobra.Command{
	Use:   "delete POST_ID",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	editCmd.Flags().StringVarP(&editMessage, "message", "m", "", "new message")
	_ = editCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(editCmd, deleteCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	return mutate(cmd, func(ctx context.Context, c *graph.Client) graph.Result {
		return c.EditPost(ctx, args[0], editMessage, pageName)
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	return mutate(cmd, func(ctx context.Context, c *graph.Client) graph.Result {
		return c.DeletePost(ctx, args[0], pageName)
	})
}

func mutate(cmd *cobra.Command, op func(context.Context, *graph.Client) graph.Result) error {
	ctx := context.Background()

	a, err := openApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	failed, err := printResults(cmd.OutOrStdout(), op(ctx, a.Client))
	if err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("%s failed", cmd.Name())
	}
	return nil
}
