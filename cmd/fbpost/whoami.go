package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the token owner and the pages it manages",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := openApp(context.Background(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	me := a.Client.Principal()
	if me.ID == "" {
		return fmt.Errorf("could not fetch the token owner's profile")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "User: %s (%s)\n", me.Name, me.ID)
	if me.Email != "" {
		fmt.Fprintf(out, "Email: %s\n", me.Email)
	}

	pages := a.Client.Pages()
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "\nPages: %d\n", len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  %s (%s)\n", name, pages[name].ID)
	}
	return nil
}
