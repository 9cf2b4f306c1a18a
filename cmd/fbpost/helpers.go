package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abdulachik/fbpost/internal/app"
	"github.com/abdulachik/fbpost/internal/config"
	"github.com/abdulachik/fbpost/internal/graph"
)

// openApp loads configuration and builds the application.
func openApp(ctx context.Context, withStore bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	validate := cfg.Validate
	if withStore {
		validate = cfg.ValidateForStore
	}
	if err := validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return app.New(ctx, cfg, withStore)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResults prints results and reports whether any failed.
func printResults(w io.Writer, results ...graph.Result) (bool, error) {
	failed := false
	out := make([]map[string]any, len(results))
	for i, r := range results {
		out[i] = r.Map()
		if !r.OK() {
			failed = true
		}
		for _, p := range r.Photos {
			if !p.OK() {
				failed = true
			}
		}
	}

	var v any = out
	if len(out) == 1 {
		v = out[0]
	}
	return failed, printJSON(w, v)
}
