// Package main implements the vct CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vctasks/vct/internal/api"
	"github.com/vctasks/vct/internal/config"
	"github.com/vctasks/vct/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vct",
	Short: "Vct - vehicle coating task tracking from the terminal",
}

// newAPIClient loads configuration for the current directory and returns
// the API client.
func newAPIClient() (*api.Client, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	return api.NewClient(cfg.API.BaseURL, cfg.API.Timeout()), nil
}

// newStore returns a task store plus the underlying client for the calls
// that bypass the store (single-record fetch, master data).
func newStore() (*task.Store, *api.Client, error) {
	client, err := newAPIClient()
	if err != nil {
		return nil, nil, err
	}
	return task.NewStore(client), client, nil
}
