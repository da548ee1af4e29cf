package cmd

import (
	"github.com/spf13/cobra"

	"github.com/learngrid/learngrid/internal/app"
)

// runApp resolves configuration, builds the API client, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, client, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(app.Options{
		Client: client,
		Status: cfg.APIBaseURL,
	})
}
