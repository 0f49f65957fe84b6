package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/platelens/platelens/internal/app"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the platelens HTTP server",
		Long: `Start the HTTP server exposing POST /api/v1/upload and
GET /api/v1/health_check. Stops gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(context.Background(), configPath, Version)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	return cmd
}
