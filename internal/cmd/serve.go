package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler/api"
	"os-scheduler/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scheduling HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg, logger)
	app := api.NewRouter(handler)

	logger.Infow("starting server", "port", cfg.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
