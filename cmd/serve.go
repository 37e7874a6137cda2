package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/reify-cli/internal/config"
	"github.com/xkilldash9x/reify-cli/internal/observability"
	"github.com/xkilldash9x/reify-cli/internal/server"
	"github.com/xkilldash9x/reify-cli/internal/service"
)

// newServeCmd creates and configures the `serve` command.
func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API server",
		Long: `Serve exposes the processing pipeline over HTTP: statement processing,
environment analysis, and system evolution. The server shuts down
gracefully on SIGINT or SIGTERM.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind only changed flags; an unchanged flag's zero default would
			// otherwise shadow the configured value.
			return bindChangedFlags(cmd, map[string]string{
				"server.host": "host",
				"server.port": "port",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				return err
			}

			// The server owns its own signal-aware lifetime.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			components, err := service.NewComponents(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer components.Shutdown()

			processor := service.NewProcessor(components, logger)
			srv := server.New(cfg.Server(), processor, logger)
			return srv.Run(ctx)
		},
	}

	serveCmd.Flags().String("host", "", "interface to listen on")
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on")

	return serveCmd
}
