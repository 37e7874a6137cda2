// -- cmd/root.go --
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/internal/config"
	"github.com/xkilldash9x/reify-cli/internal/observability"
)

var (
	cfgFile string
)

// NewRootCommand builds a fresh command tree. Each call returns an
// independent instance so flag state never leaks between executions.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reify-cli",
		Short: "Reify turns conversational statements into deployable system prototypes.",
		// Version is dynamically set at build time. See cmd/version.go.
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// This function runs before any command, setting up config and logging.
			if err := initializeConfig(); err != nil {
				return err
			}

			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				// Initialize a fallback logger if config loading fails
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "reify-cli"})
				return err
			}

			observability.InitializeLogger(cfg.Logger())

			// Log the version at startup
			observability.GetLogger().Info("Starting Reify-CLI", zap.String("version", Version))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	// Optional: Customize the version output template
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(newProcessCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newLanguagesCmd())

	return rootCmd
}

// ExecuteContext runs the root command under the given context. Commands see
// the context through cmd.Context() and stop when it is canceled.
func ExecuteContext(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		logExecuteError(err)
	}
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logExecuteError(err)
		os.Exit(1)
	}
}

// logExecuteError uses the logger if available, otherwise falls back to stderr.
func logExecuteError(err error) {
	if logger := observability.GetLogger(); logger != nil && logger != zap.NewNop() {
		logger.Error("Command execution failed", zap.Error(err))
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}

// bindChangedFlags binds each viper key to its flag, skipping flags the user
// did not set so their zero defaults never mask configured values.
func bindChangedFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// initializeConfig reads in config file and ENV variables if set.
func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("REIFY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults/env vars
	}
	return nil
}
