package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/sia-camera-bridge/internal/config"
	"github.com/oshokin/sia-camera-bridge/internal/service/discover"
	"github.com/oshokin/sia-camera-bridge/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for listing registered cameras.
	rootCmd = &cobra.Command{
		Use:   "camera-discover [gateway-address]",
		Short: "List registered cameras and their privacy state.",
		Long: `Lists every camera registered under the configured account.

For each device the command prints its id, channel name, online flag, and
the current privacy mode state when the model exposes it. Gateway address
can be provided as argument to override config (e.g., localhost:50051).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use gateway address argument if provided, otherwise rely on config.
			var gatewayAddress string
			if len(args) > 0 {
				gatewayAddress = args[0]
			}

			options := &discover.Options{
				ConfigPath:     configPath,
				GatewayAddress: gatewayAddress,
			}

			return discover.Run(ctx, options)
		},
	}
)

// Execute runs the camera-discover CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
