package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/sia-camera-bridge/internal/config"
	"github.com/oshokin/sia-camera-bridge/internal/service/bridge"
	"github.com/oshokin/sia-camera-bridge/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for running the bridge daemon.
	rootCmd = &cobra.Command{
		Use:   "sia-bridge [listen-address]",
		Short: "Bridge SIA alarm panel events to camera privacy mode.",
		Long: `Runs the daemon that toggles camera privacy mode from alarm panel events.

The bridge accepts decoded SIA events from the panel receiver on the
configured bind address and applies the matching privacy state to every
camera registered under the account: arming the panel (CL, NL) turns
privacy off so the cameras watch, disarming it (OP) turns privacy on.
Listen address can be provided as argument to override config
(e.g., :12128, 0.0.0.0:12128).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &bridge.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
			}

			return bridge.Run(ctx, options)
		},
	}
)

// Execute runs the sia-bridge CLI and exits with non-zero status on error.
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
