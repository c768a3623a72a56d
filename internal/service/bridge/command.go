package bridge

import (
	"context"
	"fmt"

	"github.com/oshokin/sia-camera-bridge/internal/camera/gateway"
	"github.com/oshokin/sia-camera-bridge/internal/config"
	domain "github.com/oshokin/sia-camera-bridge/internal/domain/sia"
	"github.com/oshokin/sia-camera-bridge/internal/logger"
	"github.com/oshokin/sia-camera-bridge/internal/sia"
)

// Options controls the sia-bridge process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional bind address override for the
	// panel event server.
	ListenAddress string
}

// Run starts the bridge daemon and blocks until context is canceled or a
// shutdown is requested. Loads configuration first, then wires the device
// gateway client, the executor, and the panel event server together.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "sia-bridge")

	// Load configuration first to get bind and gateway settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
		logger.SetLevel(level)
	}

	// Determine listen address: CLI argument overrides config.
	listenAddress := settings.BindSocket()
	if opts.ListenAddress != "" {
		listenAddress = opts.ListenAddress
	}

	// The gateway client talks to the device sidecar; every call carries
	// the configured per-call timeout.
	connector, err := gateway.NewConnector(
		settings.GatewayAddress,
		settings.AppID,
		settings.AppSecret,
		gateway.WithCallTimeout(settings.Timeout),
	)
	if err != nil {
		return fmt.Errorf("initialise device gateway client: %w", err)
	}

	accounts := []domain.Account{{
		ID:  settings.SIAAccountID,
		Key: settings.SIAEncryptionKey,
	}}

	controller := NewController(
		func(sink EventSink) EventServer {
			return sia.NewServer(listenAddress, accounts, sink)
		},
		NewExecutor(connector),
		WithStartupCheck(settings.StartupCheckEnabled()),
	)

	if err := controller.Start(ctx); err != nil {
		return fmt.Errorf("start bridge: %w", err)
	}

	logger.InfoKV(ctx, "SIA camera bridge started",
		"listen_address", listenAddress,
		"account", settings.SIAAccountID)

	return controller.RunForever(ctx)
}
