package discover

import (
	"context"
	"fmt"

	"github.com/oshokin/sia-camera-bridge/internal/camera"
	"github.com/oshokin/sia-camera-bridge/internal/camera/gateway"
	"github.com/oshokin/sia-camera-bridge/internal/config"
	"github.com/oshokin/sia-camera-bridge/internal/logger"
)

// privacyCapability is the capability whose state is reported per device.
const privacyCapability = "closeCamera"

// Options controls the device discovery run and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// GatewayAddress provides an optional device gateway address override.
	GatewayAddress string
}

// Run lists every device registered under the configured account together
// with its online flag and current privacy state. One-shot; returns after
// the listing completes.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "camera-discover")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	// Determine gateway address: command line argument overrides config.
	gatewayAddress := cfg.GatewayAddress
	if opts.GatewayAddress != "" {
		gatewayAddress = opts.GatewayAddress
	}

	connector, err := gateway.NewConnector(
		gatewayAddress,
		cfg.AppID,
		cfg.AppSecret,
		gateway.WithCallTimeout(cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("initialise device gateway client: %w", err)
	}

	session, err := connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect to device gateway: %w", err)
	}

	// Ensure session cleanup on function exit.
	defer func() {
		_ = session.Close()
	}()

	logger.InfoKV(ctx, "Discovering devices", "gateway_address", gatewayAddress)

	devices, err := session.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}

	if len(devices) == 0 {
		logger.Warn(ctx, "No devices registered for the account")

		return nil
	}

	for _, summary := range devices {
		describeDevice(ctx, session, summary)
	}

	return nil
}

// describeDevice logs one device's identity, reachability, and privacy
// state. Failures are logged and never abort the listing.
func describeDevice(ctx context.Context, session camera.Session, summary camera.Summary) {
	device := session.Device(summary)

	if err := device.Initialize(ctx); err != nil {
		logger.ErrorKV(ctx, "Failed to initialize device",
			"device_id", summary.DeviceID,
			"channel_name", summary.ChannelName,
			"error", err)

		return
	}

	if err := device.RefreshStatus(ctx); err != nil {
		logger.ErrorKV(ctx, "Failed to refresh device status",
			"device_id", summary.DeviceID,
			"channel_name", summary.ChannelName,
			"error", err)

		return
	}

	capability, ok := device.Capability(privacyCapability)
	if !ok {
		logger.InfoKV(ctx, "Discovered device",
			"device_id", summary.DeviceID,
			"channel_name", summary.ChannelName,
			"online", device.Online(),
			"privacy_capability", false)

		return
	}

	enabled, err := capability.Read(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to read privacy mode",
			"device_id", summary.DeviceID,
			"channel_name", summary.ChannelName,
			"error", err)

		return
	}

	logger.InfoKV(ctx, "Discovered device",
		"device_id", summary.DeviceID,
		"channel_name", summary.ChannelName,
		"online", device.Online(),
		"privacy_capability", true,
		"privacy_enabled", enabled)
}
