package bridge

import (
	"context"

	"github.com/oshokin/sia-camera-bridge/internal/camera"
	"github.com/oshokin/sia-camera-bridge/internal/logger"
)

// privacyCapability is the camera capability toggled by the bridge. Imou
// models expose privacy masking under this name.
const privacyCapability = "closeCamera"

// Executor applies a privacy state to every device reachable through the
// gateway. Failures never escape an action run; they are logged and the run
// keeps going, so a single broken camera cannot stall the rest of the fleet.
type Executor struct {
	// connector opens device-control sessions. One session per run, never
	// shared across runs.
	connector camera.Connector
}

// NewExecutor builds an executor on top of the given device connector.
func NewExecutor(connector camera.Connector) *Executor {
	return &Executor{connector: connector}
}

// Apply sets privacy mode on every capable online device. enable=true hides
// the cameras, enable=false makes them watch again. Failures are observable
// only through logs; the caller must not assume all-or-nothing success.
func (e *Executor) Apply(ctx context.Context, enable bool) {
	e.run(ctx, func(ctx context.Context, device camera.Summary, capability camera.Capability) {
		state, err := capability.Write(ctx, enable)
		if err != nil {
			logger.ErrorKV(ctx, "Failed to set privacy mode",
				"device_id", device.DeviceID,
				"channel_name", device.ChannelName,
				"error", err)

			return
		}

		logger.InfoKV(ctx, "Privacy mode updated",
			"device_id", device.DeviceID,
			"channel_name", device.ChannelName,
			"enabled", state)
	})
}

// Check reads and logs the current privacy state of every capable online
// device without changing it. Used at startup to surface the fleet's state.
func (e *Executor) Check(ctx context.Context) {
	e.run(ctx, func(ctx context.Context, device camera.Summary, capability camera.Capability) {
		state, err := capability.Read(ctx)
		if err != nil {
			logger.ErrorKV(ctx, "Failed to read privacy mode",
				"device_id", device.DeviceID,
				"channel_name", device.ChannelName,
				"error", err)

			return
		}

		logger.InfoKV(ctx, "Privacy mode state",
			"device_id", device.DeviceID,
			"channel_name", device.ChannelName,
			"enabled", state)
	})
}

// run performs one enumerate-and-visit pass over the fleet. The session is
// scoped to the pass. An enumeration failure aborts the whole pass; any
// per-device failure skips only that device.
func (e *Executor) run(ctx context.Context, visit func(ctx context.Context, device camera.Summary, capability camera.Capability)) {
	session, err := e.connector.Connect(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to open device-control session", "error", err)

		return
	}

	defer func() {
		if err := session.Close(); err != nil {
			logger.WarnKV(ctx, "Failed to close device-control session", "error", err)
		}
	}()

	devices, err := session.ListDevices(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Device enumeration failed", "error", err)

		return
	}

	if len(devices) == 0 {
		logger.Warn(ctx, "No devices registered for the account")

		return
	}

	for _, summary := range devices {
		device := session.Device(summary)

		if err := device.Initialize(ctx); err != nil {
			logger.ErrorKV(ctx, "Failed to initialize device",
				"device_id", summary.DeviceID,
				"channel_name", summary.ChannelName,
				"error", err)

			continue
		}

		if err := device.RefreshStatus(ctx); err != nil {
			logger.ErrorKV(ctx, "Failed to refresh device status",
				"device_id", summary.DeviceID,
				"channel_name", summary.ChannelName,
				"error", err)

			continue
		}

		if !device.Online() {
			logger.InfoKV(ctx, "Device is offline, skipping",
				"device_id", summary.DeviceID,
				"channel_name", summary.ChannelName)

			continue
		}

		capability, ok := device.Capability(privacyCapability)
		if !ok {
			logger.DebugKV(ctx, "Device has no privacy capability, skipping",
				"device_id", summary.DeviceID,
				"channel_name", summary.ChannelName)

			continue
		}

		visit(ctx, summary, capability)
	}
}
