package camera

import "context"

// Summary is one entry of the account's device list.
type Summary struct {
	// DeviceID uniquely identifies the device within the account.
	DeviceID string
	// ChannelName is the display name of the device's first channel.
	ChannelName string
}

// Connector opens device-control sessions. The bridge acquires a fresh
// session for every action run and releases it when the run ends, so no
// device state is shared between runs.
type Connector interface {
	// Connect opens a session. The returned session must be closed by the
	// caller on every exit path.
	Connect(ctx context.Context) (Session, error)
}

// Session is a scoped device-control connection.
type Session interface {
	// ListDevices enumerates every device reachable under the account.
	ListDevices(ctx context.Context) ([]Summary, error)
	// Device returns a handle for the summarised device. The handle is not
	// usable until Initialize succeeds.
	Device(summary Summary) Device
	// Close releases the session.
	Close() error
}

// Device is a handle on a single camera.
type Device interface {
	// Initialize prepares the handle and loads the device's capability set.
	Initialize(ctx context.Context) error
	// RefreshStatus re-reads the device's online state.
	RefreshStatus(ctx context.Context) error
	// Online reports the device's connectivity as of the last refresh.
	Online() bool
	// Capability looks up a boolean capability by name. The second return
	// value is false when the device model does not expose it.
	Capability(name string) (Capability, bool)
}

// Capability is a boolean switch exposed by a device, such as privacy mode.
type Capability interface {
	// Read returns the current state of the switch.
	Read(ctx context.Context) (bool, error)
	// Write sets the switch and returns the resulting state.
	Write(ctx context.Context, enabled bool) (bool, error)
}
