package gateway

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/oshokin/sia-camera-bridge/internal/camera"
	pb "github.com/oshokin/sia-camera-bridge/internal/pb/v1"
)

// session is a scoped gateway connection implementing camera.Session.
type session struct {
	// conn is the underlying gRPC connection, nil in tests.
	conn *grpc.ClientConn
	// api is the generated DeviceGatewayService client interface.
	api pb.DeviceGatewayServiceClient
	// credentials identify the cloud account on every call.
	credentials *pb.GatewayCredentials
	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// newSession wraps a gateway API client. Tests construct sessions over a
// fake client; production sessions are built by Connector.Connect.
func newSession(api pb.DeviceGatewayServiceClient, credentials *pb.GatewayCredentials, callTimeout time.Duration) *session {
	return &session{
		api:         api,
		credentials: credentials,
		callTimeout: callTimeout,
	}
}

// ListDevices enumerates every device reachable under the account.
func (s *session) ListDevices(ctx context.Context) ([]camera.Summary, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	response, err := s.api.ListDevices(callCtx, &pb.ListDevicesRequest{Credentials: s.credentials})
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	summaries := make([]camera.Summary, 0, len(response.GetDevices()))
	for _, entry := range response.GetDevices() {
		summaries = append(summaries, camera.Summary{
			DeviceID:    entry.GetDeviceId(),
			ChannelName: entry.GetChannelName(),
		})
	}

	return summaries, nil
}

// Device returns a handle for the summarised device.
func (s *session) Device(summary camera.Summary) camera.Device {
	return &device{
		session: s,
		summary: summary,
	}
}

// Close releases the underlying gRPC connection.
func (s *session) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}

	return s.conn.Close()
}

// callContext returns a context with the session's call timeout if
// configured, otherwise a cancellable child context without a deadline.
func (s *session) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.callTimeout)
}

// device is a handle on a single camera implementing camera.Device.
type device struct {
	// session is the owning gateway session.
	session *session
	// summary identifies the device.
	summary camera.Summary
	// online is the connectivity state as of the last initialize/refresh.
	online bool
	// capabilities is the set of boolean capability names the model exposes.
	capabilities map[string]struct{}
}

// Initialize prepares the handle and loads the device's capability set.
func (d *device) Initialize(ctx context.Context) error {
	callCtx, cancel := d.session.callContext(ctx)
	defer cancel()

	status, err := d.session.api.InitializeDevice(callCtx, d.request())
	if err != nil {
		return fmt.Errorf("initialize device: %w", err)
	}

	d.applyStatus(status)

	return nil
}

// RefreshStatus re-reads the device's online state and capability set.
func (d *device) RefreshStatus(ctx context.Context) error {
	callCtx, cancel := d.session.callContext(ctx)
	defer cancel()

	status, err := d.session.api.RefreshDevice(callCtx, d.request())
	if err != nil {
		return fmt.Errorf("refresh device: %w", err)
	}

	d.applyStatus(status)

	return nil
}

// Online reports the device's connectivity as of the last refresh.
func (d *device) Online() bool {
	return d.online
}

// Capability looks up a boolean capability by name.
func (d *device) Capability(name string) (camera.Capability, bool) {
	if _, ok := d.capabilities[name]; !ok {
		return nil, false
	}

	return &capability{
		device: d,
		name:   name,
	}, true
}

// request builds the device-scoped request common to status RPCs.
func (d *device) request() *pb.DeviceRequest {
	return &pb.DeviceRequest{
		Credentials: d.session.credentials,
		DeviceId:    d.summary.DeviceID,
	}
}

// applyStatus stores the gateway's view of the device.
func (d *device) applyStatus(status *pb.DeviceStatus) {
	d.online = status.GetOnline()

	d.capabilities = make(map[string]struct{}, len(status.GetCapabilities()))
	for _, name := range status.GetCapabilities() {
		d.capabilities[name] = struct{}{}
	}
}

// capability is a boolean switch of one device implementing camera.Capability.
type capability struct {
	// device is the owning handle.
	device *device
	// name is the capability name on the gateway.
	name string
}

// Read returns the current state of the switch.
func (c *capability) Read(ctx context.Context) (bool, error) {
	callCtx, cancel := c.device.session.callContext(ctx)
	defer cancel()

	state, err := c.device.session.api.ReadCapability(callCtx, &pb.CapabilityRequest{
		Credentials: c.device.session.credentials,
		DeviceId:    c.device.summary.DeviceID,
		Name:        c.name,
	})
	if err != nil {
		return false, fmt.Errorf("read capability %s: %w", c.name, err)
	}

	return state.GetEnabled(), nil
}

// Write sets the switch and returns the resulting state.
func (c *capability) Write(ctx context.Context, enabled bool) (bool, error) {
	callCtx, cancel := c.device.session.callContext(ctx)
	defer cancel()

	state, err := c.device.session.api.SetCapability(callCtx, &pb.SetCapabilityRequest{
		Credentials: c.device.session.credentials,
		DeviceId:    c.device.summary.DeviceID,
		Name:        c.name,
		Enabled:     enabled,
	})
	if err != nil {
		return false, fmt.Errorf("set capability %s: %w", c.name, err)
	}

	return state.GetEnabled(), nil
}
