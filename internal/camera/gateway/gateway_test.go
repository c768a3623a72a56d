package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/oshokin/sia-camera-bridge/internal/camera"
	pb "github.com/oshokin/sia-camera-bridge/internal/pb/v1"
)

// cameraSummary builds a camera.Summary for the fakes.
func cameraSummary(deviceID, channelName string) camera.Summary {
	return camera.Summary{
		DeviceID:    deviceID,
		ChannelName: channelName,
	}
}

// fakeGatewayClient implements pb.DeviceGatewayServiceClient in memory for
// unit testing the session mapping.
type fakeGatewayClient struct {
	// devices is returned by ListDevices.
	devices []*pb.DeviceSummary
	// listErr makes ListDevices fail.
	listErr error
	// status maps device ids to the status returned by initialize/refresh.
	status map[string]*pb.DeviceStatus
	// states maps "deviceID/name" to the capability value.
	states map[string]bool
	// lastCredentials records the credentials of the most recent call.
	lastCredentials *pb.GatewayCredentials
}

// ListDevices returns the prepared device summaries.
func (f *fakeGatewayClient) ListDevices(_ context.Context, in *pb.ListDevicesRequest, _ ...grpc.CallOption) (*pb.ListDevicesResponse, error) {
	f.lastCredentials = in.GetCredentials()

	if f.listErr != nil {
		return nil, f.listErr
	}

	return &pb.ListDevicesResponse{Devices: f.devices}, nil
}

// InitializeDevice returns the scripted status for the device.
func (f *fakeGatewayClient) InitializeDevice(_ context.Context, in *pb.DeviceRequest, _ ...grpc.CallOption) (*pb.DeviceStatus, error) {
	return f.statusFor(in.GetDeviceId())
}

// RefreshDevice returns the scripted status for the device.
func (f *fakeGatewayClient) RefreshDevice(_ context.Context, in *pb.DeviceRequest, _ ...grpc.CallOption) (*pb.DeviceStatus, error) {
	return f.statusFor(in.GetDeviceId())
}

// ReadCapability returns the stored state for the capability.
func (f *fakeGatewayClient) ReadCapability(_ context.Context, in *pb.CapabilityRequest, _ ...grpc.CallOption) (*pb.CapabilityState, error) {
	return &pb.CapabilityState{
		Name:    in.GetName(),
		Enabled: f.states[in.GetDeviceId()+"/"+in.GetName()],
	}, nil
}

// SetCapability stores the new state and returns it.
func (f *fakeGatewayClient) SetCapability(_ context.Context, in *pb.SetCapabilityRequest, _ ...grpc.CallOption) (*pb.CapabilityState, error) {
	if f.states == nil {
		f.states = make(map[string]bool)
	}

	f.states[in.GetDeviceId()+"/"+in.GetName()] = in.GetEnabled()

	return &pb.CapabilityState{
		Name:    in.GetName(),
		Enabled: in.GetEnabled(),
	}, nil
}

// statusFor looks up the scripted status, failing for unknown devices.
func (f *fakeGatewayClient) statusFor(deviceID string) (*pb.DeviceStatus, error) {
	status, ok := f.status[deviceID]
	if !ok {
		return nil, errors.New("unknown device")
	}

	return status, nil
}

// testCredentials builds account credentials for the fakes.
func testCredentials() *pb.GatewayCredentials {
	return &pb.GatewayCredentials{
		AppId:     "test-app-id",
		AppSecret: "test-app-secret",
	}
}

// TestNewConnector_Validation ensures required constructor arguments are
// enforced.
func TestNewConnector_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewConnector("", "app-id", "app-secret")
	require.Error(t, err)

	_, err = NewConnector("localhost:50051", "", "app-secret")
	require.Error(t, err)

	_, err = NewConnector("localhost:50051", "app-id", "")
	require.Error(t, err)

	c, err := NewConnector("localhost:50051", "app-id", "app-secret", WithCallTimeout(time.Second))
	require.NoError(t, err)
	require.NotNil(t, c)
}

// TestSession_ListDevices ensures enumeration maps gateway summaries to
// camera summaries and carries the account credentials.
func TestSession_ListDevices(t *testing.T) {
	t.Parallel()

	api := &fakeGatewayClient{
		devices: []*pb.DeviceSummary{
			{DeviceId: "CAM-1", ChannelName: "Hallway"},
			{DeviceId: "CAM-2", ChannelName: "Garage"},
		},
	}
	s := newSession(api, testCredentials(), time.Second)

	devices, err := s.ListDevices(context.Background())

	require.NoError(t, err)
	require.Len(t, devices, 2)
	require.Equal(t, "CAM-1", devices[0].DeviceID)
	require.Equal(t, "Hallway", devices[0].ChannelName)
	require.Equal(t, "test-app-id", api.lastCredentials.GetAppId())
}

// TestSession_ListDevicesError ensures a gateway failure is surfaced.
func TestSession_ListDevicesError(t *testing.T) {
	t.Parallel()

	api := &fakeGatewayClient{listErr: errors.New("gateway unavailable")}
	s := newSession(api, testCredentials(), time.Second)

	_, err := s.ListDevices(context.Background())
	require.Error(t, err)
}

// TestDevice_StatusAndCapability ensures initialize populates the online
// flag and capability set, and that capability lookups respect it.
func TestDevice_StatusAndCapability(t *testing.T) {
	t.Parallel()

	api := &fakeGatewayClient{
		status: map[string]*pb.DeviceStatus{
			"CAM-1": {DeviceId: "CAM-1", Online: true, Capabilities: []string{"closeCamera", "motionDetect"}},
		},
	}
	s := newSession(api, testCredentials(), time.Second)

	device := s.Device(cameraSummary("CAM-1", "Hallway"))

	require.NoError(t, device.Initialize(context.Background()))
	require.True(t, device.Online())

	_, ok := device.Capability("closeCamera")
	require.True(t, ok)

	_, ok = device.Capability("nightVision")
	require.False(t, ok)
}

// TestDevice_RefreshUpdatesState ensures a refresh replaces the previous
// online flag and capability set.
func TestDevice_RefreshUpdatesState(t *testing.T) {
	t.Parallel()

	api := &fakeGatewayClient{
		status: map[string]*pb.DeviceStatus{
			"CAM-1": {DeviceId: "CAM-1", Online: true, Capabilities: []string{"closeCamera"}},
		},
	}
	s := newSession(api, testCredentials(), time.Second)

	device := s.Device(cameraSummary("CAM-1", "Hallway"))
	require.NoError(t, device.Initialize(context.Background()))
	require.True(t, device.Online())

	api.status["CAM-1"] = &pb.DeviceStatus{DeviceId: "CAM-1", Online: false}

	require.NoError(t, device.RefreshStatus(context.Background()))
	require.False(t, device.Online())

	_, ok := device.Capability("closeCamera")
	require.False(t, ok)
}

// TestDevice_InitializeError ensures an unknown device fails initialization.
func TestDevice_InitializeError(t *testing.T) {
	t.Parallel()

	api := &fakeGatewayClient{status: map[string]*pb.DeviceStatus{}}
	s := newSession(api, testCredentials(), time.Second)

	device := s.Device(cameraSummary("CAM-9", "Attic"))
	require.Error(t, device.Initialize(context.Background()))
}

// TestCapability_ReadWrite ensures reads and writes round-trip through the
// gateway with the device identity attached.
func TestCapability_ReadWrite(t *testing.T) {
	t.Parallel()

	api := &fakeGatewayClient{
		status: map[string]*pb.DeviceStatus{
			"CAM-1": {DeviceId: "CAM-1", Online: true, Capabilities: []string{"closeCamera"}},
		},
		states: map[string]bool{"CAM-1/closeCamera": true},
	}
	s := newSession(api, testCredentials(), time.Second)

	device := s.Device(cameraSummary("CAM-1", "Hallway"))
	require.NoError(t, device.Initialize(context.Background()))

	capability, ok := device.Capability("closeCamera")
	require.True(t, ok)

	enabled, err := capability.Read(context.Background())
	require.NoError(t, err)
	require.True(t, enabled)

	enabled, err = capability.Write(context.Background(), false)
	require.NoError(t, err)
	require.False(t, enabled)

	enabled, err = capability.Read(context.Background())
	require.NoError(t, err)
	require.False(t, enabled)
}
