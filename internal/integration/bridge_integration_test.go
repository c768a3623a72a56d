package integration

import (
	"context"
	"net"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/oshokin/sia-camera-bridge/internal/config"
	pb "github.com/oshokin/sia-camera-bridge/internal/pb/v1"
	"github.com/oshokin/sia-camera-bridge/internal/service/bridge"
)

// fakeGateway is an in-memory DeviceGatewayService with a single online
// camera exposing the privacy capability.
type fakeGateway struct {
	pb.UnimplementedDeviceGatewayServiceServer

	// mu guards the recorded state.
	mu sync.Mutex
	// privacyOn is the camera's current privacy state.
	privacyOn bool
	// sets holds every SetCapability request, in order.
	sets []*pb.SetCapabilityRequest
}

// ListDevices returns the single test camera.
func (f *fakeGateway) ListDevices(context.Context, *pb.ListDevicesRequest) (*pb.ListDevicesResponse, error) {
	return &pb.ListDevicesResponse{
		Devices: []*pb.DeviceSummary{{DeviceId: "CAM-1", ChannelName: "Hallway"}},
	}, nil
}

// InitializeDevice reports the camera online with the privacy capability.
func (f *fakeGateway) InitializeDevice(context.Context, *pb.DeviceRequest) (*pb.DeviceStatus, error) {
	return f.deviceStatus(), nil
}

// RefreshDevice reports the camera online with the privacy capability.
func (f *fakeGateway) RefreshDevice(context.Context, *pb.DeviceRequest) (*pb.DeviceStatus, error) {
	return f.deviceStatus(), nil
}

// ReadCapability returns the current privacy state.
func (f *fakeGateway) ReadCapability(_ context.Context, in *pb.CapabilityRequest) (*pb.CapabilityState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return &pb.CapabilityState{
		Name:    in.GetName(),
		Enabled: f.privacyOn,
	}, nil
}

// SetCapability records the request and applies the new state.
func (f *fakeGateway) SetCapability(_ context.Context, in *pb.SetCapabilityRequest) (*pb.CapabilityState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sets = append(f.sets, in)
	f.privacyOn = in.GetEnabled()

	return &pb.CapabilityState{
		Name:    in.GetName(),
		Enabled: in.GetEnabled(),
	}, nil
}

// deviceStatus builds the fixed status of the test camera.
func (f *fakeGateway) deviceStatus() *pb.DeviceStatus {
	return &pb.DeviceStatus{
		DeviceId:     "CAM-1",
		Online:       true,
		Capabilities: []string{"closeCamera"},
	}
}

// recordedSets returns a copy of the SetCapability requests.
func (f *fakeGateway) recordedSets() []*pb.SetCapabilityRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*pb.SetCapabilityRequest(nil), f.sets...)
}

// startGateway serves the fake gateway on a loopback port and returns its
// address. The server stops with the test.
func startGateway(t *testing.T, gateway *fakeGateway) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := grpc.NewServer()
	pb.RegisterDeviceGatewayServiceServer(grpcServer, gateway)

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	t.Cleanup(grpcServer.Stop)

	return lis.Addr().String()
}

// reservePort grabs a free loopback port for the bridge to bind.
func reservePort(t *testing.T) (host string, port uint16) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := lis.Addr().String()
	_ = lis.Close()

	h, p, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	parsed, err := strconv.ParseUint(p, 10, 16)
	require.NoError(t, err)

	return h, uint16(parsed)
}

// dialPanel connects a panel event client to the bridge.
func dialPanel(t *testing.T, addr string) pb.PanelEventServiceClient {
	t.Helper()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewPanelEventServiceClient(conn)
}

// publish sends one panel event and returns the call error.
func publish(ctx context.Context, client pb.PanelEventServiceClient, account, code string) error {
	callCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := client.PublishPanelEvent(callCtx, &pb.PublishPanelEventRequest{
		Event: &pb.PanelEvent{
			Account:   account,
			Code:      code,
			Message:   "integration",
			Zone:      "1",
			EventType: "SIA-DCS",
		},
	})

	return err
}

// TestBridge_EndToEnd runs the full daemon against a fake device gateway and
// drives it with real panel event RPCs: arming the panel turns privacy off,
// disarming turns it on, unknown accounts are rejected.
func TestBridge_EndToEnd(t *testing.T) {
	t.Parallel()

	gateway := new(fakeGateway)
	gateway.privacyOn = true

	gatewayAddr := startGateway(t, gateway)
	bindHost, bindPort := reservePort(t)

	// Create temporary config file for the bridge.
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		BindAddress:    bindHost,
		BindPort:       bindPort,
		SIAAccountID:   "AAA",
		GatewayAddress: gatewayAddr,
		AppID:          "test-app-id",
		AppSecret:      "test-app-secret",
		Timeout:        2 * time.Second,
	}))

	// Start the bridge in the background.
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- bridge.Run(runCtx, &bridge.Options{ConfigPath: cfgPath})
	}()

	// Wait for the bridge to bind.
	bridgeAddr := net.JoinHostPort(bindHost, strconv.Itoa(int(bindPort)))
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", bridgeAddr, 100*time.Millisecond)
		if err != nil {
			return false
		}

		_ = conn.Close()

		return true
	}, 5*time.Second, 50*time.Millisecond)

	client := dialPanel(t, bridgeAddr)
	ctx := context.Background()

	// Unknown account is rejected before any device traffic.
	err := publish(ctx, client, "BBB", "CL")
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	// Arming the panel turns privacy off.
	require.NoError(t, publish(ctx, client, "AAA", "CL"))
	require.Eventually(t, func() bool {
		return len(gateway.recordedSets()) == 1
	}, 5*time.Second, 20*time.Millisecond)

	first := gateway.recordedSets()[0]
	require.Equal(t, "CAM-1", first.GetDeviceId())
	require.Equal(t, "closeCamera", first.GetName())
	require.False(t, first.GetEnabled())

	// Disarming the panel turns privacy back on.
	require.NoError(t, publish(ctx, client, "AAA", "OP"))
	require.Eventually(t, func() bool {
		return len(gateway.recordedSets()) == 2
	}, 5*time.Second, 20*time.Millisecond)
	require.True(t, gateway.recordedSets()[1].GetEnabled())

	// Non-actionable codes produce no device traffic.
	require.NoError(t, publish(ctx, client, "AAA", "XX"))
	time.Sleep(100 * time.Millisecond)
	require.Len(t, gateway.recordedSets(), 2)

	// Context cancellation shuts the daemon down cleanly.
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not shut down")
	}
}

// TestBridge_AccountKeyRequired runs the daemon with an encryption key
// configured and verifies publishers must present it.
func TestBridge_AccountKeyRequired(t *testing.T) {
	t.Parallel()

	gateway := new(fakeGateway)
	gatewayAddr := startGateway(t, gateway)
	bindHost, bindPort := reservePort(t)

	startupCheck := false
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		BindAddress:      bindHost,
		BindPort:         bindPort,
		SIAAccountID:     "AAA",
		SIAEncryptionKey: "4A4B4C",
		GatewayAddress:   gatewayAddr,
		AppID:            "test-app-id",
		AppSecret:        "test-app-secret",
		Timeout:          2 * time.Second,
		StartupCheck:     &startupCheck,
	}))

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- bridge.Run(runCtx, &bridge.Options{ConfigPath: cfgPath})
	}()

	bridgeAddr := net.JoinHostPort(bindHost, strconv.Itoa(int(bindPort)))
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", bridgeAddr, 100*time.Millisecond)
		if err != nil {
			return false
		}

		_ = conn.Close()

		return true
	}, 5*time.Second, 50*time.Millisecond)

	client := dialPanel(t, bridgeAddr)

	// Without the key the event is rejected.
	err := publish(context.Background(), client, "AAA", "CL")
	require.Equal(t, codes.Unauthenticated, status.Code(err))
	require.Empty(t, gateway.recordedSets())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not shut down")
	}
}
