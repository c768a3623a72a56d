package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/sia-camera-bridge/internal/camera"
	"github.com/oshokin/sia-camera-bridge/internal/config"
	pb "github.com/oshokin/sia-camera-bridge/internal/pb/v1"
)

// Connector opens device-control sessions against the gateway sidecar.
// It implements camera.Connector.
type Connector struct {
	// address is the gateway gRPC address.
	address string
	// credentials identify the cloud account on every call.
	credentials *pb.GatewayCredentials
	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures connector behaviour.
type Option func(*Connector)

// WithCallTimeout sets a default timeout for gateway calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Connector) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("gateway address must be provided")
	// errCredentialsRequired is returned when cloud credentials are missing.
	errCredentialsRequired = errors.New("credentials must be provided")
)

// NewConnector builds a connector for the gateway at the given address.
// Note: this uses insecure transport credentials; deploy the gateway as a
// local sidecar or terminate TLS in a proxy until native TLS is added.
func NewConnector(address, appID, appSecret string, opts ...Option) (*Connector, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	if appID == "" || appSecret == "" {
		return nil, errCredentialsRequired
	}

	connector := &Connector{
		address: address,
		credentials: &pb.GatewayCredentials{
			AppId:     appID,
			AppSecret: appSecret,
		},
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(connector)
	}

	return connector, nil
}

// Connect opens a session with its own gRPC connection. Connections are
// deliberately per-session so an action run never observes another run's
// transport state.
func (c *Connector) Connect(_ context.Context) (camera.Session, error) {
	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(c.address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial device gateway: %w", err)
	}

	session := newSession(pb.NewDeviceGatewayServiceClient(conn), c.credentials, c.callTimeout)
	session.conn = conn

	return session, nil
}
