package sia

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"google.golang.org/grpc"

	api "github.com/oshokin/sia-camera-bridge/internal/api/grpc/panel"
	domain "github.com/oshokin/sia-camera-bridge/internal/domain/sia"
	"github.com/oshokin/sia-camera-bridge/internal/logger"
	pb "github.com/oshokin/sia-camera-bridge/internal/pb/v1"
)

// ErrNotStarted indicates Stop was called before Start.
var ErrNotStarted = errors.New("server not started")

// Server accepts decoded panel events over gRPC and forwards them to the
// bridge. It owns the listening socket and the gRPC server lifecycle; the
// wire-level SIA receiver runs as a separate process and publishes here.
type Server struct {
	// address is the bind socket, e.g. "0.0.0.0:12128".
	address string
	// accounts lists the panel accounts events are accepted for.
	accounts []domain.Account
	// sink consumes accepted events.
	sink api.Sink

	mu         sync.Mutex
	grpcServer *grpc.Server
	listener   net.Listener
}

// NewServer builds a panel event server bound to address that delivers
// accepted events to sink.
func NewServer(address string, accounts []domain.Account, sink api.Sink) *Server {
	return &Server{
		address:  address,
		accounts: accounts,
		sink:     sink,
	}
}

// Start binds the listening socket and begins serving in the background.
// A bind failure (port already taken, bad address) is returned to the
// caller; serve-loop failures after a successful bind are logged.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grpcServer != nil {
		return nil
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterPanelEventServiceServer(grpcServer, api.NewServer(s.accounts, s.sink))

	s.grpcServer = grpcServer
	s.listener = lis

	logger.InfoKV(ctx, "Panel event server listening", "listen_address", lis.Addr().String())

	go func() {
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.ErrorKV(ctx, "Panel event server failed", "error", err)
		}
	}()

	return nil
}

// Addr returns the bound listener address, or the configured address if the
// server has not started. Useful when binding to port 0.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.address
}

// Stop drains in-flight RPCs and shuts the server down. It blocks until the
// graceful stop finishes or ctx expires, whichever comes first.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	grpcServer := s.grpcServer
	s.grpcServer = nil
	s.listener = nil
	s.mu.Unlock()

	if grpcServer == nil {
		return ErrNotStarted
	}

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		logger.Info(ctx, "Panel event server stopped")
		return nil
	case <-ctx.Done():
		grpcServer.Stop()
		<-done

		return ctx.Err()
	}
}
