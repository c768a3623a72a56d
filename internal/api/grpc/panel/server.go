package panel

import (
	"context"
	"crypto/subtle"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/sia-camera-bridge/internal/domain/sia"
	"github.com/oshokin/sia-camera-bridge/internal/logger"
	pb "github.com/oshokin/sia-camera-bridge/internal/pb/v1"
)

// KeyMetadataName is the request metadata entry carrying the account key.
const KeyMetadataName = "x-sia-key"

// Sink receives validated, decoded panel events. It may block while the
// bridge's event queue is full; the publisher's call blocks with it.
type Sink interface {
	HandlePanelEvent(ctx context.Context, event *domain.Event)
}

// Server implements the PanelEventService gRPC API. It validates the
// reported account, authenticates the publisher when the account carries a
// key, and hands accepted events to the sink.
type Server struct {
	pb.UnimplementedPanelEventServiceServer

	// accounts maps account ids to their configuration.
	accounts map[string]domain.Account
	// sink consumes accepted events.
	sink Sink
}

// NewServer wires the provided sink into a gRPC handler accepting events
// for the given accounts.
func NewServer(accounts []domain.Account, sink Sink) *Server {
	index := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		index[account.ID] = account
	}

	return &Server{
		accounts: index,
		sink:     sink,
	}
}

// PublishPanelEvent validates one decoded SIA event and delivers it to the
// bridge.
func (s *Server) PublishPanelEvent(ctx context.Context, req *pb.PublishPanelEventRequest) (*pb.PublishPanelEventResponse, error) {
	if req.GetEvent() == nil {
		return nil, status.Error(codes.InvalidArgument, "event is required")
	}

	event := toDomainEvent(req.GetEvent())

	account, ok := s.accounts[event.Account]
	if !ok {
		logger.WarnKV(ctx, "Rejected event for unknown account", "account", event.Account)

		return nil, status.Error(codes.PermissionDenied, "unknown account")
	}

	if err := authenticate(ctx, account); err != nil {
		logger.WarnKV(ctx, "Rejected event with bad account key", "account", event.Account)

		return nil, err
	}

	s.sink.HandlePanelEvent(ctx, event)

	return &pb.PublishPanelEventResponse{Accepted: true}, nil
}

// authenticate checks the publisher's account key when the account has one.
// The SIA encryption key never reaches the bridge as ciphertext, the
// receiver decrypts frames itself; here it doubles as a shared secret.
func authenticate(ctx context.Context, account domain.Account) error {
	if account.Key == "" {
		return nil
	}

	md, _ := metadata.FromIncomingContext(ctx)

	values := md.Get(KeyMetadataName)
	if len(values) == 0 {
		return status.Error(codes.Unauthenticated, "account key required")
	}

	if subtle.ConstantTimeCompare([]byte(values[0]), []byte(account.Key)) != 1 {
		return status.Error(codes.Unauthenticated, "account key mismatch")
	}

	return nil
}

// toDomainEvent converts a protobuf PanelEvent to a domain Event.
func toDomainEvent(event *pb.PanelEvent) *domain.Event {
	return &domain.Event{
		Account: event.GetAccount(),
		Code:    event.GetCode(),
		Message: event.GetMessage(),
		Zone:    event.GetZone(),
		Type:    event.GetEventType(),
	}
}
