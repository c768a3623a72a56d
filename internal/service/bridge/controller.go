package bridge

import (
	"context"
	"sync"

	domain "github.com/oshokin/sia-camera-bridge/internal/domain/sia"
	"github.com/oshokin/sia-camera-bridge/internal/logger"
)

// defaultQueueSize bounds the event handoff between the ingest transport and
// the action worker. Publishers block once the queue is full.
const defaultQueueSize = 16

// stage is the controller's lifecycle state.
type stage int

const (
	stageStopped stage = iota
	stageStarting
	stageRunning
	stageStopping
)

// String returns a human-readable stage name for logs.
func (s stage) String() string {
	switch s {
	case stageStopped:
		return "stopped"
	case stageStarting:
		return "starting"
	case stageRunning:
		return "running"
	case stageStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// EventSink receives validated panel events from the ingest transport.
type EventSink interface {
	HandlePanelEvent(ctx context.Context, event *domain.Event)
}

// EventServer is the ingest endpoint lifecycle the controller drives.
type EventServer interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// runner runs device action passes. Satisfied by Executor.
type runner interface {
	Apply(ctx context.Context, enable bool)
	Check(ctx context.Context)
}

// Option configures optional controller behaviour.
type Option func(*Controller)

// WithStartupCheck controls whether Start performs one read-only pass over
// the fleet before binding the ingest endpoint. Enabled by default.
func WithStartupCheck(enabled bool) Option {
	return func(c *Controller) {
		c.startupCheck = enabled
	}
}

// WithQueueSize overrides the bounded event queue capacity.
func WithQueueSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.events = make(chan domain.Action, size)
		}
	}
}

// Controller owns the daemon lifecycle. It wires the ingest endpoint to the
// classifier and the executor, and guarantees at most one device-mutation
// pass is in flight no matter how many events arrive concurrently.
type Controller struct {
	server       EventServer
	runner       runner
	startupCheck bool

	// mu guards stage transitions.
	mu    sync.Mutex
	stage stage

	// events is the bounded handoff from the transport to the worker.
	events chan domain.Action
	// stopCh tells the worker to exit. Recreated on every Start.
	stopCh chan struct{}

	// actionMu serializes action runs. The single worker makes it
	// redundant in steady state, but the startup check and any future
	// caller go through the same lock, keeping the single-flight
	// guarantee explicit.
	actionMu sync.Mutex

	// shutdownCh wakes RunForever. Closed at most once.
	shutdownCh   chan struct{}
	shutdownOnce sync.Once
}

// NewController builds a controller in the stopped stage. newServer is
// called once with the controller as the event sink; the returned server is
// started and stopped by the controller.
func NewController(newServer func(sink EventSink) EventServer, r runner, opts ...Option) *Controller {
	c := &Controller{
		runner:       r,
		startupCheck: true,
		events:       make(chan domain.Action, defaultQueueSize),
		shutdownCh:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.server = newServer(c)

	return c
}

// Start performs the optional startup check, binds the ingest endpoint, and
// launches the action worker. Calling Start while not stopped is a warned
// no-op. A bind failure leaves the controller stopped and is returned.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()

	if c.stage != stageStopped {
		current := c.stage
		c.mu.Unlock()

		logger.WarnKV(ctx, "Start ignored", "stage", current.String())

		return nil
	}

	c.stage = stageStarting
	c.mu.Unlock()

	// Surface the fleet's current privacy state before accepting events.
	// A failed check is logged by the executor and never blocks startup.
	if c.startupCheck {
		c.actionMu.Lock()
		c.runner.Check(ctx)
		c.actionMu.Unlock()
	}

	if err := c.server.Start(ctx); err != nil {
		c.mu.Lock()
		c.stage = stageStopped
		c.mu.Unlock()

		return err
	}

	c.mu.Lock()
	c.stopCh = make(chan struct{})
	c.stage = stageRunning
	c.mu.Unlock()

	go c.worker(ctx, c.stopCh)

	logger.Info(ctx, "Bridge is running")

	return nil
}

// Stop shuts down the ingest endpoint and releases the worker. It does not
// wait for an in-flight action run; the run finishes on its own and no new
// runs start. Calling Stop while not running is a warned no-op.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()

	if c.stage != stageRunning {
		current := c.stage
		c.mu.Unlock()

		logger.WarnKV(ctx, "Stop ignored", "stage", current.String())

		return nil
	}

	c.stage = stageStopping
	stopCh := c.stopCh
	c.mu.Unlock()

	err := c.server.Stop(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to stop panel event server", "error", err)
	}

	close(stopCh)

	c.mu.Lock()
	c.stage = stageStopped
	c.mu.Unlock()

	logger.Info(ctx, "Bridge stopped")

	return err
}

// RunForever suspends the caller until RequestShutdown is called or ctx is
// canceled, then performs a clean Stop and returns its result.
func (c *Controller) RunForever(ctx context.Context) error {
	select {
	case <-ctx.Done():
		logger.Info(ctx, "Context canceled, shutting down")
	case <-c.shutdownCh:
		logger.Info(ctx, "Shutdown requested")
	}

	return c.Stop(context.WithoutCancel(ctx))
}

// RequestShutdown wakes a suspended RunForever. Safe to call from a signal
// handler and safe to call more than once.
func (c *Controller) RequestShutdown() {
	c.shutdownOnce.Do(func() {
		close(c.shutdownCh)
	})
}

// HandlePanelEvent classifies one decoded panel event and enqueues the
// resulting action. Non-actionable codes return immediately without touching
// the queue or the serialization lock. Implements the ingest sink; may block
// while the queue is full, which backpressures the publisher.
func (c *Controller) HandlePanelEvent(ctx context.Context, event *domain.Event) {
	action := domain.Classify(event.Code)
	if action == domain.ActionNone {
		logger.DebugKV(ctx, "Ignoring panel event",
			"account", event.Account,
			"code", event.Code)

		return
	}

	logger.InfoKV(ctx, "Panel event accepted",
		"account", event.Account,
		"code", event.Code,
		"zone", event.Zone,
		"action", action.String())

	c.mu.Lock()
	stopCh := c.stopCh
	running := c.stage == stageRunning
	c.mu.Unlock()

	if !running {
		logger.WarnKV(ctx, "Dropping event, bridge is not running", "code", event.Code)

		return
	}

	select {
	case c.events <- action:
	case <-stopCh:
		logger.WarnKV(ctx, "Dropping event, bridge is stopping", "code", event.Code)
	}
}

// worker drains the event queue one action at a time.
func (c *Controller) worker(ctx context.Context, stopCh <-chan struct{}) {
	for {
		select {
		case action := <-c.events:
			c.runAction(ctx, action)
		case <-stopCh:
			return
		}
	}
}

// runAction performs one serialized executor pass for the given action.
func (c *Controller) runAction(ctx context.Context, action domain.Action) {
	c.actionMu.Lock()
	defer c.actionMu.Unlock()

	c.runner.Apply(ctx, action.PrivacyTarget())
}
