package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/sia-camera-bridge/internal/domain/sia"
)

// fakeRunner records action passes and can block inside Apply to simulate a
// long device run.
type fakeRunner struct {
	// mu guards the recorded counters.
	mu sync.Mutex
	// applies holds the target of every completed Apply, in order.
	applies []bool
	// checks counts Check calls.
	checks int
	// started, when set, receives the target as each Apply begins.
	started chan bool
	// release, when set, blocks each Apply until a value is received.
	release chan struct{}
}

// Apply optionally signals its start, optionally blocks, then records the
// target.
func (f *fakeRunner) Apply(_ context.Context, enable bool) {
	if f.started != nil {
		f.started <- enable
	}

	if f.release != nil {
		<-f.release
	}

	f.mu.Lock()
	f.applies = append(f.applies, enable)
	f.mu.Unlock()
}

// Check records the call.
func (f *fakeRunner) Check(context.Context) {
	f.mu.Lock()
	f.checks++
	f.mu.Unlock()
}

// appliedTargets returns a copy of the completed Apply targets.
func (f *fakeRunner) appliedTargets() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]bool(nil), f.applies...)
}

// checkCount returns how many times Check was called.
func (f *fakeRunner) checkCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.checks
}

// fakeEventServer records lifecycle calls and captures the sink it was built
// with.
type fakeEventServer struct {
	// mu guards the counters.
	mu sync.Mutex
	// sink is the event sink passed to the factory.
	sink EventSink
	// startErr makes Start fail.
	startErr error
	// starts and stops count lifecycle calls.
	starts, stops int
}

// Start counts the call and returns the configured error.
func (f *fakeEventServer) Start(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.startErr != nil {
		return f.startErr
	}

	f.starts++

	return nil
}

// Stop counts the call.
func (f *fakeEventServer) Stop(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stops++

	return nil
}

// stopCount returns how many times Stop was called.
func (f *fakeEventServer) stopCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stops
}

// factory returns a server constructor that hands out the given fake and
// captures the sink.
func factory(server *fakeEventServer) func(sink EventSink) EventServer {
	return func(sink EventSink) EventServer {
		server.sink = sink

		return server
	}
}

// waitFor polls the condition until it holds or the deadline passes.
func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	require.Eventually(t, condition, time.Second, 5*time.Millisecond)
}

// TestController_IgnoredCodeNeverRuns ensures non-actionable codes never
// reach the runner.
func TestController_IgnoredCodeNeverRuns(t *testing.T) {
	t.Parallel()

	runner := new(fakeRunner)
	server := new(fakeEventServer)
	c := NewController(factory(server), runner, WithStartupCheck(false))

	require.NoError(t, c.Start(context.Background()))

	c.HandlePanelEvent(context.Background(), &domain.Event{Code: "XX"})
	c.HandlePanelEvent(context.Background(), &domain.Event{Code: "BA"})
	// An actionable event afterwards proves the worker is alive and that
	// the earlier codes produced no pass of their own.
	c.HandlePanelEvent(context.Background(), &domain.Event{Code: "CL"})

	waitFor(t, func() bool { return len(runner.appliedTargets()) == 1 })
	require.Equal(t, []bool{false}, runner.appliedTargets())

	require.NoError(t, c.Stop(context.Background()))
}

// TestController_SerializesActionRuns ensures a second actionable event does
// not start its device pass until the first pass has fully returned.
func TestController_SerializesActionRuns(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{
		started: make(chan bool),
		release: make(chan struct{}),
	}
	server := new(fakeEventServer)
	c := NewController(factory(server), runner, WithStartupCheck(false))

	require.NoError(t, c.Start(context.Background()))

	c.HandlePanelEvent(context.Background(), &domain.Event{Code: "CL"})
	c.HandlePanelEvent(context.Background(), &domain.Event{Code: "OP"})

	// First pass begins: CL disarms privacy.
	require.False(t, <-runner.started)

	// While the first pass is blocked, the second must not begin.
	select {
	case <-runner.started:
		t.Fatal("second action run started before the first finished")
	case <-time.After(50 * time.Millisecond):
	}

	runner.release <- struct{}{}

	// Second pass begins only now: OP enables privacy.
	require.True(t, <-runner.started)
	runner.release <- struct{}{}

	waitFor(t, func() bool { return len(runner.appliedTargets()) == 2 })
	require.Equal(t, []bool{false, true}, runner.appliedTargets())

	require.NoError(t, c.Stop(context.Background()))
}

// TestController_StartupCheck ensures the optional read-only pass runs before
// the ingest endpoint starts, and can be disabled.
func TestController_StartupCheck(t *testing.T) {
	t.Parallel()

	runner := new(fakeRunner)
	server := new(fakeEventServer)
	c := NewController(factory(server), runner)

	require.NoError(t, c.Start(context.Background()))
	require.Equal(t, 1, runner.checkCount())
	require.NoError(t, c.Stop(context.Background()))

	disabled := new(fakeRunner)
	quiet := new(fakeEventServer)
	d := NewController(factory(quiet), disabled, WithStartupCheck(false))

	require.NoError(t, d.Start(context.Background()))
	require.Zero(t, disabled.checkCount())
	require.NoError(t, d.Stop(context.Background()))
}

// TestController_StartStopTransitions ensures redundant Start and Stop calls
// are no-ops and a bind failure leaves the controller restartable.
func TestController_StartStopTransitions(t *testing.T) {
	t.Parallel()

	runner := new(fakeRunner)
	server := new(fakeEventServer)
	c := NewController(factory(server), runner, WithStartupCheck(false))

	// Stop before Start is a no-op.
	require.NoError(t, c.Stop(context.Background()))
	require.Zero(t, server.stopCount())

	require.NoError(t, c.Start(context.Background()))

	// Second Start while running is a no-op.
	require.NoError(t, c.Start(context.Background()))

	server.mu.Lock()
	starts := server.starts
	server.mu.Unlock()
	require.Equal(t, 1, starts)

	require.NoError(t, c.Stop(context.Background()))
	require.Equal(t, 1, server.stopCount())

	// Second Stop is a no-op.
	require.NoError(t, c.Stop(context.Background()))
	require.Equal(t, 1, server.stopCount())
}

// TestController_StartBindFailure ensures a failed endpoint start is returned
// and the controller can be started again.
func TestController_StartBindFailure(t *testing.T) {
	t.Parallel()

	runner := new(fakeRunner)
	server := &fakeEventServer{startErr: errors.New("address already in use")}
	c := NewController(factory(server), runner, WithStartupCheck(false))

	require.Error(t, c.Start(context.Background()))

	server.mu.Lock()
	server.startErr = nil
	server.mu.Unlock()

	require.NoError(t, c.Start(context.Background()))
	require.NoError(t, c.Stop(context.Background()))
}

// TestController_RequestShutdownWakesRunForever ensures a shutdown request
// promptly returns RunForever with exactly one Stop, and that repeated
// requests are safe.
func TestController_RequestShutdownWakesRunForever(t *testing.T) {
	t.Parallel()

	runner := new(fakeRunner)
	server := new(fakeEventServer)
	c := NewController(factory(server), runner, WithStartupCheck(false))

	require.NoError(t, c.Start(context.Background()))

	done := make(chan error, 1)

	go func() {
		done <- c.RunForever(context.Background())
	}()

	c.RequestShutdown()
	c.RequestShutdown()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("RunForever did not return after shutdown request")
	}

	require.Equal(t, 1, server.stopCount())
}

// TestController_ContextCancelStops ensures context cancellation also wakes
// RunForever and stops the bridge cleanly.
func TestController_ContextCancelStops(t *testing.T) {
	t.Parallel()

	runner := new(fakeRunner)
	server := new(fakeEventServer)
	c := NewController(factory(server), runner, WithStartupCheck(false))

	require.NoError(t, c.Start(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- c.RunForever(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("RunForever did not return after context cancellation")
	}

	require.Equal(t, 1, server.stopCount())
}

// TestController_DropsEventsWhileStopped ensures events arriving outside the
// running stage never reach the runner.
func TestController_DropsEventsWhileStopped(t *testing.T) {
	t.Parallel()

	runner := new(fakeRunner)
	server := new(fakeEventServer)
	c := NewController(factory(server), runner, WithStartupCheck(false))

	c.HandlePanelEvent(context.Background(), &domain.Event{Code: "CL"})

	require.Empty(t, runner.appliedTargets())
}

// TestController_ServerSinkIsController ensures the controller registers
// itself as the endpoint's event sink.
func TestController_ServerSinkIsController(t *testing.T) {
	t.Parallel()

	server := new(fakeEventServer)
	c := NewController(factory(server), new(fakeRunner), WithStartupCheck(false))

	require.Same(t, c, server.sink)
}
