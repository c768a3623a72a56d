// Package bridge implements the event-to-action core of the daemon.
//
// The controller owns the lifecycle: it starts the panel event server,
// classifies decoded SIA events into privacy actions, and funnels all
// resulting device work through a single serialization lock so at most one
// enumerate-and-apply pass runs at a time. The executor performs those
// passes with per-device failure isolation.
package bridge
