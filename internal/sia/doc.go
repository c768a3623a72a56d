// Package sia hosts the panel event ingest endpoint.
//
// The wire-level SIA DC-09 receiver runs as a separate process; it decrypts
// and acknowledges frames itself and republishes decoded events to this
// server over gRPC. The package owns the listening socket and the server
// lifecycle so the bridge controller can start and stop ingest as a unit.
package sia
