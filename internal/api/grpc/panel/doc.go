// Package panel implements the gRPC transport for panel event ingest.
//
// It adapts protobuf messages to domain events, validates the reporting
// account, and hands accepted events to a provided sink interface.
package panel
