// Package version exposes build metadata for the bridge binaries.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags and default to sensible values for local builds. Short and
// Full render the version string for the CLI `version` subcommand and logs.
package version
