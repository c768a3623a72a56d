// Package logger is the zap-based logging layer shared by the bridge
// binaries. It offers:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing for the log_level setting and runtime level changes,
//   - convenience functions (Infof, ErrorKV, etc.).
//
// Every service takes a context and logs through the logger carried in it,
// so event handling, device passes, and the CLIs all produce scoped,
// structured output.
package logger
