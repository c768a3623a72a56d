// Package camera defines the device-control surface the bridge needs from a
// camera fleet: session-scoped enumeration, per-device status and boolean
// capability access. The production implementation lives in the gateway
// subpackage; tests substitute in-memory fakes.
package camera
