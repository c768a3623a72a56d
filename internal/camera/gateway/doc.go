// Package gateway implements the camera device-control interfaces over the
// DeviceGatewayService gRPC API. The gateway sidecar owns the camera cloud
// transport; this package only maps sessions, device handles and capability
// switches onto its RPCs.
package gateway
