package main

import "github.com/oshokin/sia-camera-bridge/cmd/camera-discover/cmd"

func main() {
	cmd.Execute()
}
