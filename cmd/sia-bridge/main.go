package main

import "github.com/oshokin/sia-camera-bridge/cmd/sia-bridge/cmd"

func main() {
	cmd.Execute()
}
