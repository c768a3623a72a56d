// Package discover implements the camera-discover command.
//
// It lists every device registered under the configured account with its
// online flag and current privacy state. Useful when onboarding a fleet or
// checking what the bridge will act on.
package discover
