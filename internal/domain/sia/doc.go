// Package sia holds the domain types of the bridge: the decoded panel event
// and the policy mapping SIA status codes to camera privacy actions.
package sia
