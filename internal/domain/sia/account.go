package sia

// Account is an alarm panel account the bridge accepts events for.
type Account struct {
	// ID is the account identifier (3-16 hex characters).
	ID string
	// Key is the account's optional hex encryption key. When set, event
	// publishers must present it as a shared secret.
	Key string
}
