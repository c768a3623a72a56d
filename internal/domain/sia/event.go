package sia

// Event is a decoded alarm panel message delivered by the event receiver.
// The bridge only reads it; ownership stays with the transport layer.
type Event struct {
	// Account is the SIA account identifier the panel reported.
	Account string
	// Code is the short SIA status code, e.g. "CL", "NL", "OP".
	Code string
	// Message is the free-text payload carried by the event.
	Message string
	// Zone is the zone or line reference of the event.
	Zone string
	// Type is the optional classification of the code, e.g. "ARM".
	Type string
}
