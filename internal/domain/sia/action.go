package sia

// Action is the camera-side reaction to a panel event code.
type Action int

const (
	// ActionNone means the event code does not affect camera privacy.
	ActionNone Action = iota
	// ActionDisablePrivacy turns privacy mode off so cameras watch again.
	// It corresponds to the panel being armed.
	ActionDisablePrivacy
	// ActionEnablePrivacy turns privacy mode on so cameras stop watching
	// while occupants are present. It corresponds to the panel being
	// disarmed.
	ActionEnablePrivacy
)

// SIA status codes the bridge reacts to. CL is a regular closing (arm),
// NL a late-to-open closing, OP a regular opening (disarm).
const (
	CodeClosing     = "CL"
	CodeLateClosing = "NL"
	CodeOpening     = "OP"
)

// Classify maps a SIA status code to the privacy action it implies.
// Unknown codes map to ActionNone. The mapping is domain policy, not
// protocol decoding: the receiver has already validated the frame.
func Classify(code string) Action {
	switch code {
	case CodeClosing, CodeLateClosing:
		return ActionDisablePrivacy
	case CodeOpening:
		return ActionEnablePrivacy
	default:
		return ActionNone
	}
}

// String returns a human-readable name for logging.
func (a Action) String() string {
	switch a {
	case ActionDisablePrivacy:
		return "disable-privacy"
	case ActionEnablePrivacy:
		return "enable-privacy"
	case ActionNone:
		return "none"
	default:
		return "unknown"
	}
}

// PrivacyTarget returns the privacy mode state the action requests.
// It must only be called for actionable values.
func (a Action) PrivacyTarget() bool {
	return a == ActionEnablePrivacy
}
