package gate

// Screen is one of the three screens the gate can open.
type Screen int

const (
	LoginRequired Screen = iota
	PinChallenge
	Unlocked
)

func (s Screen) String() string {
	switch s {
	case PinChallenge:
		return "pin_challenge"
	case Unlocked:
		return "unlocked"
	default:
		return "login_required"
	}
}

// PinMode tells the PIN pad whether a PIN is being created or checked. It is
// only meaningful on [PinChallenge].
type PinMode int

const (
	PinCreate PinMode = iota + 1
	PinVerify
)

func (m PinMode) String() string {
	switch m {
	case PinCreate:
		return "create"
	case PinVerify:
		return "verify"
	default:
		return ""
	}
}

// State is what the UI renders after a gate operation.
type State struct {
	Screen Screen
	Mode   PinMode
	// UserID is set on PinChallenge and Unlocked.
	UserID string
	// Notice is a user-facing message for the last operation, if any.
	Notice string
	// ClearInput asks the PIN pad to empty its field.
	ClearInput bool
	// Logo is the configured app logo path, "" when unset.
	Logo string
}

func loginRequired(notice string) State {
	return State{Screen: LoginRequired, Notice: notice}
}

func pinChallenge(mode PinMode, userID string) State {
	return State{Screen: PinChallenge, Mode: mode, UserID: userID}
}

func unlocked(userID string) State {
	return State{Screen: Unlocked, UserID: userID}
}
