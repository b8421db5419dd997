// Package biometric provides the fingerprint check offered before the PIN
// screen.
package biometric

import (
	"context"
	"errors"
)

// Outcome is the result of a single biometric challenge. It is never
// persisted.
type Outcome int

const (
	// Unavailable means no sensor, no enrolled finger or no terminal to
	// prompt on. Callers fall through to the PIN.
	Unavailable Outcome = iota
	// Failure means the user was prompted and did not match.
	Failure
	// Success means the user matched.
	Success
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unavailable"
	}
}

// DefaultPrompt is shown when unlocking the vault.
const DefaultPrompt = "Accès DocVault"

// ErrUnknownKind is returned by [New] for an unsupported prompt kind.
var ErrUnknownKind = errors.New("unknown biometric kind")

// Prompt runs a biometric challenge.
type Prompt interface {
	Challenge(ctx context.Context, prompt string) (Outcome, error)
}

// Disabled never prompts and always reports [Unavailable].
type Disabled struct{}

func (Disabled) Challenge(context.Context, string) (Outcome, error) {
	return Unavailable, nil
}

// New returns the prompt for kind: "fprintd" or "none". notify is handed to
// prompts that need to tell the user what to do.
func New(kind string, notify func(text string)) (Prompt, error) {
	switch kind {
	case "fprintd":
		return NewFprintd(notify), nil
	case "none", "":
		return Disabled{}, nil
	}
	return nil, ErrUnknownKind
}
