package biometric

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/term"
)

const fprintdVerify = "fprintd-verify"

// Fprintd challenges the user through the fprintd daemon by running
// fprintd-verify. It only runs on an interactive terminal.
type Fprintd struct {
	binary     string
	notify     func(text string)
	lookPath   func(string) (string, error)
	run        func(ctx context.Context, path string) ([]byte, error)
	isTerminal func() bool
}

// NewFprintd returns an [Fprintd]. notify receives the text asking the user
// to touch the sensor; it may be nil. The terminal itself is never written
// to, it belongs to the UI.
func NewFprintd(notify func(text string)) *Fprintd {
	return &Fprintd{
		binary:   fprintdVerify,
		notify:   notify,
		lookPath: exec.LookPath,
		run: func(ctx context.Context, path string) ([]byte, error) {
			return exec.CommandContext(ctx, path).CombinedOutput()
		},
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Challenge announces prompt and waits for fprintd-verify to finish. A missing
// binary, a missing terminal, no reader and no enrolled finger all map to
// [Unavailable].
func (f *Fprintd) Challenge(ctx context.Context, prompt string) (Outcome, error) {
	if !f.isTerminal() {
		return Unavailable, nil
	}

	path, err := f.lookPath(f.binary)
	if err != nil {
		return Unavailable, nil
	}

	if f.notify != nil {
		f.notify(TouchSensorText(prompt))
	}

	out, runErr := f.run(ctx, path)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Unavailable, ctxErr
	}

	outcome := parseVerifyOutput(out)
	if runErr != nil && outcome == Unavailable {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return Unavailable, fmt.Errorf("run %s: %w", f.binary, runErr)
		}
	}

	return outcome, nil
}

// TouchSensorText is the line shown while the sensor waits for a finger.
func TouchSensorText(prompt string) string {
	return prompt + " : posez votre doigt sur le lecteur…"
}

// parseVerifyOutput reads the "Verify result:" lines of fprintd-verify.
func parseVerifyOutput(out []byte) Outcome {
	switch {
	case bytes.Contains(out, []byte("verify-match")):
		return Success
	case bytes.Contains(out, []byte("verify-no-match")),
		bytes.Contains(out, []byte("verify-retry-scan")),
		bytes.Contains(out, []byte("verify-swipe-too-short")),
		bytes.Contains(out, []byte("verify-finger-not-centered")),
		bytes.Contains(out, []byte("verify-remove-and-retry")):
		return Failure
	}

	// "No devices available", "No fingers enrolled" and daemon errors
	return Unavailable
}
