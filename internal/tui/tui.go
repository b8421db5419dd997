// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the two bubbletea programs of the client: the unlock gate and
// the vault.
type TUI struct {
	services  *service.ClientServices
	gate      *gate.Gate
	secrets   gate.SecretStore
	theme     Theme
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions is overridden in tests to run without a terminal.
	programOptions []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
}

func New(ctx context.Context, services *service.ClientServices, g *gate.Gate, secrets gate.SecretStore, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:       services,
		gate:           g,
		secrets:        secrets,
		theme:          LoadTheme(ctx, secrets),
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)},
	}
}

// Gate shows the login and PIN screens until the gate unlocks. The returned
// state is Unlocked unless err is set.
func (t *TUI) Gate(ctx context.Context) (gate.State, error) {
	model := newGateModel(ctx, t.gate, t.theme)
	program := tea.NewProgram(model, t.programOptions...)
	t.setProgram(program)
	defer t.setProgram(nil)

	finalModel, err := program.Run()
	if err != nil {
		return gate.State{}, err
	}

	result, ok := finalModel.(gateModel)
	if !ok {
		return gate.State{}, tea.ErrProgramKilled
	}
	if result.quit {
		return result.state, ErrUserQuit
	}

	return result.state, nil
}

// Vault runs the unlocked screens for userID. signOut is true when the user
// signed out and the gate is back on the login screen.
func (t *TUI) Vault(ctx context.Context, userID string) (signOut bool, err error) {
	model := newVaultModel(ctx, t, userID, t.gate.Logo(ctx))
	program := tea.NewProgram(model, t.programOptions...)
	t.setProgram(program)
	defer t.setProgram(nil)

	t.services.Connectivity.Start(ctx, func(online bool) {
		program.Send(onlineMsg(online))
	})
	defer t.services.Connectivity.Stop()

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(vaultModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	// the theme may have been toggled
	t.theme = result.theme

	if result.quit {
		return false, ErrUserQuit
	}
	t.logger.Info().Str("user_id", userID).Bool("sign_out", result.signOut).Msg("vault closed")

	return result.signOut, nil
}

// ShowBiometricPrompt displays text on the running screen. The biometric
// prompt calls it from a command goroutine right before the sensor waits.
func (t *TUI) ShowBiometricPrompt(text string) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(biometricPromptMsg(text))
	}
}

func (t *TUI) setProgram(p *tea.Program) {
	t.mu.Lock()
	t.program = p
	t.mu.Unlock()
}
