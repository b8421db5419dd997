package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/mock"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memSecrets — простое хранилище секретов в памяти
type memSecrets struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemSecrets() *memSecrets {
	return &memSecrets{data: map[string]string{}}
}

func (m *memSecrets) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memSecrets) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memSecrets) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type tuiMocks struct {
	probe        *mock.MockConnectivityProbe
	auth         *mock.MockGateAuthService
	bio          *mock.MockBiometricPrompt
	vault        *mock.MockClientVaultService
	registre     *mock.MockClientRegistreService
	connectivity *mock.MockConnectivityWatcher
	secrets      *memSecrets
}

func newTestTUI(t *testing.T) (*TUI, tuiMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := tuiMocks{
		probe:        mock.NewMockConnectivityProbe(ctrl),
		auth:         mock.NewMockGateAuthService(ctrl),
		bio:          mock.NewMockBiometricPrompt(ctrl),
		vault:        mock.NewMockClientVaultService(ctrl),
		registre:     mock.NewMockClientRegistreService(ctrl),
		connectivity: mock.NewMockConnectivityWatcher(ctrl),
		secrets:      newMemSecrets(),
	}

	services := &service.ClientServices{
		AuthService:     mock.NewMockClientAuthService(ctrl),
		VaultService:    m.vault,
		RegistreService: m.registre,
		Connectivity:    m.connectivity,
	}
	g := gate.New(m.probe, m.auth, m.secrets, m.bio, gate.Options{}, logger.Nop())

	ui := New(context.Background(), services, g, m.secrets, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"), logger.Nop())
	return ui, m
}

// exec runs cmd and returns the produced messages with batches flattened.
// Commands built on tea.Tick block, so callers only exec what they know.
func exec(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var out []tea.Msg
	for _, c := range batch {
		out = append(out, exec(t, c)...)
	}
	return out
}

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	require.FailNowf(t, "message not found", "%T not in %v", *new(T), msgs)
	var zero T
	return zero
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
