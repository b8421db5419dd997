package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTUI_Vault_WatchesConnectivity(t *testing.T) {
	ui, mocks := newTestTUI(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// ctrl+c без терминала: программа завершается сразу
	ui.programOptions = []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(strings.NewReader("\x03")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	}

	mocks.connectivity.EXPECT().Online().Return(true)
	mocks.vault.EXPECT().ListCategories(gomock.Any()).Return(nil, nil).AnyTimes()
	gomock.InOrder(
		mocks.connectivity.EXPECT().Start(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, onChange func(bool)) {
				require.NotNil(t, onChange)
			}),
		mocks.connectivity.EXPECT().Stop(),
	)

	signOut, err := ui.Vault(ctx, "u-1")
	require.ErrorIs(t, err, ErrUserQuit)
	require.False(t, signOut)
}
