package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/internal/tui"
)

type App struct {
	auth    service.ClientAuthService
	screens Screens
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, screens Screens, logger *logger.Logger) *App {
	return &App{
		auth:    services.AuthService,
		screens: screens,
		logger:  logger,
	}
}

// Run loops gate -> vault until the user quits. Quitting with ctrl+c is not
// an error.
func (a *App) Run(ctx context.Context) error {
	for {
		st, err := a.screens.Gate(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("gate: %w", err)
		}
		if st.Screen != gate.Unlocked {
			return fmt.Errorf("gate closed on %s", st.Screen)
		}

		// an offline unlock keeps working without a token; vault calls
		// fail until the next sign-in
		if !a.auth.RestoreToken(ctx) {
			a.logger.Warn().Str("func", "*App.Run").Str("user_id", st.UserID).Msg("no stored session token")
		}

		signOut, err := a.screens.Vault(ctx, st.UserID)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("vault: %w", err)
		}
		if !signOut {
			return nil
		}

		a.logger.Info().Str("user_id", st.UserID).Msg("signed out, back to the gate")
	}
}
