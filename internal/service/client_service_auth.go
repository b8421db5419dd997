package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/doc-vault/internal/adapter"
	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/models"
)

// KeySessionToken is the secret store key of the bearer token.
const KeySessionToken = "session_token"

type clientAuthService struct {
	adapter adapter.AuthAdapter
	secrets store.SecretStore
	now     func() time.Time
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.AuthAdapter, secrets store.SecretStore, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		secrets: secrets,
		now:     time.Now,
		logger:  logger,
	}
}

// CurrentSession asks the server who owns the stored token. A missing,
// expired or rejected token means no session; the token is then dropped.
func (a *clientAuthService) CurrentSession(ctx context.Context) gate.Result[gate.Session] {
	token, found, err := a.secrets.Get(ctx, KeySessionToken)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.CurrentSession").Msg("stored token unreadable")
		return gate.Fail[gate.Session](gate.KindFailed, "", err)
	}
	if !found || strings.TrimSpace(token) == "" {
		return gate.Absent[gate.Session]()
	}

	if _, expiresAt, peekErr := utils.PeekTokenClaims(token); peekErr != nil || (!expiresAt.IsZero() && !a.now().Before(expiresAt)) {
		a.dropToken(ctx)
		return gate.Absent[gate.Session]()
	}

	a.adapter.SetToken(token)
	session, err := a.adapter.Session(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.dropToken(ctx)
			return gate.Absent[gate.Session]()
		}
		return gate.Fail[gate.Session](resultKind(err), adapter.Message(err), mapAdapterError(err))
	}
	if session.UserID == "" {
		return gate.Absent[gate.Session]()
	}

	return gate.Ok(gate.Session{UserID: session.UserID})
}

// SignIn logs in and keeps the token for the next start.
func (a *clientAuthService) SignIn(ctx context.Context, email, password string) gate.Result[gate.Session] {
	auth, err := a.adapter.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		a.logger.Info().Err(err).Str("func", "*clientAuthService.SignIn").Msg("login refused")
		return gate.Fail[gate.Session](resultKind(err), adapter.Message(err), mapAdapterError(err))
	}

	userID := auth.UserID
	if userID == "" {
		if userID, _, err = utils.PeekTokenClaims(auth.Token); err != nil {
			return gate.Fail[gate.Session](gate.KindFailed, "", err)
		}
	}

	if err = a.secrets.Set(ctx, KeySessionToken, auth.Token); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignIn").Msg("failed to persist session token")
	}

	return gate.Ok(gate.Session{UserID: userID})
}

func (a *clientAuthService) SignUp(ctx context.Context, email, password string) gate.Result[gate.Done] {
	err := a.adapter.Register(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return gate.Fail[gate.Done](resultKind(err), adapter.Message(err), mapAdapterError(err))
	}

	return gate.Ok(gate.Done{})
}

// SignOut revokes the session on the server, then forgets the token. The
// token is kept when the server could not be told, so the caller can try
// again; a token the server already rejects is simply forgotten.
func (a *clientAuthService) SignOut(ctx context.Context) gate.Result[gate.Done] {
	if a.adapter.Token() == "" {
		a.RestoreToken(ctx)
	}

	if a.adapter.Token() != "" {
		if err := a.adapter.Logout(ctx); err != nil && !errors.Is(err, adapter.ErrUnauthorized) {
			a.logger.Warn().Err(err).Str("func", "*clientAuthService.SignOut").Msg("remote logout failed")
			return gate.Fail[gate.Done](resultKind(err), adapter.Message(err), mapAdapterError(err))
		}
	}

	if err := a.DropSession(ctx); err != nil {
		return gate.Fail[gate.Done](gate.KindFailed, "", err)
	}

	return gate.Ok(gate.Done{})
}

// DropSession forgets the token without telling the server.
func (a *clientAuthService) DropSession(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.secrets.Delete(ctx, KeySessionToken)
}

func (a *clientAuthService) RestoreToken(ctx context.Context) bool {
	token, found, err := a.secrets.Get(ctx, KeySessionToken)
	if err != nil || !found || token == "" {
		return false
	}

	a.adapter.SetToken(token)
	return true
}

func (a *clientAuthService) dropToken(ctx context.Context) {
	if err := a.DropSession(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.dropToken").Msg("failed to delete session token")
	}
}
