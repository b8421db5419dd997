package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/internal/validators"
	"github.com/MKhiriev/doc-vault/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; every token carries the id of a
// server-side session so it can be revoked before it expires.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator

	// passwordCost is the bcrypt cost of new hashes.
	passwordCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the repositories and the
// token parameters in cfg. All state is read-only after construction.
func NewAuthService(users store.UserRepository, sessions store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:    users,
		sessionRepository: sessions,
		validator:         validators.NewDocVaultValidator(),
		ids:               utils.NewUUIDGenerator(),
		passwordCost:      cost,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		now:               time.Now,
		logger:            logger,
	}
}

// RegisterUser creates an account. The email is stored lower-cased and the
// password as a bcrypt hash.
//
// Returns a validators error for a malformed email or short password, or
// store.ErrEmailAlreadyExists (wrapped) when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*authService.RegisterUser").Msg("invalid credentials")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.ids.Generate(),
		Email:        creds.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Login checks the credentials. An unknown email and a wrong password both
// yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Info().Str("func", "*authService.Login").Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	sessionID := a.ids.Generate()

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, sessionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	err = a.sessionRepository.CreateSession(ctx, models.Session{
		SessionID: sessionID,
		UserID:    user.UserID,
		ExpiresAt: token.ExpiresAt.Time,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("failed to persist session")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the signature, issuer and expiry, then the session.
// Every failure is reported as ErrTokenIsExpiredOrInvalid, except storage
// errors which are returned wrapped.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.GetSession(ctx, token.SessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("session lookup: %w", err)
	}
	if session.UserID != token.UserID || !session.Active(a.now()) {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, ErrSessionRevoked)
	}

	return token, nil
}

// Logout revokes the session. Revoking an unknown session is not an error.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	err := a.sessionRepository.RevokeSession(ctx, sessionID, a.now())
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Msg("failed to revoke session")
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
