package gate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/doc-vault/internal/biometric"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/utils"
)

const (
	pinLength         = 4
	minPasswordLength = 6

	// signOutAttempts bounds retries of each sign-out side effect.
	signOutAttempts = 3

	changePinPrompt = "Authentification"
)

// Options tunes the gate policy.
type Options struct {
	// MaxPinAttempts signs the user out after that many consecutive wrong
	// PINs. 0 disables the limit. The count is kept per user in the secret
	// store, so restarting the app does not reset it.
	MaxPinAttempts int

	// StrictSecretReads sends the user to the login screen when the PIN
	// cannot be read, instead of treating it as absent (Create mode).
	StrictSecretReads bool

	// BiometricPrompt is the text of the unlock challenge.
	BiometricPrompt string
}

// Gate is the session/unlock state machine. It is safe for concurrent use;
// operations are serialized.
type Gate struct {
	probe   ConnectivityProbe
	auth    AuthService
	secrets SecretStore
	bio     BiometricPrompt
	opts    Options
	logger  *logger.Logger

	mu    sync.Mutex
	state State
}

// New builds a gate. A nil bio behaves as [biometric.Disabled].
func New(probe ConnectivityProbe, auth AuthService, secrets SecretStore, bio BiometricPrompt, opts Options, log *logger.Logger) *Gate {
	if bio == nil {
		bio = biometric.Disabled{}
	}
	if opts.BiometricPrompt == "" {
		opts.BiometricPrompt = biometric.DefaultPrompt
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Gate{
		probe:   probe,
		auth:    auth,
		secrets: secrets,
		bio:     bio,
		opts:    opts,
		logger:  log,
		state:   loginRequired(""),
	}
}

// State returns the state produced by the last operation.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// Resolve runs the startup resolution and returns the screen to open.
func (g *Gate) Resolve(ctx context.Context) State {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := g.resolve(ctx)
	st.Logo = g.readLogo(ctx)
	g.state = st

	g.logger.Info().Str("func", "*Gate.Resolve").
		Stringer("screen", st.Screen).
		Stringer("mode", st.Mode).
		Msg("startup resolved")

	return st
}

func (g *Gate) resolve(ctx context.Context) State {
	online, err := g.probe.Check(ctx)
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "*Gate.resolve").Msg("connectivity probe failed")
		return loginRequired("")
	}

	var userID string
	if online {
		res := g.auth.CurrentSession(ctx)
		switch res.Kind {
		case KindOK:
			if res.Value.UserID == "" {
				return loginRequired("")
			}
			userID = res.Value.UserID
			g.rememberSession(ctx, userID)
		case KindAbsent:
			g.forgetSession(ctx)
			return loginRequired("")
		default:
			g.logger.Warn().Err(res.Err).Str("func", "*Gate.resolve").
				Stringer("kind", res.Kind).
				Msg("session lookup failed")
			return loginRequired("")
		}
	} else {
		var ok bool
		if userID, ok = g.fallbackUser(ctx); !ok {
			return loginRequired("")
		}
	}

	_, found, err := g.readPin(ctx, userID)
	if err != nil && g.opts.StrictSecretReads {
		return loginRequired("")
	}
	if !found {
		return pinChallenge(PinCreate, userID)
	}

	outcome, err := g.bio.Challenge(ctx, g.opts.BiometricPrompt)
	if err != nil {
		g.logger.Debug().Err(err).Str("func", "*Gate.resolve").Msg("biometric prompt failed")
	}
	if err == nil && outcome == biometric.Success {
		return unlocked(userID)
	}

	return pinChallenge(PinVerify, userID)
}

// SubmitPIN handles a PIN pad submission. In Create mode a valid PIN is
// stored for the user; in Verify mode it must match the stored one.
func (g *Gate) SubmitPIN(ctx context.Context, pin string) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Screen != PinChallenge {
		return g.state, ErrWrongScreen
	}

	st := g.submitPIN(ctx, pin)
	st.Logo = g.state.Logo
	g.state = st

	return st, nil
}

func (g *Gate) submitPIN(ctx context.Context, pin string) State {
	userID, ok := g.lastUser(ctx)
	if !ok {
		return loginRequired(NoticeSessionExpired)
	}

	digest, found, err := g.readPin(ctx, userID)
	if err != nil {
		if g.opts.StrictSecretReads {
			return loginRequired(NoticeServiceError)
		}
		// a PIN may exist: the Verify pad never turns into Create
		if g.state.Mode != PinCreate {
			st := pinChallenge(PinVerify, userID)
			st.Notice = NoticeServiceError
			return st
		}
	}

	if !found {
		if g.state.Mode != PinCreate {
			st := pinChallenge(PinCreate, userID)
			st.ClearInput = true
			return st
		}
		return g.createPIN(ctx, userID, pin)
	}

	st := pinChallenge(PinVerify, userID)
	if !validPIN(pin) {
		st.Notice = NoticePinFormat
		return st
	}
	if utils.PinMatches(userID, pin, digest) {
		g.resetAttempts(ctx, userID)
		return unlocked(userID)
	}

	if g.countFailure(ctx, userID) {
		g.logger.Warn().Str("func", "*Gate.submitPIN").
			Int("limit", g.opts.MaxPinAttempts).
			Msg("PIN attempt limit reached, signing out")
		g.resetAttempts(ctx, userID)
		if err = g.signOut(ctx); err != nil {
			g.logger.Err(err).Str("func", "*Gate.submitPIN").Msg("sign-out after lockout incomplete")
		}
		return loginRequired(NoticeTooManyAttempts)
	}

	st.ClearInput = true
	st.Notice = NoticePinIncorrect
	return st
}

func (g *Gate) createPIN(ctx context.Context, userID, pin string) State {
	st := pinChallenge(PinCreate, userID)
	if !validPIN(pin) {
		st.Notice = NoticePinFormat
		return st
	}
	if err := g.secrets.Set(ctx, pinKey(userID), utils.PinDigest(userID, pin)); err != nil {
		g.logger.Err(err).Str("func", "*Gate.createPIN").Msg("failed to store PIN")
		st.Notice = NoticePinSaveFailed
		return st
	}
	g.resetAttempts(ctx, userID)

	return unlocked(userID)
}

// countFailure records a wrong PIN and reports whether the limit is reached.
// Without a limit nothing is stored.
func (g *Gate) countFailure(ctx context.Context, userID string) bool {
	if g.opts.MaxPinAttempts <= 0 {
		return false
	}

	n := 0
	if raw, found, err := g.secrets.Get(ctx, attemptsKey(userID)); err == nil && found {
		n, _ = strconv.Atoi(raw)
	}
	n++
	if n >= g.opts.MaxPinAttempts {
		return true
	}

	if err := g.secrets.Set(ctx, attemptsKey(userID), strconv.Itoa(n)); err != nil {
		g.logger.Warn().Err(err).Str("func", "*Gate.countFailure").Msg("failed to store PIN attempts")
	}
	return false
}

func (g *Gate) resetAttempts(ctx context.Context, userID string) {
	if g.opts.MaxPinAttempts <= 0 {
		return
	}
	if err := g.secrets.Delete(ctx, attemptsKey(userID)); err != nil {
		g.logger.Warn().Err(err).Str("func", "*Gate.resetAttempts").Msg("failed to reset PIN attempts")
	}
}

// SignIn authenticates against the remote service. On success the user
// goes to the PIN pad, in Create or Verify mode depending on whether a PIN
// already exists for them. No biometric prompt is shown here.
func (g *Gate) SignIn(ctx context.Context, email, password string) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Screen != LoginRequired {
		return g.state, ErrWrongScreen
	}

	st := g.signIn(ctx, strings.TrimSpace(email), password)
	st.Logo = g.state.Logo
	g.state = st

	return st, nil
}

func (g *Gate) signIn(ctx context.Context, email, password string) State {
	if notice, ok := g.precheckCredentials(ctx, email, password); !ok {
		return loginRequired(notice)
	}

	res := g.auth.SignIn(ctx, email, password)
	if res.Kind != KindOK {
		return loginRequired(authNotice(res.Kind, res.Message))
	}

	userID := res.Value.UserID
	if userID == "" {
		return loginRequired(NoticeServiceError)
	}
	g.rememberSession(ctx, userID)
	g.resetAttempts(ctx, userID)

	_, found, err := g.readPin(ctx, userID)
	if err != nil && g.opts.StrictSecretReads {
		return loginRequired(NoticeServiceError)
	}
	if found {
		return pinChallenge(PinVerify, userID)
	}

	return pinChallenge(PinCreate, userID)
}

// SignUp registers an account. The login screen stays open so the user can
// sign in afterwards.
func (g *Gate) SignUp(ctx context.Context, email, password string) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Screen != LoginRequired {
		return g.state, ErrWrongScreen
	}

	email = strings.TrimSpace(email)
	notice, ok := g.precheckCredentials(ctx, email, password)
	if ok {
		res := g.auth.SignUp(ctx, email, password)
		if res.Kind == KindOK {
			notice = NoticeAccountCreated
		} else {
			notice = authNotice(res.Kind, res.Message)
		}
	}

	st := loginRequired(notice)
	st.Logo = g.state.Logo
	g.state = st

	return st, nil
}

func (g *Gate) precheckCredentials(ctx context.Context, email, password string) (string, bool) {
	online, err := g.probe.Check(ctx)
	if err != nil || !online {
		return NoticeOffline, false
	}
	if !strings.Contains(email, "@") || len(password) < minPasswordLength {
		return NoticeBadCredentials, false
	}

	return "", true
}

// SignOut ends the session from the vault. The PIN of the user is kept so
// the next sign-in as the same user goes straight to Verify mode.
func (g *Gate) SignOut(ctx context.Context) (State, error) {
	return g.leave(ctx, Unlocked)
}

// SwitchUser is the "change user" action of the PIN pad. It has the same
// effects as SignOut.
func (g *Gate) SwitchUser(ctx context.Context) (State, error) {
	return g.leave(ctx, PinChallenge)
}

func (g *Gate) leave(ctx context.Context, from Screen) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Screen != from {
		return g.state, ErrWrongScreen
	}

	err := g.signOut(ctx)

	st := loginRequired("")
	st.Logo = g.state.Logo
	g.state = st

	return st, err
}

func (g *Gate) signOut(ctx context.Context) error {
	remoteDone := false
	for attempt := 1; attempt <= signOutAttempts; attempt++ {
		res := g.auth.SignOut(ctx)
		if res.Kind == KindOK || res.Kind == KindAbsent {
			remoteDone = true
			break
		}
		g.logger.Warn().Err(res.Err).Str("func", "*Gate.signOut").
			Int("attempt", attempt).
			Stringer("kind", res.Kind).
			Msg("remote sign-out failed")
	}

	var errs []error
	if !remoteDone {
		if err := g.auth.DropSession(ctx); err != nil {
			errs = append(errs, fmt.Errorf("drop session: %w", err))
		}
	}
	for _, key := range []string{keyLoggedIn, keyLastUserID} {
		if err := g.deleteWithRetry(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrSignOutIncomplete, errors.Join(errs...))
	}

	return nil
}

func (g *Gate) deleteWithRetry(ctx context.Context, key string) error {
	var err error
	for attempt := 1; attempt <= signOutAttempts; attempt++ {
		if err = g.secrets.Delete(ctx, key); err == nil {
			return nil
		}
		g.logger.Warn().Err(err).Str("func", "*Gate.deleteWithRetry").
			Str("key", key).
			Int("attempt", attempt).
			Msg("failed to delete local key")
	}

	return fmt.Errorf("delete %s: %w", key, err)
}

// ChangePIN replaces the PIN of the unlocked user. A biometric match is
// required first; when no biometric sensor is available the current PIN
// is asked for instead.
func (g *Gate) ChangePIN(ctx context.Context, currentPIN, newPIN string) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Screen != Unlocked {
		return g.state, ErrWrongScreen
	}

	st := g.state
	st.Notice, st.ClearInput = g.changePIN(ctx, st.UserID, currentPIN, newPIN), false
	g.state = st

	return st, nil
}

func (g *Gate) changePIN(ctx context.Context, userID, currentPIN, newPIN string) string {
	outcome, err := g.bio.Challenge(ctx, changePinPrompt)
	if err != nil {
		outcome = biometric.Unavailable
	}

	switch outcome {
	case biometric.Success:
	case biometric.Unavailable:
		digest, found, err := g.readPin(ctx, userID)
		if err != nil || !found || !utils.PinMatches(userID, currentPIN, digest) {
			return NoticePinIncorrect
		}
	default:
		return NoticeAuthRequired
	}

	if !validPIN(newPIN) {
		return NoticePinFormat
	}
	if err = g.secrets.Set(ctx, pinKey(userID), utils.PinDigest(userID, newPIN)); err != nil {
		g.logger.Err(err).Str("func", "*Gate.changePIN").Msg("failed to store PIN")
		return NoticePinSaveFailed
	}

	return NoticePinChanged
}

// SetLogo stores the logo path shown on the login and vault screens. An
// empty path removes it.
func (g *Gate) SetLogo(ctx context.Context, path string) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	path = strings.TrimSpace(path)
	var err error
	if path == "" {
		err = g.secrets.Delete(ctx, keyLogo)
	} else {
		err = g.secrets.Set(ctx, keyLogo, path)
	}
	if err != nil {
		return g.state, fmt.Errorf("save logo: %w", err)
	}

	g.state.Logo = path
	g.state.Notice = NoticeLogoSaved
	g.state.ClearInput = false

	return g.state, nil
}

// Logo returns the stored logo path, "" when unset or unreadable.
func (g *Gate) Logo(ctx context.Context) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.readLogo(ctx)
}

func (g *Gate) readLogo(ctx context.Context) string {
	path, found, err := g.secrets.Get(ctx, keyLogo)
	if err != nil || !found {
		return ""
	}
	return path
}

func (g *Gate) rememberSession(ctx context.Context, userID string) {
	if err := g.secrets.Set(ctx, keyLastUserID, userID); err != nil {
		g.logger.Err(err).Str("func", "*Gate.rememberSession").Msg("failed to persist user id")
	}
	if err := g.secrets.Set(ctx, keyLoggedIn, loggedInValue); err != nil {
		g.logger.Err(err).Str("func", "*Gate.rememberSession").Msg("failed to persist session flag")
	}
}

func (g *Gate) forgetSession(ctx context.Context) {
	for _, key := range []string{keyLoggedIn, keyLastUserID} {
		if err := g.secrets.Delete(ctx, key); err != nil {
			g.logger.Warn().Err(err).Str("func", "*Gate.forgetSession").Str("key", key).Msg("failed to delete local key")
		}
	}
}

// fallbackUser returns the cached user id when the fallback flag is set.
// Read errors count as "not set".
func (g *Gate) fallbackUser(ctx context.Context) (string, bool) {
	flag, found, err := g.secrets.Get(ctx, keyLoggedIn)
	if err != nil || !found || flag != loggedInValue {
		return "", false
	}

	return g.lastUser(ctx)
}

func (g *Gate) lastUser(ctx context.Context) (string, bool) {
	userID, found, err := g.secrets.Get(ctx, keyLastUserID)
	if err != nil || !found || userID == "" {
		return "", false
	}
	return userID, true
}

func (g *Gate) readPin(ctx context.Context, userID string) (string, bool, error) {
	digest, found, err := g.secrets.Get(ctx, pinKey(userID))
	if err != nil {
		g.logger.Warn().Err(err).Str("func", "*Gate.readPin").Msg("failed to read PIN")
		return "", false, err
	}
	return digest, found, nil
}

func validPIN(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

func authNotice(kind Kind, message string) string {
	switch kind {
	case KindRejected:
		if message != "" {
			return message
		}
		return NoticeBadCredentials
	case KindUnreachable:
		return NoticeOffline
	default:
		if message != "" {
			return message
		}
		return NoticeServiceError
	}
}
