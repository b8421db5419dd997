package gate_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/doc-vault/internal/biometric"
	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/mock"
	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	uid      = "0b6f3c1e-8a51-4c4e-9d47-5b1f0cf3f7aa"
	otherUID = "4f1d2a90-77c3-4e0b-8f3a-2c9d1e6b5a44"

	keyLoggedIn = "is_logged_in"
	keyLastUser = "last_user_id"
	keyLogo     = "app_logo_path"
)

func pinKey(userID string) string { return "pin:" + userID }

func attemptsKey(userID string) string { return "pin_attempts:" + userID }

// memSecrets — потокобезопасное хранилище в памяти с инъекцией ошибок
type memSecrets struct {
	mu        sync.Mutex
	data      map[string]string
	getErr    map[string]error
	setErr    map[string]error
	deleteErr map[string]error
	deletes   map[string]int
}

func newMemSecrets() *memSecrets {
	return &memSecrets{
		data:      map[string]string{},
		getErr:    map[string]error{},
		setErr:    map[string]error{},
		deleteErr: map[string]error{},
		deletes:   map[string]int{},
	}
}

func (m *memSecrets) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.getErr[key]; err != nil {
		return "", false, err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memSecrets) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.setErr[key]; err != nil {
		return err
	}
	m.data[key] = value
	return nil
}

func (m *memSecrets) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes[key]++
	if err := m.deleteErr[key]; err != nil {
		return err
	}
	delete(m.data, key)
	return nil
}

func (m *memSecrets) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memSecrets) withPIN(userID, pin string) *memSecrets {
	m.data[pinKey(userID)] = utils.PinDigest(userID, pin)
	return m
}

func (m *memSecrets) withFallback(userID string) *memSecrets {
	m.data[keyLoggedIn] = "true"
	m.data[keyLastUser] = userID
	return m
}

type fixture struct {
	gate    *gate.Gate
	probe   *mock.MockConnectivityProbe
	auth    *mock.MockGateAuthService
	bio     *mock.MockBiometricPrompt
	secrets *memSecrets
}

func newFixture(t *testing.T, secrets *memSecrets, opts gate.Options) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		probe:   mock.NewMockConnectivityProbe(ctrl),
		auth:    mock.NewMockGateAuthService(ctrl),
		bio:     mock.NewMockBiometricPrompt(ctrl),
		secrets: secrets,
	}
	f.gate = gate.New(f.probe, f.auth, f.secrets, f.bio, opts, logger.Nop())

	return f
}

func (f *fixture) online() {
	f.probe.EXPECT().Check(gomock.Any()).Return(true, nil).AnyTimes()
}

func (f *fixture) offline() {
	f.probe.EXPECT().Check(gomock.Any()).Return(false, nil).AnyTimes()
}

func (f *fixture) session(userID string) {
	f.auth.EXPECT().CurrentSession(gomock.Any()).Return(gate.Ok(gate.Session{UserID: userID}))
}

// unlockedFixture проходит Resolve до Unlocked через биометрию
func unlockedFixture(t *testing.T, secrets *memSecrets, opts gate.Options) *fixture {
	t.Helper()
	f := newFixture(t, secrets.withPIN(uid, "1234"), opts)
	f.online()
	f.session(uid)
	f.bio.EXPECT().Challenge(gomock.Any(), biometric.DefaultPrompt).Return(biometric.Success, nil)

	st := f.gate.Resolve(context.Background())
	require.Equal(t, gate.Unlocked, st.Screen)

	return f
}

// verifyFixture проходит Resolve до PinChallenge(Verify)
func verifyFixture(t *testing.T, secrets *memSecrets, opts gate.Options) *fixture {
	t.Helper()
	f := newFixture(t, secrets.withPIN(uid, "1234"), opts)
	f.online()
	f.session(uid)
	f.bio.EXPECT().Challenge(gomock.Any(), gomock.Any()).Return(biometric.Failure, nil)

	st := f.gate.Resolve(context.Background())
	require.Equal(t, gate.PinChallenge, st.Screen)
	require.Equal(t, gate.PinVerify, st.Mode)

	return f
}

// ── Resolve ──────────────────────────────────────────────────────────────────

func TestResolve_NoPinOnlineSession_CreateWithoutBiometrics(t *testing.T) {
	f := newFixture(t, newMemSecrets(), gate.Options{})
	f.online()
	f.session(uid)
	// bio.Challenge не ожидается: gomock упадёт при любом вызове

	st := f.gate.Resolve(context.Background())

	assert.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, gate.PinCreate, st.Mode)
	assert.Equal(t, uid, st.UserID)
	assert.True(t, f.secrets.has(keyLoggedIn), "fallback flag must be recorded while online")
	assert.Equal(t, uid, f.secrets.data[keyLastUser])
}

func TestResolve_PinBiometricSuccess_Unlocked(t *testing.T) {
	f := newFixture(t, newMemSecrets().withPIN(uid, "1234"), gate.Options{})
	f.online()
	f.session(uid)
	f.bio.EXPECT().Challenge(gomock.Any(), biometric.DefaultPrompt).Return(biometric.Success, nil)

	st := f.gate.Resolve(context.Background())

	assert.Equal(t, gate.Unlocked, st.Screen)
	assert.Equal(t, uid, st.UserID)
	assert.Zero(t, st.Mode)
}

func TestResolve_PinBiometricNotSuccess_Verify(t *testing.T) {
	tests := []struct {
		name    string
		outcome biometric.Outcome
		err     error
	}{
		{name: "failure", outcome: biometric.Failure},
		{name: "unavailable", outcome: biometric.Unavailable},
		{name: "prompt error", outcome: biometric.Success, err: errors.New("dbus gone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, newMemSecrets().withPIN(uid, "1234"), gate.Options{BiometricPrompt: "Déverrouiller"})
			f.online()
			f.session(uid)
			f.bio.EXPECT().Challenge(gomock.Any(), "Déverrouiller").Return(tt.outcome, tt.err)

			st := f.gate.Resolve(context.Background())

			assert.Equal(t, gate.PinChallenge, st.Screen)
			assert.Equal(t, gate.PinVerify, st.Mode)
			assert.Equal(t, uid, st.UserID)
		})
	}
}

func TestResolve_OfflineWithoutFallback_LoginRequired(t *testing.T) {
	// пользователь и PIN есть, но флага нет
	secrets := newMemSecrets().withPIN(uid, "1234")
	secrets.data[keyLastUser] = uid

	f := newFixture(t, secrets, gate.Options{})
	f.offline()
	// CurrentSession не ожидается

	st := f.gate.Resolve(context.Background())

	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.Empty(t, st.UserID)
}

func TestResolve_OfflineWithFallback_UsesCachedUser(t *testing.T) {
	f := newFixture(t, newMemSecrets().withFallback(uid).withPIN(uid, "1234"), gate.Options{})
	f.offline()
	f.bio.EXPECT().Challenge(gomock.Any(), gomock.Any()).Return(biometric.Unavailable, nil)

	st := f.gate.Resolve(context.Background())

	assert.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, gate.PinVerify, st.Mode)
	assert.Equal(t, uid, st.UserID)
}

func TestResolve_OfflineFallbackNoPin_Create(t *testing.T) {
	f := newFixture(t, newMemSecrets().withFallback(uid).withPIN(otherUID, "9999"), gate.Options{})
	f.offline()

	st := f.gate.Resolve(context.Background())

	assert.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, gate.PinCreate, st.Mode, "PIN of another user must not be used")
}

func TestResolve_OfflineFallbackFlagWithoutUser_LoginRequired(t *testing.T) {
	secrets := newMemSecrets()
	secrets.data[keyLoggedIn] = "true"

	f := newFixture(t, secrets, gate.Options{})
	f.offline()

	assert.Equal(t, gate.LoginRequired, f.gate.Resolve(context.Background()).Screen)
}

func TestResolve_OnlineNoSession_ClearsFallback(t *testing.T) {
	f := newFixture(t, newMemSecrets().withFallback(uid).withPIN(uid, "1234"), gate.Options{})
	f.online()
	f.auth.EXPECT().CurrentSession(gomock.Any()).Return(gate.Absent[gate.Session]())

	st := f.gate.Resolve(context.Background())

	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.False(t, f.secrets.has(keyLoggedIn))
	assert.False(t, f.secrets.has(keyLastUser))
	assert.True(t, f.secrets.has(pinKey(uid)), "PIN is kept")
}

func TestResolve_SessionLookupFailed_LoginRequired(t *testing.T) {
	f := newFixture(t, newMemSecrets().withFallback(uid), gate.Options{})
	f.online()
	f.auth.EXPECT().CurrentSession(gomock.Any()).
		Return(gate.Fail[gate.Session](gate.KindUnreachable, "", errors.New("timeout")))

	st := f.gate.Resolve(context.Background())

	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.True(t, f.secrets.has(keyLoggedIn), "flag is only cleared on an absent session")
}

func TestResolve_SessionWithoutUserID_LoginRequired(t *testing.T) {
	f := newFixture(t, newMemSecrets(), gate.Options{})
	f.online()
	f.session("")

	assert.Equal(t, gate.LoginRequired, f.gate.Resolve(context.Background()).Screen)
}

func TestResolve_ProbeError_LoginRequired(t *testing.T) {
	f := newFixture(t, newMemSecrets().withFallback(uid).withPIN(uid, "1234"), gate.Options{})
	f.probe.EXPECT().Check(gomock.Any()).Return(false, context.DeadlineExceeded)

	assert.Equal(t, gate.LoginRequired, f.gate.Resolve(context.Background()).Screen)
}

func TestResolve_PinReadError(t *testing.T) {
	t.Run("lenient reads fall to create", func(t *testing.T) {
		secrets := newMemSecrets()
		secrets.getErr[pinKey(uid)] = errors.New("keyring locked")

		f := newFixture(t, secrets, gate.Options{})
		f.online()
		f.session(uid)

		st := f.gate.Resolve(context.Background())
		assert.Equal(t, gate.PinChallenge, st.Screen)
		assert.Equal(t, gate.PinCreate, st.Mode)
	})

	t.Run("strict reads go to login", func(t *testing.T) {
		secrets := newMemSecrets()
		secrets.getErr[pinKey(uid)] = errors.New("keyring locked")

		f := newFixture(t, secrets, gate.Options{StrictSecretReads: true})
		f.online()
		f.session(uid)

		assert.Equal(t, gate.LoginRequired, f.gate.Resolve(context.Background()).Screen)
	})
}

func TestResolve_CarriesLogo(t *testing.T) {
	secrets := newMemSecrets()
	secrets.data[keyLogo] = "/home/u/logo.png"

	f := newFixture(t, secrets, gate.Options{})
	f.offline()

	st := f.gate.Resolve(context.Background())
	assert.Equal(t, "/home/u/logo.png", st.Logo)
	assert.Equal(t, st, f.gate.State())
}

// ── SubmitPIN ────────────────────────────────────────────────────────────────

func TestSubmitPIN_VerifyCorrect_Unlocked(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})

	st, err := f.gate.SubmitPIN(context.Background(), "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Screen)
	assert.Equal(t, uid, st.UserID)
}

func TestSubmitPIN_VerifyIncorrect_ClearsInput(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})

	st, err := f.gate.SubmitPIN(context.Background(), "4321")
	require.NoError(t, err)
	assert.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, gate.PinVerify, st.Mode)
	assert.True(t, st.ClearInput)
	assert.Equal(t, gate.NoticePinIncorrect, st.Notice)
}

func TestSubmitPIN_CreateRejectsMalformed(t *testing.T) {
	for _, pin := range []string{"", "1", "123", "12345", "123456789", "abcd", "12a4", "１２３４"} {
		t.Run(pin, func(t *testing.T) {
			f := newFixture(t, newMemSecrets(), gate.Options{})
			f.online()
			f.session(uid)
			require.Equal(t, gate.PinCreate, f.gate.Resolve(context.Background()).Mode)

			st, err := f.gate.SubmitPIN(context.Background(), pin)
			require.NoError(t, err)

			assert.Equal(t, gate.PinChallenge, st.Screen)
			assert.Equal(t, gate.PinCreate, st.Mode)
			assert.Equal(t, gate.NoticePinFormat, st.Notice)
			assert.False(t, f.secrets.has(pinKey(uid)), "PIN must not be created")
		})
	}
}

func TestSubmitPIN_CreateStoresDigestPerUser(t *testing.T) {
	f := newFixture(t, newMemSecrets(), gate.Options{})
	f.online()
	f.session(uid)
	f.gate.Resolve(context.Background())

	st, err := f.gate.SubmitPIN(context.Background(), "0420")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Screen)

	stored := f.secrets.data[pinKey(uid)]
	assert.NotEqual(t, "0420", stored, "PIN is stored as a digest")
	assert.True(t, utils.PinMatches(uid, "0420", stored))
	assert.False(t, utils.PinMatches(otherUID, "0420", stored))
}

func TestSubmitPIN_CreateSaveFailed(t *testing.T) {
	secrets := newMemSecrets()
	secrets.setErr[pinKey(uid)] = errors.New("disk full")

	f := newFixture(t, secrets, gate.Options{})
	f.online()
	f.session(uid)
	f.gate.Resolve(context.Background())

	st, err := f.gate.SubmitPIN(context.Background(), "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.PinCreate, st.Mode)
	assert.Equal(t, gate.NoticePinSaveFailed, st.Notice)
}

func TestSubmitPIN_MalformedInVerifyDoesNotCount(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{MaxPinAttempts: 2})
	ctx := context.Background()

	for range 5 {
		st, err := f.gate.SubmitPIN(ctx, "12")
		require.NoError(t, err)
		assert.Equal(t, gate.NoticePinFormat, st.Notice)
	}

	st, err := f.gate.SubmitPIN(ctx, "0000")
	require.NoError(t, err)
	assert.Equal(t, gate.PinChallenge, st.Screen, "one wrong attempt is below the limit")
}

func TestSubmitPIN_LockoutSignsOut(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{MaxPinAttempts: 3})
	f.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Ok(gate.Done{}))
	ctx := context.Background()

	for range 2 {
		st, err := f.gate.SubmitPIN(ctx, "0000")
		require.NoError(t, err)
		require.Equal(t, gate.PinChallenge, st.Screen)
	}

	st, err := f.gate.SubmitPIN(ctx, "0000")
	require.NoError(t, err)
	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.Equal(t, gate.NoticeTooManyAttempts, st.Notice)
	assert.False(t, f.secrets.has(keyLoggedIn))
	assert.True(t, f.secrets.has(pinKey(uid)))
}

func TestSubmitPIN_UnlimitedAttempts(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})
	ctx := context.Background()

	for range 20 {
		st, err := f.gate.SubmitPIN(ctx, "0000")
		require.NoError(t, err)
		require.Equal(t, gate.PinChallenge, st.Screen)
	}

	st, err := f.gate.SubmitPIN(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Screen)
}

func TestSubmitPIN_CorrectPinResetsCounter(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{MaxPinAttempts: 2})
	ctx := context.Background()

	_, err := f.gate.SubmitPIN(ctx, "0000")
	require.NoError(t, err)
	st, err := f.gate.SubmitPIN(ctx, "1234")
	require.NoError(t, err)
	require.Equal(t, gate.Unlocked, st.Screen)

	// выход и повторный вход: счётчик начинается с нуля
	f.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Ok(gate.Done{}))
	_, err = f.gate.SignOut(ctx)
	require.NoError(t, err)

	f.auth.EXPECT().SignIn(gomock.Any(), "a@b.fr", "secret1").Return(gate.Ok(gate.Session{UserID: uid}))
	_, err = f.gate.SignIn(ctx, "a@b.fr", "secret1")
	require.NoError(t, err)

	st, err = f.gate.SubmitPIN(ctx, "0000")
	require.NoError(t, err)
	assert.Equal(t, gate.PinChallenge, st.Screen)
}

func TestSubmitPIN_VerifyReadError_StaysOnVerify(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{MaxPinAttempts: 1})
	before := f.secrets.data[pinKey(uid)]
	f.secrets.getErr[pinKey(uid)] = errors.New("keyring locked")

	st, err := f.gate.SubmitPIN(context.Background(), "9999")
	require.NoError(t, err)
	assert.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, gate.PinVerify, st.Mode)
	assert.Equal(t, gate.NoticeServiceError, st.Notice)

	// PIN не перезаписан, попытка не засчитана
	assert.Equal(t, before, f.secrets.data[pinKey(uid)])
	assert.False(t, utils.PinMatches(uid, "9999", f.secrets.data[pinKey(uid)]))
	assert.False(t, f.secrets.has(attemptsKey(uid)))

	delete(f.secrets.getErr, pinKey(uid))
	st, err = f.gate.SubmitPIN(context.Background(), "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.Unlocked, st.Screen)
}

func TestSubmitPIN_VerifyReadError_Strict(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{StrictSecretReads: true})
	f.secrets.getErr[pinKey(uid)] = errors.New("keyring locked")

	st, err := f.gate.SubmitPIN(context.Background(), "9999")
	require.NoError(t, err)
	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.Equal(t, gate.NoticeServiceError, st.Notice)
}

func TestSubmitPIN_VerifyPinVanished_AsksForNewPin(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})
	delete(f.secrets.data, pinKey(uid))

	st, err := f.gate.SubmitPIN(context.Background(), "9999")
	require.NoError(t, err)
	assert.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, gate.PinCreate, st.Mode)
	assert.True(t, st.ClearInput)
	assert.False(t, f.secrets.has(pinKey(uid)), "the submitted PIN is not stored")
}

func TestSubmitPIN_AttemptsSurviveRestart(t *testing.T) {
	secrets := newMemSecrets()
	opts := gate.Options{MaxPinAttempts: 2}

	f := verifyFixture(t, secrets, opts)
	st, err := f.gate.SubmitPIN(context.Background(), "0000")
	require.NoError(t, err)
	require.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, "1", secrets.data[attemptsKey(uid)])

	// новый процесс: тот же стор, новый Gate
	restarted := verifyFixture(t, secrets, opts)
	restarted.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Ok(gate.Done{}))

	st, err = restarted.gate.SubmitPIN(context.Background(), "0000")
	require.NoError(t, err)
	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.Equal(t, gate.NoticeTooManyAttempts, st.Notice)
	assert.False(t, secrets.has(attemptsKey(uid)), "counter is cleared after the lockout")
}

func TestSubmitPIN_UnlimitedAttemptsStoreNothing(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})

	_, err := f.gate.SubmitPIN(context.Background(), "0000")
	require.NoError(t, err)
	assert.False(t, f.secrets.has(attemptsKey(uid)))
}

func TestSubmitPIN_LostUser_SessionExpired(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})
	delete(f.secrets.data, keyLastUser)

	st, err := f.gate.SubmitPIN(context.Background(), "1234")
	require.NoError(t, err)
	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.Equal(t, gate.NoticeSessionExpired, st.Notice)
}

func TestSubmitPIN_WrongScreen(t *testing.T) {
	f := unlockedFixture(t, newMemSecrets(), gate.Options{})

	st, err := f.gate.SubmitPIN(context.Background(), "1234")
	require.ErrorIs(t, err, gate.ErrWrongScreen)
	assert.Equal(t, gate.Unlocked, st.Screen)
}

// ── SignIn / SignUp ──────────────────────────────────────────────────────────

func TestSignIn(t *testing.T) {
	tests := []struct {
		name       string
		secrets    func() *memSecrets
		result     gate.Result[gate.Session]
		wantScreen gate.Screen
		wantMode   gate.PinMode
		wantNotice string
	}{
		{
			name:       "new device creates pin",
			secrets:    newMemSecrets,
			result:     gate.Ok(gate.Session{UserID: uid}),
			wantScreen: gate.PinChallenge,
			wantMode:   gate.PinCreate,
		},
		{
			name:       "known user verifies pin",
			secrets:    func() *memSecrets { return newMemSecrets().withPIN(uid, "1234") },
			result:     gate.Ok(gate.Session{UserID: uid}),
			wantScreen: gate.PinChallenge,
			wantMode:   gate.PinVerify,
		},
		{
			name:       "another user's pin is ignored",
			secrets:    func() *memSecrets { return newMemSecrets().withPIN(otherUID, "1234") },
			result:     gate.Ok(gate.Session{UserID: uid}),
			wantScreen: gate.PinChallenge,
			wantMode:   gate.PinCreate,
		},
		{
			name:       "rejected shows server message",
			secrets:    newMemSecrets,
			result:     gate.Fail[gate.Session](gate.KindRejected, "Identifiants invalides", errors.New("401")),
			wantScreen: gate.LoginRequired,
			wantNotice: "Identifiants invalides",
		},
		{
			name:       "rejected without message",
			secrets:    newMemSecrets,
			result:     gate.Fail[gate.Session](gate.KindRejected, "", errors.New("401")),
			wantScreen: gate.LoginRequired,
			wantNotice: gate.NoticeBadCredentials,
		},
		{
			name:       "unreachable",
			secrets:    newMemSecrets,
			result:     gate.Fail[gate.Session](gate.KindUnreachable, "", errors.New("dial")),
			wantScreen: gate.LoginRequired,
			wantNotice: gate.NoticeOffline,
		},
		{
			name:       "failed",
			secrets:    newMemSecrets,
			result:     gate.Fail[gate.Session](gate.KindFailed, "", errors.New("500")),
			wantScreen: gate.LoginRequired,
			wantNotice: gate.NoticeServiceError,
		},
		{
			name:       "ok without user id",
			secrets:    newMemSecrets,
			result:     gate.Ok(gate.Session{}),
			wantScreen: gate.LoginRequired,
			wantNotice: gate.NoticeServiceError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.secrets(), gate.Options{})
			f.online()
			f.auth.EXPECT().SignIn(gomock.Any(), "jeanne@example.fr", "motdepasse").Return(tt.result)

			st, err := f.gate.SignIn(context.Background(), "  jeanne@example.fr ", "motdepasse")
			require.NoError(t, err)

			assert.Equal(t, tt.wantScreen, st.Screen)
			assert.Equal(t, tt.wantMode, st.Mode)
			assert.Equal(t, tt.wantNotice, st.Notice)
			if tt.wantScreen == gate.PinChallenge {
				assert.Equal(t, "true", f.secrets.data[keyLoggedIn])
				assert.Equal(t, uid, f.secrets.data[keyLastUser])
			}
		})
	}
}

func TestSignIn_Precheck(t *testing.T) {
	tests := []struct {
		name     string
		online   bool
		probeErr error
		email    string
		password string
		want     string
	}{
		{name: "offline", online: false, email: "a@b.fr", password: "secret1", want: gate.NoticeOffline},
		{name: "probe error", probeErr: errors.New("dns"), email: "a@b.fr", password: "secret1", want: gate.NoticeOffline},
		{name: "no at sign", online: true, email: "ab.fr", password: "secret1", want: gate.NoticeBadCredentials},
		{name: "short password", online: true, email: "a@b.fr", password: "12345", want: gate.NoticeBadCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, newMemSecrets(), gate.Options{})
			f.probe.EXPECT().Check(gomock.Any()).Return(tt.online, tt.probeErr)
			// auth.SignIn не вызывается

			st, err := f.gate.SignIn(context.Background(), tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, gate.LoginRequired, st.Screen)
			assert.Equal(t, tt.want, st.Notice)
		})
	}
}

func TestSignIn_WrongScreen(t *testing.T) {
	f := unlockedFixture(t, newMemSecrets(), gate.Options{})

	_, err := f.gate.SignIn(context.Background(), "a@b.fr", "secret1")
	assert.ErrorIs(t, err, gate.ErrWrongScreen)
}

func TestSignUp(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t, newMemSecrets(), gate.Options{})
		f.online()
		f.auth.EXPECT().SignUp(gomock.Any(), "new@example.fr", "secret1").Return(gate.Ok(gate.Done{}))

		st, err := f.gate.SignUp(context.Background(), "new@example.fr", "secret1")
		require.NoError(t, err)
		assert.Equal(t, gate.LoginRequired, st.Screen)
		assert.Equal(t, gate.NoticeAccountCreated, st.Notice)
		assert.False(t, f.secrets.has(keyLoggedIn), "sign-up does not open a session")
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t, newMemSecrets(), gate.Options{})
		f.online()
		f.auth.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(gate.Fail[gate.Done](gate.KindRejected, "Email déjà utilisé", errors.New("409")))

		st, err := f.gate.SignUp(context.Background(), "new@example.fr", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "Email déjà utilisé", st.Notice)
	})

	t.Run("offline", func(t *testing.T) {
		f := newFixture(t, newMemSecrets(), gate.Options{})
		f.offline()

		st, err := f.gate.SignUp(context.Background(), "new@example.fr", "secret1")
		require.NoError(t, err)
		assert.Equal(t, gate.NoticeOffline, st.Notice)
	})
}

// ── SignOut / SwitchUser ─────────────────────────────────────────────────────

func TestSignOut_ThenOfflineResolveRequiresLogin(t *testing.T) {
	f := unlockedFixture(t, newMemSecrets(), gate.Options{})
	ctx := context.Background()

	f.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Ok(gate.Done{}))
	st, err := f.gate.SignOut(ctx)
	require.NoError(t, err)
	assert.Equal(t, gate.LoginRequired, st.Screen)

	// офлайн: флаг удалён, остаёмся на логине
	offline := newFixture(t, f.secrets, gate.Options{})
	offline.offline()
	assert.Equal(t, gate.LoginRequired, offline.gate.Resolve(ctx).Screen)

	// PIN сохранён: повторный вход того же пользователя ведёт в Verify
	assert.True(t, f.secrets.has(pinKey(uid)))
	online := newFixture(t, f.secrets, gate.Options{})
	online.online()
	online.auth.EXPECT().CurrentSession(gomock.Any()).Return(gate.Absent[gate.Session]())
	require.Equal(t, gate.LoginRequired, online.gate.Resolve(ctx).Screen)

	online.auth.EXPECT().SignIn(gomock.Any(), "a@b.fr", "secret1").Return(gate.Ok(gate.Session{UserID: uid}))
	st, err = online.gate.SignIn(ctx, "a@b.fr", "secret1")
	require.NoError(t, err)
	assert.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, gate.PinVerify, st.Mode)
}

func TestSignOut_RetriesRemote(t *testing.T) {
	f := unlockedFixture(t, newMemSecrets(), gate.Options{})

	failed := gate.Fail[gate.Done](gate.KindUnreachable, "", errors.New("dial"))
	gomock.InOrder(
		f.auth.EXPECT().SignOut(gomock.Any()).Return(failed),
		f.auth.EXPECT().SignOut(gomock.Any()).Return(failed),
		f.auth.EXPECT().SignOut(gomock.Any()).Return(failed),
		f.auth.EXPECT().DropSession(gomock.Any()).Return(nil),
	)

	st, err := f.gate.SignOut(context.Background())
	require.NoError(t, err, "remote failure alone does not make sign-out incomplete")
	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.False(t, f.secrets.has(keyLoggedIn))
}

func TestSignOut_SecondAttemptSucceeds(t *testing.T) {
	f := unlockedFixture(t, newMemSecrets(), gate.Options{})

	// второй вызов проходит, локальный сброс токена не нужен
	gomock.InOrder(
		f.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Fail[gate.Done](gate.KindFailed, "", errors.New("500"))),
		f.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Ok(gate.Done{})),
	)
	f.auth.EXPECT().DropSession(gomock.Any()).Times(0)

	st, err := f.gate.SignOut(context.Background())
	require.NoError(t, err)
	assert.Equal(t, gate.LoginRequired, st.Screen)
}

func TestSignOut_DropSessionFails(t *testing.T) {
	f := unlockedFixture(t, newMemSecrets(), gate.Options{})

	f.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Fail[gate.Done](gate.KindUnreachable, "", errors.New("dial"))).Times(3)
	f.auth.EXPECT().DropSession(gomock.Any()).Return(errors.New("read-only"))

	st, err := f.gate.SignOut(context.Background())
	require.ErrorIs(t, err, gate.ErrSignOutIncomplete)
	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.False(t, f.secrets.has(keyLoggedIn))
}

func TestSignOut_LocalDeleteFails(t *testing.T) {
	secrets := newMemSecrets()
	f := unlockedFixture(t, secrets, gate.Options{})
	secrets.deleteErr[keyLoggedIn] = errors.New("read-only")
	f.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Ok(gate.Done{}))

	st, err := f.gate.SignOut(context.Background())
	require.ErrorIs(t, err, gate.ErrSignOutIncomplete)
	assert.Equal(t, gate.LoginRequired, st.Screen, "state moves on even when cleanup fails")
	assert.Equal(t, 3, secrets.deletes[keyLoggedIn])
	assert.False(t, secrets.has(keyLastUser))
}

func TestSignOut_WrongScreen(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})

	st, err := f.gate.SignOut(context.Background())
	require.ErrorIs(t, err, gate.ErrWrongScreen)
	assert.Equal(t, gate.PinChallenge, st.Screen)
}

func TestSwitchUser_FromPinPad(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})
	f.auth.EXPECT().SignOut(gomock.Any()).Return(gate.Absent[gate.Done]())

	st, err := f.gate.SwitchUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, gate.LoginRequired, st.Screen)
	assert.True(t, f.secrets.has(pinKey(uid)))
}

func TestSwitchUser_WrongScreen(t *testing.T) {
	f := unlockedFixture(t, newMemSecrets(), gate.Options{})

	_, err := f.gate.SwitchUser(context.Background())
	assert.ErrorIs(t, err, gate.ErrWrongScreen)
}

// ── ChangePIN ────────────────────────────────────────────────────────────────

func TestChangePIN(t *testing.T) {
	tests := []struct {
		name       string
		outcome    biometric.Outcome
		bioErr     error
		current    string
		next       string
		wantNotice string
		wantPIN    string
	}{
		{name: "biometric success", outcome: biometric.Success, next: "5678", wantNotice: gate.NoticePinChanged, wantPIN: "5678"},
		{name: "biometric failure", outcome: biometric.Failure, current: "1234", next: "5678", wantNotice: gate.NoticeAuthRequired, wantPIN: "1234"},
		{name: "no sensor, current pin ok", outcome: biometric.Unavailable, current: "1234", next: "5678", wantNotice: gate.NoticePinChanged, wantPIN: "5678"},
		{name: "no sensor, current pin wrong", outcome: biometric.Unavailable, current: "0000", next: "5678", wantNotice: gate.NoticePinIncorrect, wantPIN: "1234"},
		{name: "prompt error falls back to pin", outcome: biometric.Success, bioErr: errors.New("dbus"), current: "1234", next: "5678", wantNotice: gate.NoticePinChanged, wantPIN: "5678"},
		{name: "malformed new pin", outcome: biometric.Success, next: "56", wantNotice: gate.NoticePinFormat, wantPIN: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := unlockedFixture(t, newMemSecrets(), gate.Options{})
			f.bio.EXPECT().Challenge(gomock.Any(), gomock.Not(biometric.DefaultPrompt)).Return(tt.outcome, tt.bioErr)

			st, err := f.gate.ChangePIN(context.Background(), tt.current, tt.next)
			require.NoError(t, err)
			assert.Equal(t, gate.Unlocked, st.Screen)
			assert.Equal(t, tt.wantNotice, st.Notice)
			assert.True(t, utils.PinMatches(uid, tt.wantPIN, f.secrets.data[pinKey(uid)]))
		})
	}
}

func TestChangePIN_SaveFailed(t *testing.T) {
	secrets := newMemSecrets()
	f := unlockedFixture(t, secrets, gate.Options{})
	secrets.setErr[pinKey(uid)] = errors.New("disk full")
	f.bio.EXPECT().Challenge(gomock.Any(), gomock.Any()).Return(biometric.Success, nil)

	st, err := f.gate.ChangePIN(context.Background(), "", "5678")
	require.NoError(t, err)
	assert.Equal(t, gate.NoticePinSaveFailed, st.Notice)
}

func TestChangePIN_WrongScreen(t *testing.T) {
	f := verifyFixture(t, newMemSecrets(), gate.Options{})

	_, err := f.gate.ChangePIN(context.Background(), "1234", "5678")
	assert.ErrorIs(t, err, gate.ErrWrongScreen)
}

// ── Logo ─────────────────────────────────────────────────────────────────────

func TestSetLogo(t *testing.T) {
	f := newFixture(t, newMemSecrets(), gate.Options{})
	ctx := context.Background()

	st, err := f.gate.SetLogo(ctx, "  /srv/logo.png ")
	require.NoError(t, err)
	assert.Equal(t, "/srv/logo.png", st.Logo)
	assert.Equal(t, gate.NoticeLogoSaved, st.Notice)
	assert.Equal(t, "/srv/logo.png", f.gate.Logo(ctx))

	st, err = f.gate.SetLogo(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, st.Logo)
	assert.Empty(t, f.gate.Logo(ctx))
}

func TestSetLogo_StoreError(t *testing.T) {
	secrets := newMemSecrets()
	secrets.setErr[keyLogo] = errors.New("denied")
	f := newFixture(t, secrets, gate.Options{})

	st, err := f.gate.SetLogo(context.Background(), "/srv/logo.png")
	require.Error(t, err)
	assert.Empty(t, st.Logo)
}

func TestNew_NilBiometricIsDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mock.NewMockConnectivityProbe(ctrl)
	auth := mock.NewMockGateAuthService(ctrl)
	secrets := newMemSecrets().withPIN(uid, "1234")

	probe.EXPECT().Check(gomock.Any()).Return(true, nil)
	auth.EXPECT().CurrentSession(gomock.Any()).Return(gate.Ok(gate.Session{UserID: uid}))

	g := gate.New(probe, auth, secrets, nil, gate.Options{}, nil)
	st := g.Resolve(context.Background())

	assert.Equal(t, gate.PinChallenge, st.Screen)
	assert.Equal(t, gate.PinVerify, st.Mode)
}
