package gate

import (
	"context"

	"github.com/MKhiriev/doc-vault/internal/biometric"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gate_mock.go -package=mock -mock_names=AuthService=MockGateAuthService,SecretStore=MockGateSecretStore

// ConnectivityProbe reports whether the remote services are reachable.
type ConnectivityProbe interface {
	Check(ctx context.Context) (bool, error)
}

// AuthService is the remote account service.
type AuthService interface {
	CurrentSession(ctx context.Context) Result[Session]
	SignIn(ctx context.Context, email, password string) Result[Session]
	SignUp(ctx context.Context, email, password string) Result[Done]
	SignOut(ctx context.Context) Result[Done]
	// DropSession forgets the device's credentials without contacting the
	// server. It runs when the remote sign-out keeps failing.
	DropSession(ctx context.Context) error
}

// SecretStore is the device-local encrypted key/value store.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// BiometricPrompt challenges the user before the PIN pad.
type BiometricPrompt interface {
	Challenge(ctx context.Context, prompt string) (biometric.Outcome, error)
}
