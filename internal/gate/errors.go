package gate

import "errors"

var (
	// ErrWrongScreen is returned when an operation is invoked from a screen
	// it does not belong to, e.g. SubmitPIN while unlocked.
	ErrWrongScreen = errors.New("operation not allowed on this screen")

	// ErrSignOutIncomplete is returned when the local session could not be
	// fully cleared. The gate still moves to LoginRequired.
	ErrSignOutIncomplete = errors.New("sign-out incomplete")
)

// User-facing notices.
const (
	NoticePinFormat       = "4 chiffres requis."
	NoticePinIncorrect    = "PIN incorrect"
	NoticePinChanged      = "PIN modifié."
	NoticePinSaveFailed   = "Impossible d'enregistrer le PIN."
	NoticeTooManyAttempts = "Trop de tentatives, veuillez vous reconnecter."
	NoticeOffline         = "Veuillez être connecté pour s’identifier."
	NoticeBadCredentials  = "Email ou mot de passe invalide."
	NoticeAccountCreated  = "Compte créé, vous pouvez vous connecter."
	NoticeAuthRequired    = "Authentification requise."
	NoticeLogoSaved       = "Logo mis à jour."
	NoticeSessionExpired  = "Session expirée, veuillez vous reconnecter."
	NoticeServiceError    = "Une erreur est survenue, réessayez."
)
