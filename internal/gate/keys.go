package gate

const (
	keyLastUserID = "last_user_id"
	keyLoggedIn   = "is_logged_in"
	keyLogo       = "app_logo_path"
	keyPinPrefix  = "pin:"

	keyAttemptsPrefix = "pin_attempts:"

	loggedInValue = "true"
)

func pinKey(userID string) string {
	return keyPinPrefix + userID
}

func attemptsKey(userID string) string {
	return keyAttemptsPrefix + userID
}
