// Package gate decides which screen the client opens on: the login form,
// the PIN pad (creating or verifying a PIN) or the unlocked vault.
//
// [Gate.Resolve] runs once per cold start and again after a sign-out. It
// consults, strictly in this order, the connectivity probe, the remote
// session (online) or the local fallback flag (offline), the per-user PIN
// and finally the biometric prompt. Every collaborator failure degrades to
// a more restrictive screen; nothing here is fatal to the process.
//
// Local keys:
//
//	last_user_id   user id of the last established session
//	is_logged_in   "true" while a session is established (offline fallback)
//	pin:<user id>  PIN digest of that user, kept across sign-outs
//	app_logo_path  logo shown on the login and vault screens
package gate
