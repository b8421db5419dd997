// Package http implements the REST transport of the DocVault server: the
// chi router, its middlewares and the handlers of the auth, vault and
// registre endpoints. Every reply body is JSON; errors are
// {"message": "..."} carrying a French user-facing text.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/doc-vault/internal/app"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It reads the "Authorization: Bearer <token>" header, validates the token
// via AuthService.ParseToken (signature, expiry and a live session) and
// stores the user and session ids in the request context with
// [utils.WithUser].
//
// Requests are rejected with 401 when the header is absent or malformed, or
// when the token is invalid, expired or belongs to a revoked session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteMessage(w, app.MsgNoTokenProvided, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				h.writeError(w, r, err, "*http.Handler.auth")
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, token.UserID, token.SessionID)))
	})
}

// currentUser returns the authenticated user id set by auth.
func currentUser(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return userID, nil
}
