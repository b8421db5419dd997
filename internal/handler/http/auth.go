package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/models"
)

// maxJSONBody caps non-upload request bodies.
const maxJSONBody = 1 << 20

// decodeJSON reads the request body into v. Decoding failures are reported
// as service.ErrInvalidDataProvided.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		h.writeError(w, r, err, "*http.Handler.register")
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.register")
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusCreated)
}

// login answers with the token both in the Authorization header and in the
// body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		h.writeError(w, r, err, "*http.Handler.login")
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.login")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "*http.Handler.login")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, _ = utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, UserID: user.UserID}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoUserInContext, "*http.Handler.logout")
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), sessionID); err != nil {
		h.writeError(w, r, err, "*http.Handler.logout")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// session reports the principal of the bearer token. The auth middleware
// has already verified that the session is live.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok || userID == "" {
		h.writeError(w, r, ErrNoUserInContext, "*http.Handler.session")
		return
	}

	_, _ = utils.WriteJSON(w, models.SessionResponse{UserID: userID, SessionID: sessionID}, http.StatusOK)
}
