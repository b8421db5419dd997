package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/doc-vault/internal/app"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/internal/validators"
)

type errorReply struct {
	target  error
	status  int
	message string
}

// errorReplies is matched in order, so the more specific sentinels come
// before the generic ones they may be wrapped together with.
var errorReplies = []errorReply{
	{validators.ErrInvalidEmail, http.StatusBadRequest, app.MsgInvalidEmail},
	{validators.ErrPasswordTooShort, http.StatusBadRequest, app.MsgPasswordTooShort},
	{validators.ErrEmptyName, http.StatusBadRequest, app.MsgNameRequired},
	{validators.ErrNameTooLong, http.StatusBadRequest, app.MsgNameTooLong},
	{validators.ErrEmptyTitle, http.StatusBadRequest, app.MsgTitleRequired},
	{validators.ErrEmptyFullName, http.StatusBadRequest, app.MsgFullNameRequired},
	{validators.ErrEmptySignature, http.StatusBadRequest, app.MsgSignatureRequired},
	{validators.ErrEmptyFileName, http.StatusBadRequest, app.MsgFileRequired},
	{service.ErrInvalidSignature, http.StatusBadRequest, app.MsgInvalidSignature},
	{ErrFileRequired, http.StatusBadRequest, app.MsgFileRequired},
	{validators.ErrInvalidUserID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidCategoryID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidFolderID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidRegistreID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrUnknownField, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrUnsupportedType, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrSessionRevoked, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrSessionNotFound, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgNoTokenProvided},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrDuplicateName, http.StatusConflict, app.MsgNameAlreadyExists},
	{store.ErrNotFound, http.StatusNotFound, app.MsgNotFound},
	{store.ErrInvalidReference, http.StatusUnprocessableEntity, app.MsgInvalidReference},

	{store.ErrObjectStore, http.StatusBadGateway, app.MsgStorageFailed},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
}

// replyForError returns the status and user-facing message for err. Unknown
// errors become 500 without leaking their text.
func replyForError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, app.MsgFileTooLarge
	}

	for _, reply := range errorReplies {
		if errors.Is(err, reply.target) {
			return reply.status, reply.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes its JSON reply.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status, message := replyForError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteMessage(w, message, status)
}
