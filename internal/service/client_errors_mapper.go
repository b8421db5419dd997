// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/doc-vault/internal/adapter"
	"github.com/MKhiriev/doc-vault/internal/app"
	"github.com/MKhiriev/doc-vault/internal/gate"
	"github.com/MKhiriev/doc-vault/internal/store"
)

// mapAdapterError adds the matching business sentinel to an adapter error.
// The adapter error stays in the chain so adapter.Message still returns the
// server's explanation.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var sentinel error
	switch msg := adapter.Message(err); {
	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			sentinel = ErrWrongPassword
		} else {
			sentinel = ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyExists:
			sentinel = store.ErrEmailAlreadyExists
		case app.MsgNameAlreadyExists:
			sentinel = store.ErrDuplicateName
		}

	case errors.Is(err, adapter.ErrNotFound):
		sentinel = store.ErrNotFound

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidSignature, app.MsgSignatureRequired:
			sentinel = ErrInvalidSignature
		default:
			sentinel = ErrInvalidDataProvided
		}
	}

	if sentinel == nil {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// resultKind classifies an adapter error for the gate.
func resultKind(err error) gate.Kind {
	switch {
	case err == nil:
		return gate.KindOK
	case errors.Is(err, adapter.ErrUnreachable):
		return gate.KindUnreachable
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrTooManyRequests):
		return gate.KindRejected
	default:
		return gate.KindFailed
	}
}
