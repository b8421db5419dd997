// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"os"

	"github.com/MKhiriev/doc-vault/internal/adapter"
	"github.com/MKhiriev/doc-vault/internal/service"
)

// ErrUserQuit is returned when the user leaves the program with ctrl+c.
var ErrUserQuit = errors.New("quit by user")

// humanizeError turns err into a French message for the status line. The
// server's own message wins when it sent one.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if msg := adapter.Message(err); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, adapter.ErrUnreachable):
		return "Hors-ligne : serveur injoignable"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expirée, reconnectez-vous"
	case errors.Is(err, adapter.ErrTooLarge):
		return "Fichier trop volumineux"
	case errors.Is(err, os.ErrNotExist):
		return "Fichier introuvable"
	case errors.Is(err, service.ErrEmptyDestination):
		return "Dossier de destination requis"
	case errors.Is(err, service.ErrInvalidSignature):
		return "Signature invalide"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Données invalides"
	}

	return err.Error()
}
