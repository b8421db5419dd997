// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/doc-vault/internal/gate"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Screens is the interactive front end driven by App.
type Screens interface {
	// Gate blocks until the user is unlocked.
	Gate(ctx context.Context) (gate.State, error)

	// Vault blocks until the user quits or signs out.
	Vault(ctx context.Context, userID string) (signOut bool, err error)
}
