// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It drives the unlock gate and the vault screens in a loop: every sign-out
// from the vault returns to the gate.
package client
