// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext is returned by protected handlers when the auth
	// middleware did not run before them.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrFileRequired is returned when a multipart upload has no file part.
	ErrFileRequired = errors.New("multipart file part is missing")
)
