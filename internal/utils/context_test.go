// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
	if SessionIDCtxKey.String() != "sessionID" {
		t.Errorf("expected 'sessionID', got '%s'", SessionIDCtxKey.String())
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), "u1", "s1")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != "u1" {
		t.Fatalf("expected u1, got %q (ok=%v)", userID, ok)
	}
	sessionID, ok := GetSessionIDFromContext(ctx)
	if !ok || sessionID != "s1" {
		t.Fatalf("expected s1, got %q (ok=%v)", sessionID, ok)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != "" {
		t.Errorf("expected empty userID, got %q", userID)
	}
}

func TestGetUserIDFromContext_WrongTypeOrEmpty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}

	ctx = context.WithValue(context.Background(), UserIDCtxKey, "")
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty id, got true")
	}
}
