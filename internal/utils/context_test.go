// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestWithPrincipal(t *testing.T) {
	ctx := WithPrincipal(context.Background(), 42, "ana@example.com", "ADMIN")

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != 42 {
		t.Errorf("expected userID=42, got %d (ok=%v)", userID, ok)
	}

	email, ok := GetEmailFromContext(ctx)
	if !ok || email != "ana@example.com" {
		t.Errorf("expected email, got %q (ok=%v)", email, ok)
	}

	role, ok := GetRoleFromContext(ctx)
	if !ok || role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %q (ok=%v)", role, ok)
	}
}

func TestGetFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for user id")
	}
	if _, ok := GetEmailFromContext(ctx); ok {
		t.Error("expected ok=false for email")
	}
	if _, ok := GetRoleFromContext(ctx); ok {
		t.Error("expected ok=false for role")
	}
}

func TestGetEmailFromContext_EmptyIsMissing(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, "")

	if _, ok := GetEmailFromContext(ctx); ok {
		t.Error("expected ok=false for empty email")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, int64(99))

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
