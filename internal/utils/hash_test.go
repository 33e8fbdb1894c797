// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifiesWithCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if hash == "s3cret-pass" {
		t.Fatal("hash must differ from the plain password")
	}
	if !strings.HasPrefix(hash, "$2a$04$") {
		t.Errorf("expected bcrypt hash with cost 4, got %q", hash)
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("expected password to match its hash")
	}
	if CheckPassword(hash, "S3cret-pass") {
		t.Error("expected different password not to match")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	if h1 == h2 {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost)
	if err == nil {
		t.Error("expected error for password longer than 72 bytes")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("malformed hash must never match")
	}
}
