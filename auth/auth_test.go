// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"32 bytes", 32, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestCheckPassword_Plaintext(t *testing.T) {
	tests := []struct {
		name    string
		attempt string
		plain   string
		wantErr bool
	}{
		{"correct", "admin123", "admin123", false},
		{"wrong", "admin124", "admin123", true},
		{"empty attempt", "", "admin123", true},
		{"prefix", "admin", "admin123", true},
		{"nothing configured", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.attempt, tt.plain, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPassword) {
				t.Errorf("Expected ErrInvalidPassword, got %v", err)
			}
		})
	}
}

func TestCheckPassword_HashWins(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("Expected bcrypt hash, got %q", hash)
	}

	if err := CheckPassword("s3cret", "admin123", hash); err != nil {
		t.Errorf("Expected hashed password to be accepted, got %v", err)
	}
	if err := CheckPassword("admin123", "admin123", hash); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("Expected plaintext to be ignored when a hash is set, got %v", err)
	}
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	tok, expiresAt, err := tokens.Issue(AdminSubject)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if tok == "" {
		t.Fatal("Issue() returned empty token")
	}
	if d := time.Until(expiresAt); d < 59*time.Minute || d > time.Hour {
		t.Errorf("Unexpected expiry in %v", d)
	}

	subject, err := tokens.Parse(tok)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if subject != AdminSubject {
		t.Errorf("Expected subject %q, got %q", AdminSubject, subject)
	}
}

func TestTokens_UniqueIDs(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	a, _, _ := tokens.Issue(AdminSubject)
	b, _, _ := tokens.Issue(AdminSubject)
	if a == b {
		t.Error("Expected distinct tokens for separate logins")
	}
}

func TestTokens_Rejects(t *testing.T) {
	good := NewTokens("test-secret", time.Hour)
	valid, _, _ := good.Issue(AdminSubject)
	expired, _, _ := NewTokens("test-secret", -time.Minute).Issue(AdminSubject)
	otherKey, _, _ := NewTokens("other-secret", time.Hour).Issue(AdminSubject)

	foreign, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   AdminSubject,
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))

	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: AdminSubject,
		Issuer:  Issuer,
	}).SignedString([]byte("test-secret"))

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", ErrMissingToken},
		{"garbage", "not.a.token", ErrInvalidToken},
		{"expired", expired, ErrInvalidToken},
		{"wrong key", otherKey, ErrInvalidToken},
		{"wrong issuer", foreign, ErrInvalidToken},
		{"no expiry", noExpiry, ErrInvalidToken},
		{"tampered", valid + "x", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := good.Parse(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
