// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/formula-zero/auth"
	"github.com/danielhkuo/formula-zero/models"
	"github.com/danielhkuo/formula-zero/testutil"
)

func TestLogin(t *testing.T) {
	cfg := testutil.GetTestConfig()
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	handler := NewAuthHandler(cfg, tokens)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{"correct password", models.LoginRequest{Password: "test-password"}, http.StatusOK},
		{"wrong password", models.LoginRequest{Password: "admin123"}, http.StatusUnauthorized},
		{"empty password", models.LoginRequest{}, http.StatusUnauthorized},
		{"not JSON", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == nil {
				req = httptest.NewRequest("POST", "/api/auth", strings.NewReader("password=x"))
			} else {
				req = testutil.MakeRequest("POST", "/api/auth", tt.body, nil)
			}
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusOK {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error == "" {
					t.Error("Expected error field in response")
				}
				return
			}

			var resp models.LoginResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success {
				t.Error("Expected success=true")
			}
			if subject, err := tokens.Parse(resp.Token); err != nil || subject != auth.AdminSubject {
				t.Errorf("Issued token does not verify: %q, %v", subject, err)
			}
			if time.Until(resp.ExpiresAt) <= 0 {
				t.Errorf("Expected future expiry, got %v", resp.ExpiresAt)
			}
		})
	}
}

func TestLogin_HashConfigured(t *testing.T) {
	cfg := testutil.GetTestConfig()
	hash, err := auth.HashPassword("pit-wall")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	cfg.AdminPasswordHash = hash
	handler := NewAuthHandler(cfg, auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL))

	w := httptest.NewRecorder()
	handler.Login(w, testutil.MakeRequest("POST", "/api/auth", models.LoginRequest{Password: "pit-wall"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// The plaintext password no longer works once a hash is set
	w = httptest.NewRecorder()
	handler.Login(w, testutil.MakeRequest("POST", "/api/auth", models.LoginRequest{Password: "test-password"}, nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
