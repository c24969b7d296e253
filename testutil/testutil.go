// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/formula-zero/auth"
	"github.com/danielhkuo/formula-zero/cliparse"
	"github.com/danielhkuo/formula-zero/db"
	"github.com/danielhkuo/formula-zero/models"
	"github.com/danielhkuo/formula-zero/season"
)

// TestDBURL is an in-memory SQLite database, private to each connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(models.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SeedDefaultSeason stores the embedded season and returns it
func SeedDefaultSeason(t *testing.T, conn *sql.DB) models.Season {
	t.Helper()

	s, err := season.Default()
	if err != nil {
		t.Fatalf("Failed to load default season: %v", err)
	}
	if err := db.SeedSeason(context.Background(), conn, s); err != nil {
		t.Fatalf("Failed to seed season: %v", err)
	}
	return s
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   TestDBURL,
		DatabaseType:  models.DatabaseSQLite,
		AdminPassword: "test-password",
		JWTSecret:     "test-jwt-secret",
		TokenTTL:      time.Hour,
	}
}

// AdminToken issues a valid admin token for cfg
func AdminToken(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	token, _, err := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL).Issue(auth.AdminSubject)
	if err != nil {
		t.Fatalf("Failed to issue admin token: %v", err)
	}
	return token
}

// AdminHeaders returns request headers carrying an admin bearer token
func AdminHeaders(t *testing.T, cfg cliparse.Config) map[string]string {
	t.Helper()
	return map[string]string{"Authorization": "Bearer " + AdminToken(t, cfg)}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
