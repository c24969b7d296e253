// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/danielhkuo/formula-zero/models"
	"github.com/danielhkuo/formula-zero/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "formula-zero API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestPublicRoutes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedDefaultSeason(t, db)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		path           string
		expectedStatus int
		contentType    string
	}{
		{"/api/season", http.StatusOK, "application/json"},
		{"/api/dashboard", http.StatusOK, "application/json"},
		{"/api/standings/drivers", http.StatusOK, "application/json"},
		{"/api/standings/constructors", http.StatusOK, "application/json"},
		{"/api/progress", http.StatusOK, "application/json"},
		{"/api/races/" + url.PathEscape("Katalánsko"), http.StatusOK, "application/json"},
		{"/api/races/Monza", http.StatusNotFound, "application/json"},
		{"/api/drivers/" + url.PathEscape("Míra"), http.StatusOK, "application/json"},
		{"/api/teams/" + url.PathEscape("Scuderia Ferrari"), http.StatusOK, "application/json"},
		{"/standings.txt", http.StatusOK, "text/plain; charset=utf-8"},
		{"/progress.svg", http.StatusOK, "image/svg+xml"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d, got %d. Body: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
			if ct := w.Header().Get("Content-Type"); ct != tc.contentType {
				t.Errorf("Expected Content-Type %q, got %q", tc.contentType, ct)
			}
		})
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedDefaultSeason(t, db)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/season"},
		{"PUT", "/api/admin/season"},
		{"PUT", "/api/admin/races/Monza"},
		{"DELETE", "/api/admin/races/Imola"},
		{"PUT", "/api/admin/drivers/Lewis"},
		{"DELETE", "/api/admin/drivers/Dan"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			for name, headers := range map[string]map[string]string{
				"no token":  nil,
				"bad token": {"Authorization": "Bearer not-a-token"},
			} {
				req := testutil.MakeRequest(tc.method, tc.path, nil, headers)
				w := httptest.NewRecorder()

				mux.ServeHTTP(w, req)

				if w.Code != http.StatusUnauthorized {
					t.Errorf("%s: expected 401, got %d", name, w.Code)
				}
			}
		})
	}

	// Nothing changed
	req := httptest.NewRequest("GET", "/api/season", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	var s models.Season
	testutil.AssertJSON(t, w, &s)
	if len(s.Races) != 6 || len(s.Drivers) != 6 {
		t.Errorf("Unauthorized requests changed the season: %d races, %d drivers", len(s.Races), len(s.Drivers))
	}
}

func TestLoginThenEditSeason(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedDefaultSeason(t, db)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// Login
	req := testutil.MakeRequest("POST", "/api/auth", models.LoginRequest{Password: cfg.AdminPassword}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	headers := map[string]string{"Authorization": "Bearer " + login.Token}

	// Enter a new race
	results := map[string]int{"Dominik": 1, "Macim": 25, "Kuba": 2, "Olda": 3, "Dan": 4, "Míra": 5}
	req = testutil.MakeRequest("PUT", "/api/admin/races/Hungaroring", models.SaveRaceRequest{Results: results}, headers)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Public standings reflect it
	req = httptest.NewRequest("GET", "/api/standings/drivers", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var drivers []models.DriverStanding
	testutil.AssertJSON(t, w, &drivers)
	if drivers[0].Driver != "Macim" || drivers[0].Points != 67 {
		t.Errorf("Expected Macim leading on 67, got %+v", drivers[0])
	}
	if drivers[1].Driver != "Dominik" || drivers[1].Gap != 7 {
		t.Errorf("Expected Dominik second, 7 behind, got %+v", drivers[1])
	}

	// Remove it again
	req = testutil.MakeRequest("DELETE", "/api/admin/races/Hungaroring", nil, headers)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = httptest.NewRequest("GET", "/api/races/Hungaroring", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/api/admin/season"},
		{"POST", "/api/races/Imola"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}
