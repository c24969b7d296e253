// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets an id, taken from an incoming X-Request-ID header or
generated as a UUID. The id is echoed in the response header, stored in
the request context (see RequestID), and attached to the completion log
together with status and duration_ms.

# Admin Guard

	mux.HandleFunc("PUT /api/admin/season",
		middleware.WithLogging(middleware.RequireAdmin(tokens, h.UpdateSeason)))

Requests need "Authorization: Bearer <token>". Missing, expired, or
forged tokens get 401 before the handler runs.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.SaveRaceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr without the port.
*/
package middleware
