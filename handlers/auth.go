// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/formula-zero/auth"
	"github.com/danielhkuo/formula-zero/cliparse"
	"github.com/danielhkuo/formula-zero/middleware"
	"github.com/danielhkuo/formula-zero/models"
)

type AuthHandler struct {
	cfg    cliparse.Config
	tokens *auth.Tokens
}

func NewAuthHandler(cfg cliparse.Config, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{cfg: cfg, tokens: tokens}
}

// Login handles POST /api/auth
// Exchanges the admin password for a bearer token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckPassword(req.Password, h.cfg.AdminPassword, h.cfg.AdminPasswordHash); err != nil {
		slog.Warn("failed admin login",
			"request_id", middleware.RequestID(r.Context()),
			"remote", middleware.GetClientIP(r),
		)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, expiresAt, err := h.tokens.Issue(auth.AdminSubject)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	slog.Info("admin logged in", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
