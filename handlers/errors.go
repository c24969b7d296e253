// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/formula-zero/db"
	"github.com/danielhkuo/formula-zero/middleware"
	"github.com/danielhkuo/formula-zero/standings"
)

// writeError maps engine and store errors to a status code.
// fromInput marks errors caused by the request body; the same validation
// failure on stored data is a server fault.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error, fromInput bool) {
	switch {
	case standings.IsValidation(err):
		if fromInput {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	case errors.Is(err, standings.ErrUnknownDriver),
		errors.Is(err, standings.ErrUnknownTeam),
		errors.Is(err, standings.ErrUnknownRace),
		errors.Is(err, db.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, standings.ErrEmptyRaceHistory):
		middleware.ErrorResponse(w, http.StatusConflict, "No races have been run yet")
		return
	}

	slog.Error(op,
		"request_id", middleware.RequestID(r.Context()),
		"error", err,
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
}
