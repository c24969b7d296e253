// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package standings

import (
	"errors"
	"fmt"
)

var (
	ErrMissingDriverResult = errors.New("missing driver result")
	ErrEmptyRaceHistory    = errors.New("empty race history")
	ErrUnknownDriver       = errors.New("unknown driver")
	ErrUnknownTeam         = errors.New("unknown team")
	ErrUnknownRace         = errors.New("unknown race")
	ErrNegativePoints      = errors.New("negative points")
	ErrDuplicateDriver     = errors.New("duplicate driver")
	ErrDuplicateRace       = errors.New("duplicate race")
)

// Error records which entity and race made an operation fail.
// Match the kind with errors.Is against the sentinels above.
type Error struct {
	Op     string
	Race   string // Optional
	Driver string // Optional
	Team   string // Optional
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %v", e.Op, e.Err)
	if e.Driver != "" {
		base += fmt.Sprintf(" (driver=%s)", e.Driver)
	}
	if e.Team != "" {
		base += fmt.Sprintf(" (team=%s)", e.Team)
	}
	if e.Race != "" {
		base += fmt.Sprintf(" (race=%s)", e.Race)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsValidation reports whether err describes malformed season data,
// as opposed to a lookup of something that does not exist.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingDriverResult) ||
		errors.Is(err, ErrNegativePoints) ||
		errors.Is(err, ErrDuplicateDriver) ||
		errors.Is(err, ErrDuplicateRace) ||
		(errors.Is(err, ErrUnknownDriver) && raceOf(err) != "")
}

func raceOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Race
	}
	return ""
}
