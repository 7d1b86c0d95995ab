// Package cricclean turns raw scraped Statsguru tables into tidy,
// typed records with a fixed canonical schema per activity and view.
//
// The view (career vs innings) is never passed in: it is detected once
// at the top of Clean by the presence of a "matches" column after
// renaming, because the two views differ structurally downstream.
package cricclean

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument indicates an enum parameter outside its allowed
// set. It is surfaced immediately, before any work happens.
var ErrInvalidArgument = errors.New("invalid argument")

// Activity identifies which cleaning rules and schema apply.
type Activity string

const (
	Batting  Activity = "batting"
	Bowling  Activity = "bowling"
	Fielding Activity = "fielding"
)

// ParseActivity validates and normalizes an activity string.
func ParseActivity(s string) (Activity, error) {
	switch Activity(strings.ToLower(s)) {
	case Batting:
		return Batting, nil
	case Bowling:
		return Bowling, nil
	case Fielding:
		return Fielding, nil
	}
	return "", fmt.Errorf("activity must be %q, %q, or %q, got %q: %w",
		Batting, Bowling, Fielding, s, ErrInvalidArgument)
}

// View distinguishes aggregated career rows from per-innings rows.
type View string

const (
	Career  View = "career"
	Innings View = "innings"
)

// ParseView validates and normalizes a view string.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(s)) {
	case Career:
		return Career, nil
	case Innings:
		return Innings, nil
	}
	return "", fmt.Errorf("view must be %q or %q, got %q: %w", Career, Innings, s, ErrInvalidArgument)
}
