package domain

import (
	"errors"

	"habit-reminder/pkg/localtime"
)

// Error kinds returned by the habit services. Callers test them with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrValidation indicates malformed input (title, hour, minute, mask, ids).
	ErrValidation = errors.New("validation error")

	// ErrDuplicateHabit indicates a habit with the same user, title and time already exists.
	ErrDuplicateHabit = errors.New("duplicate habit")

	// ErrInvalidTimezone indicates a timezone identifier that does not resolve.
	ErrInvalidTimezone = localtime.ErrInvalidTimezone

	// ErrNotFound indicates the targeted user, habit or log does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStore indicates a storage failure; the unit of work was rolled back.
	ErrStore = errors.New("store error")

	// ErrConflict is returned by repositories when a unique constraint fires.
	ErrConflict = errors.New("unique constraint violation")
)

// IsKnown reports whether err already carries one of the caller-facing kinds.
func IsKnown(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicateHabit) ||
		errors.Is(err, ErrInvalidTimezone) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrStore)
}
