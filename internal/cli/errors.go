package cli

import (
	"errors"
	"strings"

	"habit-reminder/internal/domain"
)

// UserMessage turns an error into the text shown to the person at the
// keyboard. Storage details never leak into it.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrDuplicateHabit):
		return "You already have a habit with this title at this time. Pick another title or time."
	case errors.Is(err, domain.ErrInvalidTimezone):
		return "Unknown timezone. Use a name like Europe/Warsaw or an offset like +03:00."
	case errors.Is(err, domain.ErrValidation):
		return "Invalid input: " + detail(err, domain.ErrValidation)
	case errors.Is(err, domain.ErrNotFound):
		return "Not found. Check the id and try again."
	case errors.Is(err, domain.ErrStore):
		return "Something went wrong on our side. Please try again later."
	default:
		return err.Error()
	}
}

// detail strips everything up to and including the kind's own text.
func detail(err, kind error) string {
	msg := err.Error()
	prefix := kind.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}
