package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HabitStatus is the outcome recorded for one habit on one local day.
type HabitStatus string

const (
	HabitStatusDone   HabitStatus = "done"
	HabitStatusMissed HabitStatus = "missed"
)

// ParseHabitStatus validates a stored status value.
func ParseHabitStatus(s string) (HabitStatus, error) {
	switch HabitStatus(s) {
	case HabitStatusDone, HabitStatusMissed:
		return HabitStatus(s), nil
	default:
		return "", fmt.Errorf("unknown habit status %q", s)
	}
}

// HabitLog records the status of a habit for a single local calendar day.
// LogDate is the UTC instant of that day's local midnight, so the day a log
// belongs to is always recovered through the same local-day range query.
type HabitLog struct {
	ID        uuid.UUID   `json:"id"`
	HabitID   uuid.UUID   `json:"habit_id"`
	LogDate   time.Time   `json:"log_date"`
	Status    HabitStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// StatRow is the per-habit result of a trailing-window report.
type StatRow struct {
	HabitID uuid.UUID `json:"habit_id"`
	Title   string    `json:"title"`
	Done    int       `json:"done"`
	Missed  int       `json:"missed"`
}
