package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Habit is a recurring reminder at a local time of day on a set of weekdays.
// Habits are plain records; they are not mutated after they are loaded.
type Habit struct {
	ID     uuid.UUID
	UserID uuid.UUID

	Title string

	// Schedule in the owner's local time
	Hour     int // 0..23
	Minute   int // 0..59
	DaysMask WeekdayMask

	IsActive  bool
	CreatedAt time.Time
}

// TimeOfDay returns the schedule as HH:MM.
func (h *Habit) TimeOfDay() string {
	return fmt.Sprintf("%02d:%02d", h.Hour, h.Minute)
}

// ScheduledHabit is an active habit joined with the owner fields the
// due-detection engine and the reminder transport need.
type ScheduledHabit struct {
	Habit      *Habit
	ExternalID string
	Timezone   string
}
