package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a due habit ready to be handed to the chat transport.
type Reminder struct {
	HabitID    uuid.UUID `json:"habit_id"`
	UserID     uuid.UUID `json:"user_id"`
	ExternalID string    `json:"external_id"`
	Title      string    `json:"title"`
	TimeOfDay  string    `json:"time_of_day"`
	Timezone   string    `json:"timezone"`
	LocalDate  string    `json:"local_date"`
	DueAt      time.Time `json:"due_at"`
}
