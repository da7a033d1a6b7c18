package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of habits, identified externally by an opaque id
// (a chat account id) and carrying the zone its schedules are evaluated in.
type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ExternalID string    `json:"external_id" db:"external_id"`
	Timezone   string    `json:"timezone" db:"tz"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
