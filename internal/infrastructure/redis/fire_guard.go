package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultFireGuardTTL = 48 * time.Hour

// FireGuard remembers which (habit, local day) reminders were already sent.
// A key outlives the local day in every zone, so a repeated scheduler tick,
// a restart, or a fall-back hour cannot produce a second reminder.
type FireGuard struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewFireGuard creates a new fire guard storing keys under prefix
func NewFireGuard(client redis.Cmdable, prefix string, ttl time.Duration) *FireGuard {
	if ttl <= 0 {
		ttl = defaultFireGuardTTL
	}
	return &FireGuard{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// key generates Redis key for a habit's local day
func (g *FireGuard) key(habitID uuid.UUID, localDate string) string {
	if g.prefix == "" {
		return fmt.Sprintf("fired:%s:%s", habitID, localDate)
	}
	return fmt.Sprintf("%s:fired:%s:%s", g.prefix, habitID, localDate)
}

// Acquire claims the reminder for the habit's local day. It returns false
// when another tick already claimed it.
func (g *FireGuard) Acquire(ctx context.Context, habitID uuid.UUID, localDate string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(habitID, localDate), time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire fire guard: %w", err)
	}
	return ok, nil
}

// Release drops a claim so a later tick may retry, e.g. after a failed publish
func (g *FireGuard) Release(ctx context.Context, habitID uuid.UUID, localDate string) error {
	if err := g.client.Del(ctx, g.key(habitID, localDate)).Err(); err != nil {
		return fmt.Errorf("failed to release fire guard: %w", err)
	}
	return nil
}
