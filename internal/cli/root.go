// Package cli implements habitctl, the operator command line for the habit
// reminder service. It drives the same services the chat transport uses.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"
	"habit-reminder/internal/domain/service"
	"habit-reminder/pkg/localtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Services are the operations the commands call.
type Services struct {
	Habits   service.HabitService
	Ledger   service.CompletionLedger
	Detector service.DueDetector
	Stats    service.StatsService
}

// Env connects the commands to the outside world.
type Env struct {
	// Open builds the services; the returned func releases them.
	Open func(ctx context.Context) (*Services, func(), error)
	// Migrate applies all pending migrations, or rolls back steps when down is set.
	Migrate func(ctx context.Context, down bool, steps int) error
	Now     func() time.Time
}

type cli struct {
	env     Env
	jsonOut bool
}

// NewRootCommand builds the habitctl command tree.
func NewRootCommand(env Env) *cobra.Command {
	if env.Now == nil {
		env.Now = time.Now
	}
	c := &cli{env: env}

	root := &cobra.Command{
		Use:   "habitctl",
		Short: "Operate the habit reminder service",
		Long: `habitctl manages users, habits and completion logs of the habit
reminder service directly against its database.

Examples:
  habitctl user ensure 123456789 --tz Europe/Warsaw
  habitctl habit add <user-id> "Morning run" --at 07:30 --days weekdays
  habitctl done <habit-id>
  habitctl stats <user-id>
  habitctl due --at 2026-10-12T07:00:00Z`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(c.userCommand())
	root.AddCommand(c.habitCommand())
	root.AddCommand(c.doneCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.dueCommand())
	root.AddCommand(c.migrateCommand())

	return root
}

func (c *cli) open(ctx context.Context) (*Services, func(), error) {
	if c.env.Open == nil {
		return nil, nil, fmt.Errorf("no service backend configured")
	}
	svc, release, err := c.env.Open(ctx)
	if err != nil {
		return nil, nil, err
	}
	if release == nil {
		release = func() {}
	}
	return svc, release, nil
}

// ownerZone returns the timezone of the habit's owner.
func ownerZone(ctx context.Context, svc *Services, habitID uuid.UUID) (*entity.Habit, string, error) {
	habit, err := svc.Habits.GetHabit(ctx, habitID)
	if err != nil {
		return nil, "", err
	}
	user, err := svc.Habits.GetUser(ctx, habit.UserID)
	if err != nil {
		return nil, "", err
	}
	return habit, user.Timezone, nil
}

// dateFlag returns the named date flag, or today in tz when it is unset.
func (c *cli) dateFlag(cmd *cobra.Command, name, tz string) (localtime.Date, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw != "" {
		d, err := localtime.ParseDate(raw)
		if err != nil {
			return localtime.Date{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return d, nil
	}
	lt, err := localtime.UTCToLocal(c.env.Now(), tz)
	if err != nil {
		return localtime.Date{}, err
	}
	return lt.Date, nil
}

func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s id %q is not a UUID", domain.ErrValidation, kind, raw)
	}
	return id, nil
}

// parseTimeOfDay splits HH:MM without range checks; the habit service
// validates the values.
func parseTimeOfDay(raw string) (int, int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: time %q must be HH:MM", domain.ErrValidation, raw)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: time %q must be HH:MM", domain.ErrValidation, raw)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || len(m) != 2 {
		return 0, 0, fmt.Errorf("%w: time %q must be HH:MM", domain.ErrValidation, raw)
	}
	return hour, minute, nil
}
