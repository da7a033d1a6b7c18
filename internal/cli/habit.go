package cli

import (
	"fmt"
	"time"

	"habit-reminder/internal/domain"
	"habit-reminder/internal/domain/entity"
	"habit-reminder/pkg/localtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type habitView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Time      string    `json:"time"`
	Days      string    `json:"days"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func viewHabit(h *entity.Habit) habitView {
	return habitView{
		ID:        h.ID,
		UserID:    h.UserID,
		Title:     h.Title,
		Time:      h.TimeOfDay(),
		Days:      h.DaysMask.String(),
		Active:    h.IsActive,
		CreatedAt: h.CreatedAt,
	}
}

func (c *cli) habitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
		Long: `Habit management commands.

Examples:
  habitctl habit add <user-id> "Read" --at 21:00 --days mon,wed,fri
  habitctl habit list <user-id> --all
  habitctl habit disable <habit-id>
  habitctl habit history <habit-id> --from 2026-10-01 --to 2026-10-07`,
	}

	add := &cobra.Command{
		Use:   "add <user-id> <title>",
		Short: "Add a habit",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runHabitAdd,
	}
	add.Flags().String("at", "", "local time of day, HH:MM")
	add.Flags().String("days", "daily", "daily, weekdays, weekend or a list like mon,wed,fri")
	_ = add.MarkFlagRequired("at")

	list := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's habits",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runHabitList,
	}
	list.Flags().Bool("all", false, "include disabled habits")

	enable := &cobra.Command{
		Use:   "enable <habit-id>",
		Short: "Resume reminders for a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHabitSetActive(cmd, args[0], true)
		},
	}

	disable := &cobra.Command{
		Use:   "disable <habit-id>",
		Short: "Stop reminders for a habit, keeping its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHabitSetActive(cmd, args[0], false)
		},
	}

	del := &cobra.Command{
		Use:   "delete <habit-id>",
		Short: "Delete a habit and its logs",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runHabitDelete,
	}

	history := &cobra.Command{
		Use:   "history <habit-id>",
		Short: "Show completion logs in the owner's local days",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runHabitHistory,
	}
	history.Flags().String("from", "", "first local day, YYYY-MM-DD (default: 6 days before --to)")
	history.Flags().String("to", "", "last local day, YYYY-MM-DD (default: today)")

	cmd.AddCommand(add, list, enable, disable, del, history)
	return cmd
}

func (c *cli) runHabitAdd(cmd *cobra.Command, args []string) error {
	userID, err := parseID("user", args[0])
	if err != nil {
		return err
	}
	at, _ := cmd.Flags().GetString("at")
	hour, minute, err := parseTimeOfDay(at)
	if err != nil {
		return err
	}
	days, _ := cmd.Flags().GetString("days")
	mask, err := entity.ParseWeekdayMask(days)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	habit, err := svc.Habits.AddHabit(cmd.Context(), userID, args[1], hour, minute, mask)
	if err != nil {
		return err
	}

	if c.jsonOut {
		return printJSON(cmd.OutOrStdout(), viewHabit(habit))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Habit %s added: %q at %s (%s)\n", habit.ID, habit.Title, habit.TimeOfDay(), habit.DaysMask)
	return nil
}

func (c *cli) runHabitList(cmd *cobra.Command, args []string) error {
	userID, err := parseID("user", args[0])
	if err != nil {
		return err
	}
	all, _ := cmd.Flags().GetBool("all")

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	habits, err := svc.Habits.HabitsForUser(cmd.Context(), userID, !all)
	if err != nil {
		return err
	}

	if c.jsonOut {
		views := make([]habitView, 0, len(habits))
		for _, h := range habits {
			views = append(views, viewHabit(h))
		}
		return printJSON(cmd.OutOrStdout(), map[string]any{"habits": views, "count": len(views)})
	}

	if len(habits) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No habits found")
		return nil
	}

	w := newTable(cmd.OutOrStdout())
	printTableHeader(w, "ID", "TITLE", "TIME", "DAYS", "ACTIVE")
	for _, h := range habits {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", h.ID, h.Title, h.TimeOfDay(), h.DaysMask, h.IsActive)
	}
	return w.Flush()
}

func (c *cli) runHabitSetActive(cmd *cobra.Command, rawID string, active bool) error {
	habitID, err := parseID("habit", rawID)
	if err != nil {
		return err
	}

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	if err := svc.Habits.SetHabitActive(cmd.Context(), habitID, active); err != nil {
		return err
	}

	state := "disabled"
	if active {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Habit %s %s\n", habitID, state)
	return nil
}

func (c *cli) runHabitDelete(cmd *cobra.Command, args []string) error {
	habitID, err := parseID("habit", args[0])
	if err != nil {
		return err
	}

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	if err := svc.Habits.DeleteHabit(cmd.Context(), habitID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Habit %s deleted\n", habitID)
	return nil
}

func (c *cli) runHabitHistory(cmd *cobra.Command, args []string) error {
	habitID, err := parseID("habit", args[0])
	if err != nil {
		return err
	}

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	_, tz, err := ownerZone(cmd.Context(), svc, habitID)
	if err != nil {
		return err
	}

	to, err := c.dateFlag(cmd, "to", tz)
	if err != nil {
		return err
	}
	from := to.AddDays(-6)
	if raw, _ := cmd.Flags().GetString("from"); raw != "" {
		if from, err = localtime.ParseDate(raw); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
	}

	logs, err := svc.Ledger.History(cmd.Context(), habitID, from, to, tz)
	if err != nil {
		return err
	}

	if c.jsonOut {
		return printJSON(cmd.OutOrStdout(), map[string]any{"logs": logs, "count": len(logs)})
	}

	if len(logs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No logs between %s and %s\n", from, to)
		return nil
	}

	loc, err := localtime.LoadLocation(tz)
	if err != nil {
		return err
	}
	w := newTable(cmd.OutOrStdout())
	printTableHeader(w, "DAY", "STATUS", "RECORDED")
	for _, l := range logs {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			localtime.Project(l.LogDate, loc).Date,
			l.Status,
			l.CreatedAt.In(loc).Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
