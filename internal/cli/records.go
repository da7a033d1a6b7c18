package cli

import (
	"fmt"
	"time"

	"habit-reminder/internal/domain"

	"github.com/spf13/cobra"
)

func (c *cli) doneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <habit-id>",
		Short: "Mark a habit done for a local day",
		Long: `Record the habit as done for one of the owner's local calendar days.
Repeating the command for the same day leaves a single record.

Examples:
  habitctl done <habit-id>
  habitctl done <habit-id> --date 2026-10-11`,
		Args: cobra.ExactArgs(1),
		RunE: c.runDone,
	}
	cmd.Flags().String("date", "", "local day, YYYY-MM-DD (default: today in the owner's timezone)")
	return cmd
}

func (c *cli) statsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <user-id>",
		Short: "Show done/missed counts for the last 7 local days",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runStats,
	}
	cmd.Flags().String("date", "", "last local day of the window, YYYY-MM-DD (default: today)")
	return cmd
}

func (c *cli) dueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List reminders due at an instant without sending them",
		Args:  cobra.NoArgs,
		RunE:  c.runDue,
	}
	cmd.Flags().String("at", "", "UTC instant, RFC 3339 (default: now)")
	return cmd
}

func (c *cli) runDone(cmd *cobra.Command, args []string) error {
	habitID, err := parseID("habit", args[0])
	if err != nil {
		return err
	}

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	habit, tz, err := ownerZone(cmd.Context(), svc, habitID)
	if err != nil {
		return err
	}
	day, err := c.dateFlag(cmd, "date", tz)
	if err != nil {
		return err
	}

	if err := svc.Ledger.MarkDone(cmd.Context(), habitID, day, tz); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%q marked done for %s (%s)\n", habit.Title, day, tz)
	return nil
}

func (c *cli) runStats(cmd *cobra.Command, args []string) error {
	userID, err := parseID("user", args[0])
	if err != nil {
		return err
	}

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	user, err := svc.Habits.GetUser(cmd.Context(), userID)
	if err != nil {
		return err
	}
	day, err := c.dateFlag(cmd, "date", user.Timezone)
	if err != nil {
		return err
	}

	rows, err := svc.Stats.StatsLast7Days(cmd.Context(), userID, day, user.Timezone)
	if err != nil {
		return err
	}

	if c.jsonOut {
		return printJSON(cmd.OutOrStdout(), map[string]any{"date": day.String(), "stats": rows})
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No habits yet")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Last 7 days up to %s\n", day)
	w := newTable(cmd.OutOrStdout())
	printTableHeader(w, "HABIT", "DONE", "MISSED")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%d\n", r.Title, r.Done, r.Missed)
	}
	return w.Flush()
}

func (c *cli) runDue(cmd *cobra.Command, _ []string) error {
	at := c.env.Now().UTC()
	if raw, _ := cmd.Flags().GetString("at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("%w: instant %q must be RFC 3339", domain.ErrValidation, raw)
		}
		at = t.UTC()
	}

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	reminders, err := svc.Detector.DueReminders(cmd.Context(), at)
	if err != nil {
		return err
	}

	if c.jsonOut {
		return printJSON(cmd.OutOrStdout(), map[string]any{"at": at, "reminders": reminders, "count": len(reminders)})
	}

	if len(reminders) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing due at %s\n", at.Format(time.RFC3339))
		return nil
	}

	w := newTable(cmd.OutOrStdout())
	printTableHeader(w, "HABIT", "TITLE", "USER", "LOCAL", "TIMEZONE")
	for _, r := range reminders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s\n", r.HabitID, r.Title, r.ExternalID, r.LocalDate, r.TimeOfDay, r.Timezone)
	}
	return w.Flush()
}
