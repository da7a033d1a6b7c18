package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runMigrate(cmd, false, 0)
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return c.runMigrate(cmd, true, steps)
		},
	}
	down.Flags().Int("steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

func (c *cli) runMigrate(cmd *cobra.Command, down bool, steps int) error {
	if c.env.Migrate == nil {
		return fmt.Errorf("migrations are not available")
	}
	if err := c.env.Migrate(cmd.Context(), down, steps); err != nil {
		return err
	}
	if down {
		fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", steps)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	}
	return nil
}
