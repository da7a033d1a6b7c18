package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	ensure := &cobra.Command{
		Use:   "ensure <external-id>",
		Short: "Create a user or update its timezone",
		Long: `Return the user with the given external (chat) id, creating it on first
contact. An existing user's timezone is updated when --tz differs.

Examples:
  habitctl user ensure 123456789 --tz Europe/Warsaw
  habitctl user ensure 123456789 --tz UTC+3`,
		Args: cobra.ExactArgs(1),
		RunE: c.runUserEnsure,
	}
	ensure.Flags().String("tz", "", "IANA timezone name or UTC offset")
	_ = ensure.MarkFlagRequired("tz")

	del := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user with all habits and logs",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runUserDelete,
	}

	cmd.AddCommand(ensure, del)
	return cmd
}

func (c *cli) runUserEnsure(cmd *cobra.Command, args []string) error {
	tz, _ := cmd.Flags().GetString("tz")

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	user, err := svc.Habits.GetOrCreateUser(cmd.Context(), args[0], tz)
	if err != nil {
		return err
	}

	if c.jsonOut {
		return printJSON(cmd.OutOrStdout(), user)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "User %s (external id %s, timezone %s)\n", user.ID, user.ExternalID, user.Timezone)
	return nil
}

func (c *cli) runUserDelete(cmd *cobra.Command, args []string) error {
	userID, err := parseID("user", args[0])
	if err != nil {
		return err
	}

	svc, release, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer release()

	if err := svc.Habits.DeleteUser(cmd.Context(), userID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "User %s deleted\n", userID)
	return nil
}
