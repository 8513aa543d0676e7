package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileSetNameCmd = &cobra.Command{
	Use:   "set-name [name]",
	Short: "Change your display name",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSetName,
}

func init() {
	profileCmd.AddCommand(profileSetNameCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSetName(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	msg, err := sessionService.UpdateName(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to update name: %w", err)
	}

	if msg == "" {
		msg = "Name updated."
	}
	cmd.Println(msg)
	return nil
}
