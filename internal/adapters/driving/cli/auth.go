package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the document service",
	Long: `Authenticate against the document service and persist the session.

The password is read from the terminal without echo. Subsequent commands
reuse the stored session until you log out or the token expires.`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long: `Create an account on the document service.

All fields are required. The national ID must be exactly 14 digits and
the password at least 6 characters.`,
	RunE: runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

// Flags for register.
var (
	registerName  string
	registerEmail string
	registerNID   string
)

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerNID, "nid", "", "National ID (14 digits)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

// readPassword prompts for a password without echoing it. Falls back to a
// plain line read when stdin is not a terminal (tests, pipes).
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	cmd.Print(prompt)

	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &line); err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	password, err := readPassword(cmd, "Password: ")
	if err != nil {
		return err
	}

	ctx := context.Background()
	session, err := sessionService.Login(ctx, domain.Credentials{
		Email:    args[0],
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Logged in as %s (%s)\n", session.User.Name, session.User.Email)
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if registerName == "" || registerEmail == "" || registerNID == "" {
		return errors.New("--name, --email and --nid are required")
	}

	password, err := readPassword(cmd, "Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword(cmd, "Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	ctx := context.Background()
	err = sessionService.Register(ctx, domain.Registration{
		Name:     registerName,
		Email:    registerEmail,
		Password: password,
		NID:      registerNID,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	cmd.Println("Account created. Log in with: docshelf login " + registerEmail)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if err := sessionService.Logout(context.Background()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	cmd.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	session, err := sessionService.Current(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			cmd.Println("Not logged in.")
			return nil
		}
		return err
	}

	cmd.Printf("Name:  %s\n", session.User.Name)
	cmd.Printf("Email: %s\n", session.User.Email)
	cmd.Printf("NID:   %s\n", session.User.NID)
	return nil
}
