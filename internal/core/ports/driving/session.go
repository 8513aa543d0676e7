package driving

import (
	"context"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// SessionService manages the authenticated session lifecycle.
type SessionService interface {
	// Register creates an account. Validation failures never reach the
	// network.
	Register(ctx context.Context, reg domain.Registration) error

	// Login authenticates and persists the resulting session.
	Login(ctx context.Context, creds domain.Credentials) (domain.Session, error)

	// Logout clears the in-memory and persisted session.
	Logout(ctx context.Context) error

	// Current returns the active session.
	// Returns domain.ErrNotLoggedIn when no session is active.
	Current(ctx context.Context) (domain.Session, error)

	// UpdateName changes the user's display name on the server and
	// patches the stored session. Returns the server's message.
	UpdateName(ctx context.Context, name string) (string, error)
}
