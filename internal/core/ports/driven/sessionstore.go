package driven

import (
	"context"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// SessionStore persists the authenticated session between CLI invocations.
type SessionStore interface {
	// Save stores the session, replacing any previous one.
	Save(ctx context.Context, session domain.Session) error

	// Load returns the stored session.
	// Returns domain.ErrNotFound when no session is stored.
	Load(ctx context.Context) (domain.Session, error)

	// Clear removes the stored session. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
