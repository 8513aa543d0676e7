package driving

import (
	"context"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// WorkspaceService manages the user's workspaces. Mutations update the
// locally-held list without refetching: create appends the returned record,
// rename and delete patch by ID.
type WorkspaceService interface {
	// List fetches the user's workspaces and replaces the local list.
	List(ctx context.Context) ([]domain.Workspace, error)

	// Workspaces returns the locally-held list without a network call.
	Workspaces() []domain.Workspace

	// Create creates a workspace and appends it to the local list.
	Create(ctx context.Context, name string) (*domain.Workspace, error)

	// Rename changes a workspace's name and patches the local list entry.
	Rename(ctx context.Context, id, name string) error

	// Delete removes a workspace and drops it from the local list.
	Delete(ctx context.Context, id string) error
}
