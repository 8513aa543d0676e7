package driven

import (
	"context"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// AuthAPI is the remote authentication service.
type AuthAPI interface {
	// Register creates an account. The server returns a human-readable
	// message on rejection, surfaced inside the returned error.
	Register(ctx context.Context, reg domain.Registration) error

	// Login exchanges credentials for a user profile and bearer token.
	Login(ctx context.Context, creds domain.Credentials) (domain.Session, error)
}

// WorkspaceAPI is the remote workspace persistence service.
type WorkspaceAPI interface {
	// List returns all workspaces owned by the user with the given NID.
	List(ctx context.Context, userNID string) ([]domain.Workspace, error)

	// Create creates a workspace and returns the server-assigned record.
	Create(ctx context.Context, name, userNID string) (*domain.Workspace, error)

	// Rename changes a workspace's display name.
	Rename(ctx context.Context, id, name string) error

	// Delete removes a workspace.
	Delete(ctx context.Context, id string) error
}

// DocumentAPI is the remote document storage service.
type DocumentAPI interface {
	// List returns the documents of a workspace, optionally filtered by
	// content type and sorted server-side.
	List(ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder) ([]domain.Document, error)

	// Search returns documents in the workspace matching the query,
	// ranked by the server.
	Search(ctx context.Context, workspaceID, query string) ([]domain.Document, error)

	// Upload sends the named file as multipart form data and returns
	// the created document.
	Upload(ctx context.Context, workspaceID, path string) (*domain.Document, error)

	// Rename updates the document's display name.
	Rename(ctx context.Context, id, name string) error

	// SoftDelete moves the document to the recycle bin.
	SoftDelete(ctx context.Context, id string) error

	// Preview returns the inline thumbnail payload.
	Preview(ctx context.Context, id string) (string, error)

	// View returns the inline representation for rendering.
	View(ctx context.Context, id string) (*domain.DocumentView, error)

	// Download streams the document into dir and returns the path of
	// the written file. The filename comes from Content-Disposition.
	Download(ctx context.Context, id, dir string) (string, error)
}

// RecycleBinAPI is the remote soft-delete service.
type RecycleBinAPI interface {
	// ListDeleted returns every soft-deleted document for the user.
	ListDeleted(ctx context.Context) ([]domain.Document, error)

	// Restore moves a soft-deleted document back to its workspace.
	Restore(ctx context.Context, id string) error

	// PermanentDelete irrecoverably removes a soft-deleted document.
	PermanentDelete(ctx context.Context, id string) error
}

// ProfileAPI is the remote user profile service.
type ProfileAPI interface {
	// UpdateName changes the authenticated user's display name and
	// returns the server's confirmation message.
	UpdateName(ctx context.Context, name string) (string, error)
}
