package driving

import (
	"context"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// DocumentService is the workspace document store. It holds two parallel
// containers: the cache (last full fetched list for the active workspace,
// filter and sort) and the displayed list (what the view renders). The
// displayed list equals the cache whenever the search query is empty, and
// equals the last settled search result otherwise. Clearing the query
// restores the cache without a network round trip.
type DocumentService interface {
	// Load fetches the workspace listing and replaces both containers.
	// On failure the prior state is left untouched.
	Load(ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder) ([]domain.Document, error)

	// LoadOffline returns the persisted listing for the combination
	// without a network call. Returns domain.ErrNotFound when nothing
	// has been cached yet.
	LoadOffline(ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder) ([]domain.Document, error)

	// InvalidateCache drops every persisted listing for a workspace.
	InvalidateCache(ctx context.Context, workspaceID string) error

	// ApplySearch reconciles the displayed list with a settled search
	// query. An empty or whitespace-only query restores the cache with
	// no network call; otherwise the remote search result replaces the
	// displayed list and the cache is left unmodified.
	ApplySearch(ctx context.Context, query string) ([]domain.Document, error)

	// Displayed returns the currently displayed list.
	Displayed() []domain.Document

	// Cached returns the cached unfiltered list.
	Cached() []domain.Document

	// Upload sends a file to the active workspace and appends the
	// returned document to both containers.
	Upload(ctx context.Context, path string) (*domain.Document, error)

	// Rename updates a document's name and patches both containers.
	Rename(ctx context.Context, id, name string) error

	// SoftDelete moves a document to the recycle bin and removes it
	// from both containers.
	SoftDelete(ctx context.Context, id string) error

	// View returns the inline representation of a document.
	View(ctx context.Context, id string) (*domain.DocumentView, error)

	// Preview returns the inline thumbnail payload of a document.
	Preview(ctx context.Context, id string) (string, error)

	// Download streams a document into dir and returns the written path.
	Download(ctx context.Context, id, dir string) (string, error)
}
