package driven

import (
	"context"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// ListCache persists the last fetched document list per workspace, filter
// and sort combination. It lets a fresh process render the previous listing
// immediately while the first fetch is in flight. It is never consulted to
// answer a search.
type ListCache interface {
	// Put replaces the cached list for the combination.
	Put(ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder, docs []domain.Document) error

	// Get returns the cached list for the combination.
	// Returns domain.ErrNotFound when nothing is cached.
	Get(ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder) ([]domain.Document, error)

	// Invalidate drops every cached list for the workspace.
	Invalidate(ctx context.Context, workspaceID string) error
}
