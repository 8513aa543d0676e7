package driving

import (
	"context"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// RecycleBinService manages soft-deleted documents. Unlike the workspace
// document store it keeps no cache/displayed split: every mutation is
// followed by a full re-list.
type RecycleBinService interface {
	// List fetches all soft-deleted documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Restore moves a document back to its workspace and re-lists.
	Restore(ctx context.Context, id string) ([]domain.Document, error)

	// PermanentDelete irrecoverably removes a document and re-lists.
	PermanentDelete(ctx context.Context, id string) ([]domain.Document, error)
}
