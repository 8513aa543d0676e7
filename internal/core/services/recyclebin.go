package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

// Ensure RecycleBinService implements the interface.
var _ driving.RecycleBinService = (*RecycleBinService)(nil)

// RecycleBinService manages soft-deleted documents. The bin keeps no local
// cache: restore and purge always re-list from the server, since the bin
// is small and correctness after a mutation matters more than a round trip.
type RecycleBinService struct {
	api driven.RecycleBinAPI
}

// NewRecycleBinService creates a recycle bin service.
func NewRecycleBinService(api driven.RecycleBinAPI) *RecycleBinService {
	return &RecycleBinService{api: api}
}

// List fetches all soft-deleted documents.
func (s *RecycleBinService) List(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.api.ListDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list deleted documents: %w", err)
	}
	return docs, nil
}

// Restore moves a document back to its workspace and re-lists the bin.
func (s *RecycleBinService) Restore(ctx context.Context, id string) ([]domain.Document, error) {
	if err := s.api.Restore(ctx, id); err != nil {
		return nil, fmt.Errorf("restore document: %w", err)
	}

	logger.Info("Restored document %s", id)
	return s.List(ctx)
}

// PermanentDelete irrecoverably removes a document and re-lists the bin.
func (s *RecycleBinService) PermanentDelete(ctx context.Context, id string) ([]domain.Document, error) {
	if err := s.api.PermanentDelete(ctx, id); err != nil {
		return nil, fmt.Errorf("permanently delete document: %w", err)
	}

	logger.Info("Permanently deleted document %s", id)
	return s.List(ctx)
}
