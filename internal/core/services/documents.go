package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docshelf-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService holds the document list state for the active workspace.
//
// Two parallel containers are kept: cached (the last full fetched list for
// the workspace/filter/sort combination) and displayed (what the view
// renders). Searching replaces only the displayed list, so clearing the
// query restores the pre-search listing without a network round trip.
//
// Mutations are optimistic: a successful create/rename/delete patches both
// containers locally instead of refetching. If two mutations race on the
// same ID the last response to arrive wins; there is no version check.
// This inconsistency window is bounded by server latency and accepted.
type DocumentService struct {
	api       driven.DocumentAPI
	listCache driven.ListCache // optional

	mu          sync.Mutex
	workspaceID string
	filter      domain.TypeFilter
	sort        domain.SortOrder
	cached      []domain.Document
	displayed   []domain.Document

	// searchSeq invalidates in-flight searches that were superseded by a
	// newer query or a workspace change before their response arrived.
	searchSeq uint64
}

// NewDocumentService creates a document service.
// The listCache parameter is optional (can be nil).
func NewDocumentService(api driven.DocumentAPI, listCache driven.ListCache) *DocumentService {
	return &DocumentService{
		api:       api,
		listCache: listCache,
	}
}

// Load fetches the workspace listing and replaces both containers.
// On failure the prior state is left untouched.
func (s *DocumentService) Load(
	ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder,
) ([]domain.Document, error) {
	if workspaceID == "" {
		return nil, domain.ErrNoWorkspace
	}

	docs, err := s.api.List(ctx, workspaceID, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	s.mu.Lock()
	s.workspaceID = workspaceID
	s.filter = filter
	s.sort = sort
	s.cached = docs
	s.displayed = docs
	s.searchSeq++ // Invalidate any search still in flight
	s.mu.Unlock()

	logger.Debug("Loaded %d documents for workspace %s", len(docs), workspaceID)

	if s.listCache != nil {
		if err := s.listCache.Put(ctx, workspaceID, filter, sort, docs); err != nil {
			logger.Warn("Writing list cache failed: %v", err)
		}
	}

	return docs, nil
}

// LoadOffline returns the persisted listing for a workspace without a
// network call. Used to render something before the first fetch lands.
func (s *DocumentService) LoadOffline(
	ctx context.Context, workspaceID string, filter domain.TypeFilter, sort domain.SortOrder,
) ([]domain.Document, error) {
	if s.listCache == nil {
		return nil, domain.ErrNotFound
	}
	return s.listCache.Get(ctx, workspaceID, filter, sort)
}

// InvalidateCache drops every persisted listing for a workspace. Called
// after the workspace itself is deleted, when its cached lists can only
// ever be stale.
func (s *DocumentService) InvalidateCache(ctx context.Context, workspaceID string) error {
	if s.listCache == nil {
		return nil
	}
	if err := s.listCache.Invalidate(ctx, workspaceID); err != nil {
		return fmt.Errorf("invalidate list cache: %w", err)
	}
	return nil
}

// ApplySearch reconciles the displayed list with a settled search query.
//
// An empty or whitespace-only query restores the cache with no network
// call. Otherwise the remote search result replaces the displayed list and
// the cache is left unmodified. A result arriving after the query was
// superseded (newer search, new Load) is discarded.
func (s *DocumentService) ApplySearch(ctx context.Context, query string) ([]domain.Document, error) {
	s.mu.Lock()
	workspaceID := s.workspaceID
	if strings.TrimSpace(query) == "" {
		s.searchSeq++
		s.displayed = s.cached
		displayed := s.displayed
		s.mu.Unlock()
		logger.Debug("Empty query, restored %d cached documents", len(displayed))
		return displayed, nil
	}
	s.searchSeq++
	seq := s.searchSeq
	s.mu.Unlock()

	if workspaceID == "" {
		return nil, domain.ErrNoWorkspace
	}

	docs, err := s.api.Search(ctx, workspaceID, query)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.searchSeq {
		// A newer query settled while this one was in flight.
		logger.Debug("Discarding stale search result for %q", query)
		return s.displayed, nil
	}
	s.displayed = docs

	logger.Debug("Search %q matched %d documents", query, len(docs))
	return docs, nil
}

// Displayed returns the currently displayed list.
func (s *DocumentService) Displayed() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayed
}

// Cached returns the cached unfiltered list.
func (s *DocumentService) Cached() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached
}

// Upload sends a file to the active workspace and appends the returned
// document to both containers.
func (s *DocumentService) Upload(ctx context.Context, path string) (*domain.Document, error) {
	s.mu.Lock()
	workspaceID := s.workspaceID
	s.mu.Unlock()
	if workspaceID == "" {
		return nil, domain.ErrNoWorkspace
	}

	doc, err := s.api.Upload(ctx, workspaceID, path)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}

	s.mu.Lock()
	s.cached = append(cloneList(s.cached), *doc)
	s.displayed = append(cloneList(s.displayed), *doc)
	s.mu.Unlock()

	s.persistCache(ctx)

	logger.Info("Uploaded %s to workspace %s", doc.Name, workspaceID)
	return doc, nil
}

// Rename updates a document's name and patches both containers by ID.
func (s *DocumentService) Rename(ctx context.Context, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	if err := s.api.Rename(ctx, id, name); err != nil {
		return fmt.Errorf("rename document: %w", err)
	}

	patch := func(docs []domain.Document) []domain.Document {
		out := cloneList(docs)
		for i := range out {
			if out[i].ID == id {
				out[i].Name = name
			}
		}
		return out
	}

	s.mu.Lock()
	s.cached = patch(s.cached)
	s.displayed = patch(s.displayed)
	s.mu.Unlock()

	s.persistCache(ctx)
	return nil
}

// SoftDelete moves a document to the recycle bin and removes it from both
// containers.
func (s *DocumentService) SoftDelete(ctx context.Context, id string) error {
	if err := s.api.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	drop := func(docs []domain.Document) []domain.Document {
		out := make([]domain.Document, 0, len(docs))
		for _, d := range docs {
			if d.ID != id {
				out = append(out, d)
			}
		}
		return out
	}

	s.mu.Lock()
	s.cached = drop(s.cached)
	s.displayed = drop(s.displayed)
	s.mu.Unlock()

	s.persistCache(ctx)
	return nil
}

// View returns the inline representation of a document.
func (s *DocumentService) View(ctx context.Context, id string) (*domain.DocumentView, error) {
	view, err := s.api.View(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("view document: %w", err)
	}
	return view, nil
}

// Preview returns the inline thumbnail payload of a document.
func (s *DocumentService) Preview(ctx context.Context, id string) (string, error) {
	preview, err := s.api.Preview(ctx, id)
	if err != nil {
		return "", fmt.Errorf("preview document: %w", err)
	}
	return preview, nil
}

// Download streams a document into dir and returns the written path.
func (s *DocumentService) Download(ctx context.Context, id, dir string) (string, error) {
	path, err := s.api.Download(ctx, id, dir)
	if err != nil {
		return "", fmt.Errorf("download document: %w", err)
	}
	logger.Info("Downloaded document %s to %s", id, path)
	return path, nil
}

// persistCache mirrors the cached container to the list cache.
func (s *DocumentService) persistCache(ctx context.Context) {
	if s.listCache == nil {
		return
	}

	s.mu.Lock()
	workspaceID := s.workspaceID
	filter := s.filter
	sort := s.sort
	cached := s.cached
	s.mu.Unlock()

	if workspaceID == "" {
		return
	}
	if err := s.listCache.Put(ctx, workspaceID, filter, sort, cached); err != nil {
		logger.Warn("Writing list cache failed: %v", err)
	}
}

// cloneList copies a document slice so local patches never alias a slice
// handed out to a caller.
func cloneList(docs []domain.Document) []domain.Document {
	out := make([]domain.Document, len(docs))
	copy(out, docs)
	return out
}
