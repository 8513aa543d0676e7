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

// Ensure WorkspaceService implements the interface.
var _ driving.WorkspaceService = (*WorkspaceService)(nil)

// WorkspaceService manages the user's workspaces with the same optimistic
// local-list discipline as the document store: a successful mutation
// patches the held list instead of refetching.
type WorkspaceService struct {
	api      driven.WorkspaceAPI
	sessions driving.SessionService

	mu         sync.Mutex
	workspaces []domain.Workspace
}

// NewWorkspaceService creates a workspace service.
func NewWorkspaceService(api driven.WorkspaceAPI, sessions driving.SessionService) *WorkspaceService {
	return &WorkspaceService{
		api:      api,
		sessions: sessions,
	}
}

// List fetches the user's workspaces and replaces the local list.
func (s *WorkspaceService) List(ctx context.Context) ([]domain.Workspace, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	workspaces, err := s.api.List(ctx, session.User.NID)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	s.mu.Lock()
	s.workspaces = workspaces
	s.mu.Unlock()

	logger.Debug("Loaded %d workspaces", len(workspaces))
	return workspaces, nil
}

// Workspaces returns the locally-held list without a network call.
func (s *WorkspaceService) Workspaces() []domain.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workspaces
}

// Create creates a workspace and appends it to the local list.
func (s *WorkspaceService) Create(ctx context.Context, name string) (*domain.Workspace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	session, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := s.api.Create(ctx, name, session.User.NID)
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	s.mu.Lock()
	s.workspaces = append(cloneWorkspaces(s.workspaces), *workspace)
	s.mu.Unlock()

	logger.Info("Created workspace %s", workspace.Name)
	return workspace, nil
}

// Rename changes a workspace's name and patches the local list entry.
func (s *WorkspaceService) Rename(ctx context.Context, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	if err := s.api.Rename(ctx, id, name); err != nil {
		return fmt.Errorf("rename workspace: %w", err)
	}

	s.mu.Lock()
	out := cloneWorkspaces(s.workspaces)
	for i := range out {
		if out[i].ID == id {
			out[i].Name = name
		}
	}
	s.workspaces = out
	s.mu.Unlock()

	return nil
}

// Delete removes a workspace and drops it from the local list.
func (s *WorkspaceService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}

	s.mu.Lock()
	out := make([]domain.Workspace, 0, len(s.workspaces))
	for _, ws := range s.workspaces {
		if ws.ID != id {
			out = append(out, ws)
		}
	}
	s.workspaces = out
	s.mu.Unlock()

	return nil
}

// cloneWorkspaces copies a workspace slice so local patches never alias a
// slice handed out to a caller.
func cloneWorkspaces(workspaces []domain.Workspace) []domain.Workspace {
	out := make([]domain.Workspace, len(workspaces))
	copy(out, workspaces)
	return out
}
