// Package tui provides an interactive terminal user interface for docshelf.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session manages the authenticated session.
	Session driving.SessionService

	// Workspace manages the user's workspaces.
	Workspace driving.WorkspaceService

	// Document is the workspace document store.
	Document driving.DocumentService

	// RecycleBin manages soft-deleted documents.
	RecycleBin driving.RecycleBinService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	session driving.SessionService,
	workspace driving.WorkspaceService,
	document driving.DocumentService,
	recycleBin driving.RecycleBinService,
) *Ports {
	return &Ports{
		Session:    session,
		Workspace:  workspace,
		Document:   document,
		RecycleBin: recycleBin,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Workspace == nil {
		return ErrMissingWorkspaceService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	if p.RecycleBin == nil {
		return ErrMissingRecycleBinService
	}
	return nil
}
