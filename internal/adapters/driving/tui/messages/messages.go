// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLogin is the login/register view.
	ViewLogin ViewType = iota
	// ViewWorkspaces is the workspace list view.
	ViewWorkspaces
	// ViewDocuments lists and searches documents for a workspace.
	ViewDocuments
	// ViewRecycleBin lists soft-deleted documents.
	ViewRecycleBin
	// ViewProfile shows and edits the user profile.
	ViewProfile
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewWorkspaces:
		return "workspaces"
	case ViewDocuments:
		return "documents"
	case ViewRecycleBin:
		return "recycle_bin"
	case ViewProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// LoggedIn signals a completed login attempt.
type LoggedIn struct {
	Session domain.Session
	Err     error
}

// LoggedOut signals the session was cleared.
type LoggedOut struct {
	Err error
}

// NameUpdated signals the profile name change completed.
type NameUpdated struct {
	Name    string
	Message string
	Err     error
}

// WorkspacesLoaded carries the user's workspaces.
type WorkspacesLoaded struct {
	Workspaces []domain.Workspace
	Err        error
}

// WorkspaceCreated signals a workspace was created.
type WorkspaceCreated struct {
	Workspace *domain.Workspace
	Err       error
}

// WorkspaceRenamed signals a workspace rename completed.
type WorkspaceRenamed struct {
	ID   string
	Name string
	Err  error
}

// WorkspaceDeleted signals a workspace was deleted.
type WorkspaceDeleted struct {
	ID  string
	Err error
}

// WorkspaceSelected signals a workspace was opened.
type WorkspaceSelected struct {
	Workspace domain.Workspace
}

// DocumentsLoaded carries the full listing for the active workspace.
type DocumentsLoaded struct {
	WorkspaceID string
	Documents   []domain.Document
	Err         error
}

// SearchCompleted carries the reconciled displayed list after a settled
// search query. Query is the query that produced the list.
type SearchCompleted struct {
	Query     string
	Documents []domain.Document
	Err       error
}

// DocumentUploaded signals an upload completed.
type DocumentUploaded struct {
	Document *domain.Document
	Err      error
}

// DocumentRenamed signals a document rename completed.
type DocumentRenamed struct {
	ID   string
	Name string
	Err  error
}

// DocumentDeleted signals a document was moved to the recycle bin.
type DocumentDeleted struct {
	ID  string
	Err error
}

// DocumentViewLoaded carries a document's inline representation.
type DocumentViewLoaded struct {
	ID   string
	View *domain.DocumentView
	Err  error
}

// DocumentDownloaded signals a download completed.
type DocumentDownloaded struct {
	ID   string
	Path string
	Err  error
}

// BinLoaded carries the recycle bin contents. It follows every bin
// mutation as well as the initial listing.
type BinLoaded struct {
	Documents []domain.Document
	Err       error
}
