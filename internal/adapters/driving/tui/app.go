package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/debounce"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/views/documents"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/views/login"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/views/profile"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/views/recyclebin"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/views/workspaces"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// loginView is the login form.
	loginView *login.View

	// workspacesView is the workspace list.
	workspacesView *workspaces.View

	// documentsView lists and searches the active workspace's documents.
	documentsView *documents.View

	// recycleBinView lists soft-deleted documents.
	recycleBinView *recyclebin.View

	// profileView shows and edits the user profile.
	profileView *profile.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports. The debounce
// window controls how long the document search input must settle before a
// remote search fires; pass nil to use the default.
func NewApp(ports *Ports, d *debounce.Debouncer) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		loginView:      login.NewView(s, ports.Session),
		workspacesView: workspaces.NewView(s, km, ports.Workspace),
		documentsView:  documents.NewView(s, km, ports.Document, d),
		recycleBinView: recyclebin.NewView(s, km, ports.RecycleBin),
		profileView:    profile.NewView(s, ports.Session),
		currentView:    messages.ViewLogin,
	}

	// Start on the workspaces view when a persisted session is active.
	if _, err := ports.Session.Current(app.ctx); err == nil {
		app.currentView = messages.ViewWorkspaces
	}

	return app, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.loginView.WithContext(ctx)
	a.workspacesView.WithContext(ctx)
	a.documentsView.WithContext(ctx)
	a.recycleBinView.WithContext(ctx)
	a.profileView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("docshelf"),
	}
	if a.currentView == messages.ViewWorkspaces {
		cmds = append(cmds, a.workspacesView.Load())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.loginView, _ = a.loginView.Update(msg)
		a.workspacesView, _ = a.workspacesView.Update(msg)
		a.documentsView, _ = a.documentsView.Update(msg)
		a.recycleBinView, _ = a.recycleBinView.Update(msg)
		a.profileView, _ = a.profileView.Update(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case debounce.Settled:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.LoggedIn:
		a.loginView, cmd = a.loginView.Update(msg)
		if msg.Err == nil {
			a.currentView = messages.ViewWorkspaces
			return a, tea.Batch(cmd, a.workspacesView.Load())
		}
		return a, cmd

	case messages.LoggedOut:
		a.currentView = messages.ViewLogin
		a.loginView.Reset()
		return a, nil

	case messages.ViewChanged:
		return a.handleViewChanged(msg)

	case messages.WorkspaceSelected:
		a.currentView = messages.ViewDocuments
		return a, a.documentsView.SetWorkspace(msg.Workspace)

	case messages.WorkspacesLoaded,
		messages.WorkspaceCreated,
		messages.WorkspaceRenamed,
		messages.WorkspaceDeleted:
		a.workspacesView, cmd = a.workspacesView.Update(msg)
		return a, cmd

	case messages.DocumentsLoaded,
		messages.SearchCompleted,
		messages.DocumentUploaded,
		messages.DocumentRenamed,
		messages.DocumentDeleted,
		messages.DocumentViewLoaded,
		messages.DocumentDownloaded:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.BinLoaded:
		a.recycleBinView, cmd = a.recycleBinView.Update(msg)
		return a, cmd

	case messages.NameUpdated:
		a.profileView, cmd = a.profileView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil
	}

	return a, nil
}

// handleKeyMsg routes key presses. Global bindings are handled here;
// everything else goes to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Global quit with ctrl+c
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
		return a, cmd

	case messages.ViewWorkspaces:
		// Global navigation only applies outside dialogs.
		if a.workspacesView.ActiveDialog() == workspaces.DialogNone {
			switch {
			case keymap.Matches(msg.String(), a.keymap.Quit):
				return a, tea.Quit
			case keymap.Matches(msg.String(), a.keymap.Bin):
				a.currentView = messages.ViewRecycleBin
				return a, a.recycleBinView.Load()
			case keymap.Matches(msg.String(), a.keymap.Profile):
				a.currentView = messages.ViewProfile
				a.profileView.Refresh()
				return a, nil
			}
		}
		a.workspacesView, cmd = a.workspacesView.Update(msg)
		return a, cmd

	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.ViewRecycleBin:
		a.recycleBinView, cmd = a.recycleBinView.Update(msg)
		return a, cmd

	case messages.ViewProfile:
		a.profileView, cmd = a.profileView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleViewChanged switches the active view, loading it as needed.
func (a *App) handleViewChanged(msg messages.ViewChanged) (tea.Model, tea.Cmd) {
	a.currentView = msg.View

	switch msg.View {
	case messages.ViewWorkspaces:
		return a, a.workspacesView.Load()
	case messages.ViewRecycleBin:
		// The bin always refetches on entry.
		return a, a.recycleBinView.Load()
	case messages.ViewProfile:
		a.profileView.Refresh()
		return a, nil
	case messages.ViewLogin, messages.ViewDocuments:
		// No load needed.
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewLogin:
		return a.loginView.View()
	case messages.ViewWorkspaces:
		return a.workspacesView.View()
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewRecycleBin:
		return a.recycleBinView.View()
	case messages.ViewProfile:
		return a.profileView.View()
	default:
		return ""
	}
}

// Ready reports whether the first window size has arrived.
func (a *App) Ready() bool {
	return a.ready
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last app-level error.
func (a *App) Err() error {
	return a.err
}

// LoggedIn reports whether a session is active.
func (a *App) LoggedIn() bool {
	_, err := a.ports.Session.Current(a.ctx)
	return err == nil
}
