// Package documents provides the document list and search view for the TUI.
//
// The view renders the document store's displayed list. Typing in the search
// input schedules a debounced settle; only the latest settle triggers a
// remote search. Clearing the input restores the cached listing immediately
// with no network round trip.
package documents

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/debounce"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driving"
)

// Dialog identifies the active modal dialog. Only one dialog can be open
// at a time.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogUpload
	DialogRename
	DialogDelete
)

// View is the documents view.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	documentService driving.DocumentService
	ctx             context.Context

	workspace *domain.Workspace
	documents []domain.Document
	selected  int

	search        *input.SearchInput
	searchFocused bool
	debouncer     *debounce.Debouncer
	lastValue     string

	activeDialog Dialog
	prompt       *input.Prompt

	docView *domain.DocumentView

	listState   domain.RequestState
	searchState domain.RequestState
	status      string
	err         error

	width  int
	height int
}

// NewView creates a new documents view. The debouncer controls how long the
// search input must be quiet before a remote search fires.
func NewView(
	s *styles.Styles, km *keymap.KeyMap, documentService driving.DocumentService, d *debounce.Debouncer,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if d == nil {
		d = debounce.New(debounce.DefaultWindow)
	}

	return &View{
		styles:          s,
		keymap:          km,
		documentService: documentService,
		ctx:             context.Background(),
		documents:       []domain.Document{},
		search:          input.NewSearchInput(s),
		debouncer:       d,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetWorkspace binds the view to a workspace and loads its documents.
// The search input and any open dialog are reset.
func (v *View) SetWorkspace(workspace domain.Workspace) tea.Cmd {
	v.workspace = &workspace
	v.documents = []domain.Document{}
	v.selected = 0
	v.err = nil
	v.activeDialog = DialogNone
	v.docView = nil
	v.search.SetValue("")
	v.search.Blur()
	v.searchFocused = false
	v.lastValue = ""
	v.debouncer.Cancel()
	return v.load()
}

// load returns a command that fetches the workspace listing.
func (v *View) load() tea.Cmd {
	workspaceID := v.workspace.ID
	v.listState = domain.RequestLoading
	return func() tea.Msg {
		docs, err := v.documentService.Load(v.ctx, workspaceID, domain.FilterAll, domain.SortNone)
		return messages.DocumentsLoaded{WorkspaceID: workspaceID, Documents: docs, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.search.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case debounce.Settled:
		return v.handleSettled(msg)

	case messages.DocumentsLoaded:
		if msg.Err != nil {
			v.listState = domain.RequestFailed
			v.err = msg.Err
			return v, nil
		}
		v.listState = domain.RequestSucceeded
		v.err = nil
		v.documents = msg.Documents
		v.selected = 0
		return v, nil

	case messages.SearchCompleted:
		return v.handleSearchCompleted(msg)

	case messages.DocumentUploaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.status = fmt.Sprintf("Uploaded %s", msg.Document.Name)
		v.refreshDisplayed()
		return v, nil

	case messages.DocumentRenamed:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.refreshDisplayed()
		return v, nil

	case messages.DocumentDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.status = "Moved to recycle bin"
		v.refreshDisplayed()
		return v, nil

	case messages.DocumentViewLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.docView = msg.View
		return v, nil

	case messages.DocumentDownloaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.status = "Downloaded to " + msg.Path
		return v, nil
	}

	return v, nil
}

// refreshDisplayed re-reads the displayed list after an optimistic mutation.
func (v *View) refreshDisplayed() {
	v.documents = v.documentService.Displayed()
	if v.selected >= len(v.documents) && v.selected > 0 {
		v.selected = len(v.documents) - 1
	}
}

// handleSettled fires the remote search for the latest settled query.
// Stale settles from superseded keystrokes are dropped.
func (v *View) handleSettled(msg debounce.Settled) (*View, tea.Cmd) {
	if !v.debouncer.Current(msg) {
		return v, nil
	}

	query := msg.Query
	v.searchState = domain.RequestLoading
	return v, func() tea.Msg {
		docs, err := v.documentService.ApplySearch(v.ctx, query)
		return messages.SearchCompleted{Query: query, Documents: docs, Err: err}
	}
}

// handleSearchCompleted applies a settled search result.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) (*View, tea.Cmd) {
	if msg.Err != nil {
		v.searchState = domain.RequestFailed
		v.err = msg.Err
		return v, nil
	}
	v.searchState = domain.RequestSucceeded
	v.err = nil
	v.documents = msg.Documents
	if v.selected >= len(v.documents) {
		v.selected = 0
	}
	return v, nil
}

// handleKeyMsg routes key presses by mode: dialog, inline view, search
// input, then list navigation.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.activeDialog != DialogNone {
		return v.handleDialogKeyMsg(msg)
	}

	if v.docView != nil {
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			v.docView = nil
		}
		return v, nil
	}

	if v.searchFocused {
		return v.handleSearchKeyMsg(msg)
	}

	return v.handleListKeyMsg(msg)
}

// handleSearchKeyMsg forwards keys to the search input and debounces the
// resulting query changes.
func (v *View) handleSearchKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.search.Blur()
		v.searchFocused = false
		return v, nil
	case tea.KeyEnter:
		v.search.Blur()
		v.searchFocused = false
		return v, nil
	}

	var inputCmd tea.Cmd
	v.search, inputCmd = v.search.Update(msg)

	value := v.search.Value()
	if value == v.lastValue {
		return v, inputCmd
	}
	v.lastValue = value

	if strings.TrimSpace(value) == "" {
		// Clearing the query restores the cache without waiting for the
		// debounce window and without a network call.
		v.debouncer.Cancel()
		docs, err := v.documentService.ApplySearch(v.ctx, "")
		if err == nil {
			v.searchState = domain.RequestSucceeded
			v.documents = docs
			v.selected = 0
		}
		return v, inputCmd
	}

	return v, tea.Batch(inputCmd, v.debouncer.Trigger(value))
}

// handleListKeyMsg handles key presses in list mode.
func (v *View) handleListKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Search):
		v.searchFocused = true
		return v, v.search.Focus()

	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.documents)-1 {
			v.selected++
		}

	case keymap.Matches(keyStr, v.keymap.Select):
		if doc := v.SelectedDocument(); doc != nil {
			id := doc.ID
			return v, func() tea.Msg {
				view, err := v.documentService.View(v.ctx, id)
				return messages.DocumentViewLoaded{ID: id, View: view, Err: err}
			}
		}

	case keymap.Matches(keyStr, v.keymap.New):
		v.activeDialog = DialogUpload
		v.prompt = input.NewPrompt(v.styles, "File path", "/path/to/file.pdf")

	case keymap.Matches(keyStr, v.keymap.Rename):
		if doc := v.SelectedDocument(); doc != nil {
			v.activeDialog = DialogRename
			v.prompt = input.NewPrompt(v.styles, "New name", "")
			v.prompt.SetValue(doc.Name)
		}

	case keymap.Matches(keyStr, v.keymap.Delete):
		if v.SelectedDocument() != nil {
			v.activeDialog = DialogDelete
		}

	case keymap.Matches(keyStr, v.keymap.Download):
		if doc := v.SelectedDocument(); doc != nil {
			id := doc.ID
			return v, func() tea.Msg {
				path, err := v.documentService.Download(v.ctx, id, ".")
				return messages.DocumentDownloaded{ID: id, Path: path, Err: err}
			}
		}

	case keymap.Matches(keyStr, v.keymap.Reload):
		return v, v.load()

	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewWorkspaces}
		}
	}

	return v, nil
}

// handleDialogKeyMsg handles key presses while a dialog is open.
func (v *View) handleDialogKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.activeDialog = DialogNone
		return v, nil

	case tea.KeyEnter:
		return v.confirmDialog()
	}

	if v.activeDialog == DialogDelete {
		// Delete confirms with y, anything else cancels.
		if msg.String() == "y" {
			return v.confirmDialog()
		}
		v.activeDialog = DialogNone
		return v, nil
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	return v, cmd
}

// confirmDialog executes the open dialog's action.
func (v *View) confirmDialog() (*View, tea.Cmd) {
	dialog := v.activeDialog
	v.activeDialog = DialogNone

	switch dialog {
	case DialogUpload:
		path := strings.TrimSpace(v.promptValue())
		if path == "" {
			return v, nil
		}
		return v, func() tea.Msg {
			doc, err := v.documentService.Upload(v.ctx, path)
			return messages.DocumentUploaded{Document: doc, Err: err}
		}

	case DialogRename:
		doc := v.SelectedDocument()
		name := strings.TrimSpace(v.promptValue())
		if doc == nil || name == "" || name == doc.Name {
			return v, nil
		}
		id := doc.ID
		return v, func() tea.Msg {
			err := v.documentService.Rename(v.ctx, id, name)
			return messages.DocumentRenamed{ID: id, Name: name, Err: err}
		}

	case DialogDelete:
		doc := v.SelectedDocument()
		if doc == nil {
			return v, nil
		}
		id := doc.ID
		return v, func() tea.Msg {
			err := v.documentService.SoftDelete(v.ctx, id)
			return messages.DocumentDeleted{ID: id, Err: err}
		}
	}

	return v, nil
}

// promptValue returns the prompt's value, tolerating a nil prompt.
func (v *View) promptValue() string {
	if v.prompt == nil {
		return ""
	}
	return v.prompt.Value()
}

// View renders the documents view.
func (v *View) View() string {
	var b strings.Builder

	name := ""
	if v.workspace != nil {
		name = v.workspace.Name
	}
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("%s (%d documents)", name, len(v.documents))))
	b.WriteString("\n\n")

	b.WriteString(v.search.View())
	b.WriteString("\n\n")

	if v.docView != nil {
		b.WriteString(v.renderDocView())
		return b.String()
	}

	if v.listState.InFlight() {
		b.WriteString(v.styles.Muted.Render("Loading documents..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.searchState.InFlight() {
		b.WriteString(v.styles.Muted.Render("Searching..."))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if len(v.documents) == 0 {
		if strings.TrimSpace(v.search.Value()) != "" {
			b.WriteString(v.styles.Muted.Render("No documents match the search."))
		} else {
			b.WriteString(v.styles.Muted.Render("No documents. Press n to upload one."))
		}
		b.WriteString("\n\n")
	} else {
		for i := range v.documents {
			b.WriteString(v.renderDocument(i))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if v.status != "" {
		b.WriteString(v.styles.Success.Render(v.status))
		b.WriteString("\n\n")
	}

	b.WriteString(v.renderDialog())
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderDocument renders a single document line.
func (v *View) renderDocument(index int) string {
	doc := &v.documents[index]

	line := fmt.Sprintf("  %s  %s", doc.Name, doc.Type)
	if index == v.selected {
		return v.styles.Selected.Render("> " + doc.Name + "  " + doc.Type)
	}
	return v.styles.Normal.Render(line)
}

// renderDocView renders the inline document representation overlay.
func (v *View) renderDocView() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(v.docView.Name))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.docView.Type))
	b.WriteString("\n\n")

	data := v.docView.Data
	const maxInline = 2048
	if len(data) > maxInline {
		data = data[:maxInline] + "..."
	}
	b.WriteString(v.styles.Normal.Render(data))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[esc] close"))
	return b.String()
}

// renderDialog renders the active dialog, if any.
func (v *View) renderDialog() string {
	switch v.activeDialog {
	case DialogUpload, DialogRename:
		if v.prompt != nil {
			return v.prompt.View() + "\n" +
				v.styles.Help.Render("[enter] confirm  [esc] cancel") + "\n\n"
		}
	case DialogDelete:
		if doc := v.SelectedDocument(); doc != nil {
			return v.styles.Warning.Render(fmt.Sprintf("Move %q to the recycle bin?", doc.Name)) + "\n" +
				v.styles.Help.Render("[y/enter] delete  [esc] cancel") + "\n\n"
		}
	}
	return ""
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	if v.searchFocused {
		return v.styles.Help.Render("[esc/enter] done typing")
	}
	return v.styles.Help.Render(
		"[/] search  [↑/↓] navigate  [enter] view  [n] upload  [r] rename  [d] delete  [D] download  [esc] back")
}

// Documents returns the currently displayed list.
func (v *View) Documents() []domain.Document {
	return v.documents
}

// SelectedDocument returns the currently selected document.
func (v *View) SelectedDocument() *domain.Document {
	if v.selected < len(v.documents) {
		return &v.documents[v.selected]
	}
	return nil
}

// ActiveDialog returns the open dialog.
func (v *View) ActiveDialog() Dialog {
	return v.activeDialog
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.search.Value()
}

// SearchFocused reports whether the search input has focus.
func (v *View) SearchFocused() bool {
	return v.searchFocused
}

// SearchState returns the state of the last search request.
func (v *View) SearchState() domain.RequestState {
	return v.searchState
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
