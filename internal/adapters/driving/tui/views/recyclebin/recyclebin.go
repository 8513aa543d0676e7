// Package recyclebin provides the recycle bin view component for the TUI.
//
// The bin keeps no local cache: the service re-lists after every restore
// or permanent delete and the view renders whatever came back.
package recyclebin

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driving"
)

// pendingAction is a bin mutation awaiting confirmation.
type pendingAction int

const (
	actionNone pendingAction = iota
	actionRestore
	actionPurge
)

// View is the recycle bin view.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	binService driving.RecycleBinService
	ctx        context.Context

	documents []domain.Document
	selected  int
	pending   pendingAction

	state domain.RequestState
	err   error

	width  int
	height int
}

// NewView creates a new recycle bin view.
func NewView(s *styles.Styles, km *keymap.KeyMap, binService driving.RecycleBinService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		binService: binService,
		ctx:        context.Background(),
		documents:  []domain.Document{},
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

// Load returns a command that fetches the bin contents. The bin is always
// refetched on entry; it never renders stale local state.
func (v *View) Load() tea.Cmd {
	v.state = domain.RequestLoading
	v.pending = actionNone
	return func() tea.Msg {
		docs, err := v.binService.List(v.ctx)
		return messages.BinLoaded{Documents: docs, Err: err}
	}
}

// Update handles messages for the recycle bin view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.BinLoaded:
		if msg.Err != nil {
			v.state = domain.RequestFailed
			v.err = msg.Err
			return v, nil
		}
		v.state = domain.RequestSucceeded
		v.err = nil
		v.documents = msg.Documents
		if v.selected >= len(v.documents) && v.selected > 0 {
			v.selected = len(v.documents) - 1
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.pending != actionNone {
		return v.handleConfirmKeyMsg(msg)
	}

	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.documents)-1 {
			v.selected++
		}

	case keymap.Matches(keyStr, v.keymap.Restore):
		if v.SelectedDocument() != nil {
			v.pending = actionRestore
		}

	case keymap.Matches(keyStr, v.keymap.Delete):
		if v.SelectedDocument() != nil {
			v.pending = actionPurge
		}

	case keymap.Matches(keyStr, v.keymap.Reload):
		return v, v.Load()

	case keymap.Matches(keyStr, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewWorkspaces}
		}
	}

	return v, nil
}

// handleConfirmKeyMsg handles the confirmation prompt.
func (v *View) handleConfirmKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	confirmed := msg.Type == tea.KeyEnter || msg.String() == "y"
	action := v.pending
	v.pending = actionNone

	if !confirmed {
		return v, nil
	}

	doc := v.SelectedDocument()
	if doc == nil {
		return v, nil
	}
	id := doc.ID
	v.state = domain.RequestLoading

	switch action {
	case actionRestore:
		return v, func() tea.Msg {
			docs, err := v.binService.Restore(v.ctx, id)
			return messages.BinLoaded{Documents: docs, Err: err}
		}
	case actionPurge:
		return v, func() tea.Msg {
			docs, err := v.binService.PermanentDelete(v.ctx, id)
			return messages.BinLoaded{Documents: docs, Err: err}
		}
	}

	return v, nil
}

// View renders the recycle bin view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Recycle Bin (%d)", len(v.documents))))
	b.WriteString("\n\n")

	if v.state.InFlight() {
		b.WriteString(v.styles.Muted.Render("Loading recycle bin..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("Recycle bin is empty."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.documents {
		line := fmt.Sprintf("  %s  %s", v.documents[i].Name, v.documents[i].Type)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + v.documents[i].Name + "  " + v.documents[i].Type))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderConfirm())
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderConfirm renders the pending confirmation prompt, if any.
func (v *View) renderConfirm() string {
	doc := v.SelectedDocument()
	if doc == nil {
		return ""
	}

	switch v.pending {
	case actionRestore:
		return v.styles.Warning.Render(fmt.Sprintf("Restore %q to its workspace?", doc.Name)) + "\n" +
			v.styles.Help.Render("[y/enter] restore  [esc] cancel") + "\n\n"
	case actionPurge:
		return v.styles.Warning.Render(fmt.Sprintf("Permanently delete %q? This cannot be undone.", doc.Name)) + "\n" +
			v.styles.Help.Render("[y/enter] delete  [esc] cancel") + "\n\n"
	}
	return ""
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [u] restore  [d] delete forever  [R] reload  [esc] back")
}

// Documents returns the current bin contents.
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

// State returns the current request state.
func (v *View) State() domain.RequestState {
	return v.state
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
