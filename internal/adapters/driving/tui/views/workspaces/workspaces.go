// Package workspaces provides the workspace list view component for the TUI.
package workspaces

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/components/input"
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
	DialogCreate
	DialogRename
	DialogDelete
)

// View is the workspace list view.
type View struct {
	styles           *styles.Styles
	keymap           *keymap.KeyMap
	workspaceService driving.WorkspaceService
	ctx              context.Context

	workspaces []domain.Workspace
	selected   int

	activeDialog Dialog
	prompt       *input.Prompt

	state domain.RequestState
	err   error

	width  int
	height int
}

// NewView creates a new workspaces view.
func NewView(s *styles.Styles, km *keymap.KeyMap, workspaceService driving.WorkspaceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:           s,
		keymap:           km,
		workspaceService: workspaceService,
		ctx:              context.Background(),
		workspaces:       []domain.Workspace{},
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

// Load returns a command that fetches the workspaces.
func (v *View) Load() tea.Cmd {
	v.state = domain.RequestLoading
	return func() tea.Msg {
		workspaces, err := v.workspaceService.List(v.ctx)
		return messages.WorkspacesLoaded{Workspaces: workspaces, Err: err}
	}
}

// Update handles messages for the workspaces view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.activeDialog != DialogNone {
			return v.handleDialogKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.WorkspacesLoaded:
		if msg.Err != nil {
			v.state = domain.RequestFailed
			v.err = msg.Err
			return v, nil
		}
		v.state = domain.RequestSucceeded
		v.err = nil
		v.workspaces = msg.Workspaces
		if v.selected >= len(v.workspaces) {
			v.selected = 0
		}
		return v, nil

	case messages.WorkspaceCreated:
		return v.afterMutation(msg.Err)

	case messages.WorkspaceRenamed:
		return v.afterMutation(msg.Err)

	case messages.WorkspaceDeleted:
		return v.afterMutation(msg.Err)
	}

	return v, nil
}

// afterMutation refreshes the local list from the service after a mutation.
// The service already patched its list, so no refetch happens.
func (v *View) afterMutation(err error) (*View, tea.Cmd) {
	if err != nil {
		v.state = domain.RequestFailed
		v.err = err
		return v, nil
	}
	v.state = domain.RequestSucceeded
	v.err = nil
	v.workspaces = v.workspaceService.Workspaces()
	if v.selected >= len(v.workspaces) && v.selected > 0 {
		v.selected = len(v.workspaces) - 1
	}
	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.workspaces)-1 {
			v.selected++
		}

	case keymap.Matches(keyStr, v.keymap.Select):
		if ws := v.SelectedWorkspace(); ws != nil {
			selected := *ws
			return v, func() tea.Msg {
				return messages.WorkspaceSelected{Workspace: selected}
			}
		}

	case keymap.Matches(keyStr, v.keymap.New):
		v.activeDialog = DialogCreate
		v.prompt = input.NewPrompt(v.styles, "Workspace name", "")

	case keymap.Matches(keyStr, v.keymap.Rename):
		if ws := v.SelectedWorkspace(); ws != nil {
			v.activeDialog = DialogRename
			v.prompt = input.NewPrompt(v.styles, "New name", "")
			v.prompt.SetValue(ws.Name)
		}

	case keymap.Matches(keyStr, v.keymap.Delete):
		if v.SelectedWorkspace() != nil {
			v.activeDialog = DialogDelete
		}

	case keymap.Matches(keyStr, v.keymap.Reload):
		return v, v.Load()
	}

	return v, nil
}

// handleDialogKeyMsg handles key presses while a dialog is open.
func (v *View) handleDialogKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.closeDialog()
		return v, nil

	case tea.KeyEnter:
		return v.confirmDialog()
	}

	if v.activeDialog == DialogDelete {
		// Delete confirms with y, anything else cancels.
		if msg.String() == "y" {
			return v.confirmDialog()
		}
		v.closeDialog()
		return v, nil
	}

	var cmd tea.Cmd
	v.prompt, cmd = v.prompt.Update(msg)
	return v, cmd
}

// confirmDialog executes the open dialog's action.
func (v *View) confirmDialog() (*View, tea.Cmd) {
	dialog := v.activeDialog
	v.closeDialog()

	switch dialog {
	case DialogCreate:
		name := strings.TrimSpace(v.promptValue())
		if name == "" {
			return v, nil
		}
		v.state = domain.RequestLoading
		return v, func() tea.Msg {
			ws, err := v.workspaceService.Create(v.ctx, name)
			return messages.WorkspaceCreated{Workspace: ws, Err: err}
		}

	case DialogRename:
		ws := v.SelectedWorkspace()
		name := strings.TrimSpace(v.promptValue())
		if ws == nil || name == "" || name == ws.Name {
			return v, nil
		}
		id := ws.ID
		v.state = domain.RequestLoading
		return v, func() tea.Msg {
			err := v.workspaceService.Rename(v.ctx, id, name)
			return messages.WorkspaceRenamed{ID: id, Name: name, Err: err}
		}

	case DialogDelete:
		ws := v.SelectedWorkspace()
		if ws == nil {
			return v, nil
		}
		id := ws.ID
		v.state = domain.RequestLoading
		return v, func() tea.Msg {
			err := v.workspaceService.Delete(v.ctx, id)
			return messages.WorkspaceDeleted{ID: id, Err: err}
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

// closeDialog dismisses the active dialog.
func (v *View) closeDialog() {
	v.activeDialog = DialogNone
}

// View renders the workspaces view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Workspaces (%d)", len(v.workspaces))))
	b.WriteString("\n\n")

	if v.state.InFlight() {
		b.WriteString(v.styles.Muted.Render("Loading workspaces..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if len(v.workspaces) == 0 {
		b.WriteString(v.styles.Muted.Render("No workspaces yet. Press n to create one."))
		b.WriteString("\n\n")
		b.WriteString(v.renderDialog())
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.workspaces {
		indicator := "  "
		line := fmt.Sprintf("%s%s", indicator, v.workspaces[i].Name)
		if i == v.selected {
			line = "> " + v.workspaces[i].Name
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderDialog())
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderDialog renders the active dialog, if any.
func (v *View) renderDialog() string {
	switch v.activeDialog {
	case DialogCreate, DialogRename:
		if v.prompt != nil {
			return v.prompt.View() + "\n" +
				v.styles.Help.Render("[enter] confirm  [esc] cancel") + "\n\n"
		}
	case DialogDelete:
		if ws := v.SelectedWorkspace(); ws != nil {
			return v.styles.Warning.Render(fmt.Sprintf("Delete workspace %q?", ws.Name)) + "\n" +
				v.styles.Help.Render("[y/enter] delete  [esc] cancel") + "\n\n"
		}
	}
	return ""
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render(
		"[↑/↓] navigate  [enter] open  [n] new  [r] rename  [d] delete  [b] bin  [p] profile  [q] quit")
}

// Workspaces returns the current workspace list.
func (v *View) Workspaces() []domain.Workspace {
	return v.workspaces
}

// SelectedWorkspace returns the currently selected workspace.
func (v *View) SelectedWorkspace() *domain.Workspace {
	if v.selected < len(v.workspaces) {
		return &v.workspaces[v.selected]
	}
	return nil
}

// ActiveDialog returns the open dialog.
func (v *View) ActiveDialog() Dialog {
	return v.activeDialog
}

// State returns the current request state.
func (v *View) State() domain.RequestState {
	return v.state
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
