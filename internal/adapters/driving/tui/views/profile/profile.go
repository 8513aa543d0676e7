// Package profile provides the profile view component for the TUI.
package profile

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
	"github.com/custodia-labs/docshelf-cli/internal/core/ports/driving"
)

// View is the profile view. It shows the logged-in user and lets them
// change their display name.
type View struct {
	styles         *styles.Styles
	sessionService driving.SessionService
	ctx            context.Context

	session domain.Session
	editing bool
	prompt  *input.Prompt

	state   domain.RequestState
	message string
	err     error

	width  int
	height int
}

// NewView creates a new profile view.
func NewView(s *styles.Styles, sessionService driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		sessionService: sessionService,
		ctx:            context.Background(),
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

// Refresh pulls the current session into the view.
func (v *View) Refresh() {
	session, err := v.sessionService.Current(v.ctx)
	if err != nil {
		v.err = err
		return
	}
	v.session = session
	v.err = nil
	v.message = ""
	v.editing = false
}

// Update handles messages for the profile view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.NameUpdated:
		if msg.Err != nil {
			v.state = domain.RequestFailed
			v.err = msg.Err
			return v, nil
		}
		v.state = domain.RequestSucceeded
		v.err = nil
		v.session.User.Name = msg.Name
		v.message = msg.Message
		if v.message == "" {
			v.message = "Name updated."
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.editing {
		switch msg.Type {
		case tea.KeyEsc:
			v.editing = false
			return v, nil
		case tea.KeyEnter:
			v.editing = false
			name := strings.TrimSpace(v.prompt.Value())
			if name == "" || name == v.session.User.Name {
				return v, nil
			}
			v.state = domain.RequestLoading
			return v, func() tea.Msg {
				message, err := v.sessionService.UpdateName(v.ctx, name)
				return messages.NameUpdated{Name: name, Message: message, Err: err}
			}
		}

		var cmd tea.Cmd
		v.prompt, cmd = v.prompt.Update(msg)
		return v, cmd
	}

	switch msg.String() {
	case "r":
		v.editing = true
		v.prompt = input.NewPrompt(v.styles, "Display name", "")
		v.prompt.SetValue(v.session.User.Name)
		return v, nil
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewWorkspaces}
		}
	}

	return v, nil
}

// View renders the profile view.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render("Profile"),
		"",
		v.styles.Normal.Render("Name:  " + v.session.User.Name),
		v.styles.Normal.Render("Email: " + v.session.User.Email),
		v.styles.Muted.Render("NID:   " + v.session.User.NID),
		"",
	}

	if v.editing && v.prompt != nil {
		sections = append(sections,
			v.prompt.View(),
			v.styles.Help.Render("[enter] save  [esc] cancel"),
			"")
	}

	if v.state.InFlight() {
		sections = append(sections, v.styles.Muted.Render("Saving..."), "")
	}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	if v.message != "" {
		sections = append(sections, v.styles.Success.Render(v.message), "")
	}

	sections = append(sections, v.styles.Help.Render("[r] rename  [esc] back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Session returns the session rendered by the view.
func (v *View) Session() domain.Session {
	return v.session
}

// Editing reports whether the rename prompt is open.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
