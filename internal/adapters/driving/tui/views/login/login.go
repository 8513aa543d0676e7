// Package login provides the login view component for the TUI.
package login

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

// field identifies which input currently has focus.
type field int

const (
	fieldEmail field = iota
	fieldPassword
)

// View is the login view.
type View struct {
	styles         *styles.Styles
	sessionService driving.SessionService
	ctx            context.Context

	email    *input.Prompt
	password *input.Prompt
	focused  field

	state domain.RequestState
	err   error

	width  int
	height int
}

// NewView creates a new login view.
func NewView(s *styles.Styles, sessionService driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	email := input.NewPrompt(s, "Email", "you@example.com")
	password := input.NewPrompt(s, "Password", "")
	password.EchoPassword()

	return &View{
		styles:         s,
		sessionService: sessionService,
		ctx:            context.Background(),
		email:          email,
		password:       password,
		focused:        fieldEmail,
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

// Update handles messages for the login view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LoggedIn:
		if msg.Err != nil {
			v.state = domain.RequestFailed
			v.err = msg.Err
			return v, nil
		}
		v.state = domain.RequestSucceeded
		v.err = nil
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		if v.focused == fieldEmail {
			v.focused = fieldPassword
		} else {
			v.focused = fieldEmail
		}
		return v, nil

	case tea.KeyEnter:
		if v.focused == fieldEmail {
			v.focused = fieldPassword
			return v, nil
		}
		return v, v.submit()
	}

	var cmd tea.Cmd
	if v.focused == fieldEmail {
		v.email, cmd = v.email.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

// submit returns a command that attempts the login.
func (v *View) submit() tea.Cmd {
	creds := domain.Credentials{
		Email:    strings.TrimSpace(v.email.Value()),
		Password: v.password.Value(),
	}
	if err := creds.Validate(); err != nil {
		v.state = domain.RequestFailed
		v.err = err
		return nil
	}

	v.state = domain.RequestLoading
	v.err = nil

	return func() tea.Msg {
		session, err := v.sessionService.Login(v.ctx, creds)
		return messages.LoggedIn{Session: session, Err: err}
	}
}

// View renders the login view.
func (v *View) View() string {
	sections := []string{
		v.styles.Title.Render("Docshelf"),
		"",
		v.email.View(),
		"",
		v.password.View(),
		"",
	}

	switch v.state {
	case domain.RequestLoading:
		sections = append(sections, v.styles.Muted.Render("Logging in..."))
	case domain.RequestFailed:
		if v.err != nil {
			sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
		}
	}

	sections = append(sections, "",
		v.styles.Help.Render("[tab] switch field  [enter] log in  [ctrl+c] quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// State returns the current request state.
func (v *View) State() domain.RequestState {
	return v.state
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Reset clears the inputs and state.
func (v *View) Reset() {
	v.email.SetValue("")
	v.password.SetValue("")
	v.focused = fieldEmail
	v.state = domain.RequestIdle
	v.err = nil
}
