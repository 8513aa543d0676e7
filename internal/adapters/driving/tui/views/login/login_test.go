package login

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docshelf-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docshelf-cli/internal/core/domain"
)

// mockSessionService is a test double for the session service.
type mockSessionService struct {
	session    domain.Session
	loginErr   error
	loginCalls int
	lastCreds  domain.Credentials
}

func (m *mockSessionService) Register(_ context.Context, _ domain.Registration) error {
	return nil
}

func (m *mockSessionService) Login(_ context.Context, creds domain.Credentials) (domain.Session, error) {
	m.loginCalls++
	m.lastCreds = creds
	return m.session, m.loginErr
}

func (m *mockSessionService) Logout(_ context.Context) error { return nil }

func (m *mockSessionService) Current(_ context.Context) (domain.Session, error) {
	return m.session, nil
}

func (m *mockSessionService) UpdateName(_ context.Context, _ string) (string, error) {
	return "", nil
}

func typeString(v *View, s string) *View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}

func TestView_SubmitWithValidCredentials(t *testing.T) {
	svc := &mockSessionService{session: domain.Session{Token: "tok-abc"}}
	v := NewView(nil, svc)

	v = typeString(v, "sara@example.com")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter}) // move to password
	v = typeString(v, "secret1")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, domain.RequestLoading, v.State())

	msg := cmd()
	loggedIn, ok := msg.(messages.LoggedIn)
	require.True(t, ok)
	assert.NoError(t, loggedIn.Err)
	assert.Equal(t, "tok-abc", loggedIn.Session.Token)
	assert.Equal(t, "sara@example.com", svc.lastCreds.Email)
	assert.Equal(t, "secret1", svc.lastCreds.Password)
}

func TestView_InvalidEmailFailsLocally(t *testing.T) {
	svc := &mockSessionService{}
	v := NewView(nil, svc)

	v = typeString(v, "not-an-email")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v = typeString(v, "secret1")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd, "invalid credentials never reach the network")
	assert.Equal(t, domain.RequestFailed, v.State())
	assert.ErrorIs(t, v.Err(), domain.ErrInvalidInput)
	assert.Zero(t, svc.loginCalls)
}

func TestView_TabSwitchesFocus(t *testing.T) {
	v := NewView(nil, &mockSessionService{})
	require.Equal(t, fieldEmail, v.focused)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldPassword, v.focused)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldEmail, v.focused)
}

func TestView_LoginFailureShown(t *testing.T) {
	v := NewView(nil, &mockSessionService{})

	v, _ = v.Update(messages.LoggedIn{Err: errors.New("wrong password")})

	assert.Equal(t, domain.RequestFailed, v.State())
	assert.Contains(t, v.View(), "wrong password")
}

func TestView_LoginSuccessClearsError(t *testing.T) {
	v := NewView(nil, &mockSessionService{})

	v, _ = v.Update(messages.LoggedIn{Err: errors.New("wrong password")})
	v, _ = v.Update(messages.LoggedIn{Session: domain.Session{Token: "tok"}})

	assert.Equal(t, domain.RequestSucceeded, v.State())
	assert.NoError(t, v.Err())
}

func TestView_Reset(t *testing.T) {
	v := NewView(nil, &mockSessionService{})

	v = typeString(v, "sara@example.com")
	v, _ = v.Update(messages.LoggedIn{Err: errors.New("wrong password")})

	v.Reset()

	assert.Equal(t, domain.RequestIdle, v.State())
	assert.NoError(t, v.Err())
	assert.Equal(t, fieldEmail, v.focused)
}

func TestView_RendersTitleAndHelp(t *testing.T) {
	v := NewView(nil, &mockSessionService{})

	output := v.View()

	assert.Contains(t, output, "Docshelf")
	assert.Contains(t, output, "[tab] switch field")
}
