package workspaces

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

// mockWorkspaceService is a test double for the workspace service.
type mockWorkspaceService struct {
	workspaces []domain.Workspace
	listErr    error
	listCalls  int
	createErr  error
	renamedID  string
	deletedID  string
}

func (m *mockWorkspaceService) List(_ context.Context) ([]domain.Workspace, error) {
	m.listCalls++
	return m.workspaces, m.listErr
}

func (m *mockWorkspaceService) Workspaces() []domain.Workspace {
	return m.workspaces
}

func (m *mockWorkspaceService) Create(_ context.Context, name string) (*domain.Workspace, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	ws := domain.Workspace{ID: "ws-new", Name: name}
	m.workspaces = append(m.workspaces, ws)
	return &ws, nil
}

func (m *mockWorkspaceService) Rename(_ context.Context, id, name string) error {
	m.renamedID = id
	for i := range m.workspaces {
		if m.workspaces[i].ID == id {
			m.workspaces[i].Name = name
		}
	}
	return nil
}

func (m *mockWorkspaceService) Delete(_ context.Context, id string) error {
	m.deletedID = id
	out := m.workspaces[:0]
	for _, ws := range m.workspaces {
		if ws.ID != id {
			out = append(out, ws)
		}
	}
	m.workspaces = out
	return nil
}

func twoWorkspaces() []domain.Workspace {
	return []domain.Workspace{
		{ID: "ws-1", Name: "Invoices"},
		{ID: "ws-2", Name: "Contracts"},
	}
}

func newLoadedView(t *testing.T, svc *mockWorkspaceService) *View {
	t.Helper()

	v := NewView(nil, nil, svc)
	cmd := v.Load()
	require.NotNil(t, cmd)

	loaded, ok := cmd().(messages.WorkspacesLoaded)
	require.True(t, ok)

	v, _ = v.Update(loaded)
	return v
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_Load(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	assert.Len(t, v.Workspaces(), 2)
	assert.Equal(t, domain.RequestSucceeded, v.State())
}

func TestView_Load_Error(t *testing.T) {
	svc := &mockWorkspaceService{listErr: errors.New("server unavailable")}
	v := newLoadedView(t, svc)

	assert.Equal(t, domain.RequestFailed, v.State())
	assert.Error(t, v.Err())
}

func TestView_Navigation(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)
	require.Equal(t, "ws-1", v.SelectedWorkspace().ID)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "ws-2", v.SelectedWorkspace().ID)

	// Down at the bottom stays put.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "ws-2", v.SelectedWorkspace().ID)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "ws-1", v.SelectedWorkspace().ID)
}

func TestView_EnterSelectsWorkspace(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	selected, ok := cmd().(messages.WorkspaceSelected)
	require.True(t, ok)
	assert.Equal(t, "ws-1", selected.Workspace.ID)
}

func TestView_CreateDialog(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	v, _ = v.Update(runeKey('n'))
	require.Equal(t, DialogCreate, v.ActiveDialog())

	for _, r := range "Receipts" {
		v, _ = v.Update(runeKey(r))
	}
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	created, ok := cmd().(messages.WorkspaceCreated)
	require.True(t, ok)
	require.NoError(t, created.Err)
	assert.Equal(t, "Receipts", created.Workspace.Name)

	// The mutation patched the service's local list; the view re-reads it
	// without a refetch.
	v, _ = v.Update(created)
	assert.Len(t, v.Workspaces(), 3)
	assert.Equal(t, 1, svc.listCalls, "mutations must not refetch")
}

func TestView_CreateDialog_EscapeCancels(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	v, _ = v.Update(runeKey('n'))
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, DialogNone, v.ActiveDialog())
}

func TestView_RenameDialog(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	v, _ = v.Update(runeKey('r'))
	require.Equal(t, DialogRename, v.ActiveDialog())

	// Prefilled with the current name; append a suffix.
	v, _ = v.Update(runeKey('2'))
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	renamed, ok := cmd().(messages.WorkspaceRenamed)
	require.True(t, ok)
	assert.Equal(t, "ws-1", renamed.ID)
	assert.Equal(t, "Invoices2", renamed.Name)

	v, _ = v.Update(renamed)
	assert.Equal(t, "Invoices2", v.Workspaces()[0].Name)
}

func TestView_RenameDialog_UnchangedNameIsNoop(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	v, _ = v.Update(runeKey('r'))
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, svc.renamedID)
}

func TestView_DeleteDialog_ConfirmWithY(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	v, _ = v.Update(runeKey('d'))
	require.Equal(t, DialogDelete, v.ActiveDialog())

	v, cmd := v.Update(runeKey('y'))
	require.NotNil(t, cmd)

	deleted, ok := cmd().(messages.WorkspaceDeleted)
	require.True(t, ok)
	assert.Equal(t, "ws-1", deleted.ID)

	v, _ = v.Update(deleted)
	require.Len(t, v.Workspaces(), 1)
	assert.Equal(t, "ws-2", v.Workspaces()[0].ID)
}

func TestView_DeleteDialog_OtherKeyCancels(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	v, _ = v.Update(runeKey('d'))
	v, cmd := v.Update(runeKey('x'))

	assert.Nil(t, cmd)
	assert.Equal(t, DialogNone, v.ActiveDialog())
	assert.Empty(t, svc.deletedID)
}

func TestView_OnlyOneDialogAtATime(t *testing.T) {
	svc := &mockWorkspaceService{workspaces: twoWorkspaces()}
	v := newLoadedView(t, svc)

	v, _ = v.Update(runeKey('n'))
	require.Equal(t, DialogCreate, v.ActiveDialog())

	// While the create prompt is open, "d" types into the prompt.
	v, _ = v.Update(runeKey('d'))

	assert.Equal(t, DialogCreate, v.ActiveDialog())
}

func TestView_RendersEmptyState(t *testing.T) {
	svc := &mockWorkspaceService{}
	v := newLoadedView(t, svc)

	assert.Contains(t, v.View(), "No workspaces yet.")
}
