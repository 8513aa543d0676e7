package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSearchInput_TypingUpdatesValue(t *testing.T) {
	s := NewSearchInput(nil)
	s.Focus()

	for _, r := range "report" {
		s, _ = s.Update(runeKey(r))
	}

	assert.Equal(t, "report", s.Value())
}

func TestSearchInput_IgnoresKeysWhenBlurred(t *testing.T) {
	s := NewSearchInput(nil)

	s, _ = s.Update(runeKey('r'))

	assert.Empty(t, s.Value())
}

func TestSearchInput_FocusAndBlur(t *testing.T) {
	s := NewSearchInput(nil)
	require.False(t, s.Focused())

	s.Focus()
	assert.True(t, s.Focused())

	s.Blur()
	assert.False(t, s.Focused())
}

func TestSearchInput_Reset(t *testing.T) {
	s := NewSearchInput(nil)
	s.SetValue("report")

	s.Reset()

	assert.Empty(t, s.Value())
}

func TestSearchInput_SetWidthClampsToMinimum(t *testing.T) {
	s := NewSearchInput(nil)

	s.SetWidth(12)

	assert.Equal(t, 12, s.Width())
	assert.Equal(t, 20, s.textinput.Width)
}

func TestSearchInput_ViewContainsLabel(t *testing.T) {
	s := NewSearchInput(nil)

	assert.Contains(t, s.View(), "Search:")
}

func TestPrompt_PrefilledValue(t *testing.T) {
	p := NewPrompt(nil, "Workspace name", "")
	p.SetValue("Invoices")

	p, _ = p.Update(runeKey('2'))

	assert.Equal(t, "Invoices2", p.Value())
}

func TestPrompt_FocusedOnCreation(t *testing.T) {
	p := NewPrompt(nil, "Workspace name", "")

	p, _ = p.Update(runeKey('a'))

	assert.Equal(t, "a", p.Value())
}

func TestPrompt_ViewContainsLabel(t *testing.T) {
	p := NewPrompt(nil, "Display name", "")

	assert.Contains(t, p.View(), "Display name:")
}
