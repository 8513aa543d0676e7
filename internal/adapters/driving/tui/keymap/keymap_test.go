package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	assert.Equal(t, []string{"q", "ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, []string{"esc"}, km.Back.Keys())
	assert.Equal(t, []string{"up", "k"}, km.Up.Keys())
	assert.Equal(t, []string{"down", "j"}, km.Down.Keys())
	assert.Equal(t, []string{"enter"}, km.Select.Keys())
	assert.Equal(t, []string{"/"}, km.Search.Keys())
	assert.Equal(t, []string{"n"}, km.New.Keys())
	assert.Equal(t, []string{"r"}, km.Rename.Keys())
	assert.Equal(t, []string{"d"}, km.Delete.Keys())
	assert.Equal(t, []string{"u"}, km.Restore.Keys())
	assert.Equal(t, []string{"D"}, km.Download.Keys())
	assert.Equal(t, []string{"R"}, km.Reload.Keys())
	assert.Equal(t, []string{"b"}, km.Bin.Keys())
	assert.Equal(t, []string{"p"}, km.Profile.Keys())
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("x", km.Quit))
}

func TestMatches_CaseSensitive(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("d", km.Delete))
	assert.False(t, Matches("D", km.Delete))
	assert.True(t, Matches("D", km.Download))
}
