package rolls

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGames = `name: league night
frames: [[10], [7, 3], [9, 0]]
---
notation: X X X X X X X X X XXX
---
name: empty
frames: [[]]
`

func TestDecode(t *testing.T) {
	t.Parallel()

	games, err := Decode(strings.NewReader(sampleGames))
	require.NoError(t, err)
	require.Len(t, games, 3)

	assert.Equal(t, "league night", games[0].Name)
	rolls, err := games[0].Rolls()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{10}, {7, 3}, {9, 0}}, rolls)

	rolls, err = games[1].Rolls()
	require.NoError(t, err)
	require.Len(t, rolls, 10)
	assert.Equal(t, []int{10, 10, 10}, rolls[9])

	rolls, err = games[2].Rolls()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}}, rolls)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown field", func(t *testing.T) {
		_, err := Decode(strings.NewReader("name: a\nscore: 300\n"))
		assert.Error(t, err)
	})

	t.Run("bad roll type", func(t *testing.T) {
		_, err := Decode(strings.NewReader("frames: [[ten]]\n"))
		assert.Error(t, err)
	})

	t.Run("frames and notation", func(t *testing.T) {
		games, err := Decode(strings.NewReader("name: both\nframes: [[1]]\nnotation: X\n"))
		require.NoError(t, err)
		_, err = games[0].Rolls()
		assert.ErrorContains(t, err, "both frames and notation")
	})

	t.Run("empty input", func(t *testing.T) {
		games, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, games)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "games.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleGames), 0o600))

	games, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, "league night", games[0].Name)
	assert.Equal(t, "games.yaml#2", games[1].Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
