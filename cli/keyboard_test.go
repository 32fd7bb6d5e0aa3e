package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyReader_LineFallback(t *testing.T) {
	k := newKeyReader(strings.NewReader("Cabc\nA\n"))
	assert.Nil(t, k.tty)

	// the rest of the first line is discarded with its key
	assert.Equal(t, 'C', k.ReadKey())
	assert.Equal(t, 'A', k.ReadKey())
	assert.Equal(t, rune(0), k.ReadKey())
}

func TestKeyReader_PauseConsumesOneLine(t *testing.T) {
	k := newKeyReader(strings.NewReader("C\n\nA\n"))
	assert.Equal(t, 'C', k.ReadKey())
	k.Pause()
	assert.Equal(t, 'A', k.ReadKey())

	// EOF ends the pause at once
	k.Pause()
}

func TestKeyReader_PipeIsNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	k := newKeyReader(r)
	assert.Nil(t, k.tty)

	_, err = w.WriteString("C\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, 'C', k.ReadKey())
	assert.Equal(t, rune(0), k.ReadKey())
}
