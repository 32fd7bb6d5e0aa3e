package cli

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// keyReader reads single keys from the command input.
// On a terminal it switches to raw mode for each key so no Enter is needed;
// otherwise it reads line by line.
type keyReader struct {
	buf *bufio.Reader
	tty *os.File
}

func newKeyReader(r io.Reader) *keyReader {
	k := &keyReader{buf: bufio.NewReader(r)}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		k.tty = f
	}
	return k
}

// ReadKey returns the next key. Absent input is reported as the zero rune.
func (k *keyReader) ReadKey() rune {
	if k.tty != nil {
		if r, ok := k.readRaw(); ok {
			return r
		}
	}
	r, _, err := k.buf.ReadRune()
	if err != nil {
		return 0
	}
	// the rest of the line belongs to this key
	if r != '\n' {
		_, _ = k.buf.ReadString('\n')
	}
	return r
}

// Pause blocks until one more key, or EOF.
func (k *keyReader) Pause() {
	if k.tty != nil {
		if _, ok := k.readRaw(); ok {
			return
		}
	}
	_, _ = k.buf.ReadString('\n')
}

// readRaw reads one rune with the terminal in raw mode. ok is false when raw
// mode could not be entered, and the caller falls back to line reads.
func (k *keyReader) readRaw() (rune, bool) {
	fd := int(k.tty.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, false
	}
	defer term.Restore(fd, state)

	r, _, err := k.buf.ReadRune()
	if err != nil {
		return 0, true
	}
	return r, true
}
