package input

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

// MakeRaw puts stdin into raw mode and returns a function restoring it
func MakeRaw() (func(), error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { term.Restore(fd, oldState) }, nil
}

// ReadCode reads one key from a raw-mode terminal stream and returns its code.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; a lone ESC is "escape".
// Returns "" for bytes that map to no code.
func ReadCode(r *bufio.Reader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b1 {
	case 0x1b:
		if r.Buffered() == 0 {
			return "escape", nil
		}
		b2, err := r.ReadByte()
		if err != nil {
			return "escape", nil
		}
		if b2 != '[' && b2 != 'O' {
			return "", nil
		}
		b3, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		switch b3 {
		case 'A':
			return "arrow_up", nil
		case 'B':
			return "arrow_down", nil
		case 'C':
			return "arrow_right", nil
		case 'D':
			return "arrow_left", nil
		}
		// Unknown escape sequence - discard it
		return "", nil
	case 3:
		return "ctrl_c", nil
	case '\r', '\n':
		return "enter", nil
	case ' ':
		return "space", nil
	}

	if b1 < utf8.RuneSelf {
		if b1 >= 32 && b1 < 127 {
			return string(rune(b1)), nil
		}
		return "", nil
	}

	// Multi-byte rune (e.g. Cyrillic layout keys)
	if err := r.UnreadByte(); err != nil {
		return "", err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return "", err
	}
	if ch == utf8.RuneError {
		return "", nil
	}
	return string(ch), nil
}

// ReadTerminal reads key codes from src until ctx is cancelled or the stream
// ends, sending each as a RawInput. The terminal cannot report key-up, so every
// event is a press.
func ReadTerminal(ctx context.Context, src io.Reader, out chan<- RawInput) error {
	r := bufio.NewReader(src)
	for {
		code, err := ReadCode(r)
		if err != nil {
			return err
		}
		if code == "" {
			continue
		}
		select {
		case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
