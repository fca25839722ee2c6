package tqdm

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used whenever the terminal width cannot be determined.
const DefaultWidth = 80

// WidthProvider reports the current terminal width in cells.
type WidthProvider interface {
	Width() (int, error)
}

// WidthFunc adapts a function to WidthProvider.
type WidthFunc func() (int, error)

// Width calls f.
func (f WidthFunc) Width() (int, error) { return f() }

// FixedWidth always reports the same width.
type FixedWidth int

// Width returns w.
func (w FixedWidth) Width() (int, error) { return int(w), nil }

// TerminalWidth queries the terminal attached to a file descriptor.
// A positive integer in $COLUMNS takes precedence over the query.
type TerminalWidth struct {
	fd int
}

// NewTerminalWidth returns a TerminalWidth for f.
func NewTerminalWidth(f *os.File) TerminalWidth {
	return TerminalWidth{fd: int(f.Fd())}
}

// Width returns $COLUMNS when set, otherwise the current terminal width.
// It fails with ErrNotTerminal when the descriptor is not a terminal.
func (t TerminalWidth) Width() (int, error) {
	if w, ok := columnsFromEnv(); ok {
		return w, nil
	}
	if !term.IsTerminal(t.fd) {
		return 0, ErrNotTerminal
	}
	w, _, err := term.GetSize(t.fd)
	if err != nil {
		return 0, fmt.Errorf("tqdm: query terminal size: %w", err)
	}
	return w, nil
}

// TerminalWidthFor picks a provider for w: the terminal behind it when w
// is a file, otherwise only $COLUMNS.
func TerminalWidthFor(w io.Writer) WidthProvider {
	if f, ok := w.(*os.File); ok {
		return NewTerminalWidth(f)
	}
	return WidthFunc(func() (int, error) {
		if cols, ok := columnsFromEnv(); ok {
			return cols, nil
		}
		return 0, ErrNotTerminal
	})
}

func columnsFromEnv() (int, bool) {
	v, ok := os.LookupEnv("COLUMNS")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
