// Package term reports whether output streams are attached to a terminal.
package term

import (
	"io"
	"os"
)

// fdWriter is satisfied by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is a terminal device.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	if file, isFile := w.(*os.File); isFile && file == nil {
		return false
	}
	return isTerminalFd(f.Fd())
}
