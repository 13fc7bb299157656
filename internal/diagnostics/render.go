package diagnostics

import (
	"fmt"
	"io"
	"strings"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Render writes the diagnostic message followed by the source line and a
// caret run under the span:
//
//	division by zero
//	(/ 3 0)
//	^^^^^^^
func Render(w io.Writer, source string, d *DiagnosticError, color bool) {
	msg := d.Message
	if color {
		msg = ansiRed + msg + ansiReset
	}
	fmt.Fprintln(w, msg)
	if d.Code == ErrInternal {
		return
	}
	line, offset := lineAt(source, d.Span.Start)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, Caret(d.Span.Start-offset, d.Span.Len()))
}

// Caret returns col spaces followed by n carets (at least one).
func Caret(col, n int) string {
	if col < 0 {
		col = 0
	}
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", col) + strings.Repeat("^", n)
}

// lineAt returns the line of source containing byte offset pos together
// with the offset of that line's first byte.
func lineAt(source string, pos int) (string, int) {
	if pos > len(source) {
		pos = len(source)
	}
	if pos < 0 {
		pos = 0
	}
	start := strings.LastIndexByte(source[:pos], '\n') + 1
	end := strings.IndexByte(source[start:], '\n')
	if end < 0 {
		return source[start:], start
	}
	return source[start : start+end], start
}
