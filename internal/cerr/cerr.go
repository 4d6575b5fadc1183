// Package cerr implements the compilation_error list of spec §3.4/§7: a
// singly linked, prepend-ordered list of diagnostics with a critical flag
// that aborts the pipeline, and an end-user rendering style grounded on
// pkgs/parser/errors.go's style (one line per error, file:line:col:
// message, with a caret indicator under the offending column).
package cerr

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/goatlang/internal/message"
	"github.com/aledsdavies/goatlang/internal/srcpos"
)

// Error is one compilation diagnostic. Message is already fully formatted
// (the message.Provider has been applied by the caller that built it) —
// the list itself carries no knowledge of localization.
type Error struct {
	Begin    srcpos.Full
	End      srcpos.Short
	Message  string
	Critical bool

	next *Error
}

// List is a singly linked, prepend-ordered collection of errors: the most
// recently added error is List.first, matching spec §3.4's "new errors are
// added to the front" rule so that callers who stop at the first critical
// error still see it as the head.
type List struct {
	first *Error
	count int
}

// NewList creates an empty error list.
func NewList() *List { return &List{} }

// Add prepends a new non-critical error to the list.
func (l *List) Add(begin srcpos.Full, end srcpos.Short, msg string) *Error {
	return l.add(begin, end, msg, false)
}

// AddCritical prepends a new critical error — one that must abort the
// pipeline stage that raised it (spec §7: scanning/bracket-matching errors
// are always critical; most reduction errors are not).
func (l *List) AddCritical(begin srcpos.Full, end srcpos.Short, msg string) *Error {
	return l.add(begin, end, msg, true)
}

func (l *List) add(begin srcpos.Full, end srcpos.Short, msg string, critical bool) *Error {
	e := &Error{Begin: begin, End: end, Message: msg, Critical: critical, next: l.first}
	l.first = e
	l.count++
	return e
}

// Count returns the number of errors accumulated.
func (l *List) Count() int { return l.count }

// Empty reports whether no errors have been recorded.
func (l *List) Empty() bool { return l.count == 0 }

// HasCritical reports whether any recorded error is critical.
func (l *List) HasCritical() bool {
	for e := l.first; e != nil; e = e.next {
		if e.Critical {
			return true
		}
	}
	return false
}

// First returns the most recently added error, or nil.
func (l *List) First() *Error { return l.first }

// Next returns the error added immediately before e, or nil.
func (e *Error) Next() *Error { return e.next }

// InOrder returns every error in source order (oldest first), the order a
// user expects to read diagnostics in — the inverse of the list's internal
// prepend order.
func (l *List) InOrder() []*Error {
	out := make([]*Error, 0, l.count)
	for e := l.first; e != nil; e = e.next {
		out = append(out, e)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Format renders every error, one line per error plus a caret indicator
// line, file:line:col: message — the formatCompilerError/
// formatErrorIndicator house style of pkgs/parser/errors.go, driven through
// the count's own localized summary line via prov.
func (l *List) Format(file string, source []rune, prov *message.Provider) string {
	var b strings.Builder
	for _, e := range l.InOrder() {
		fmt.Fprintf(&b, "%s:%d:%d: %s\n", file, e.Begin.Row, e.Begin.Column, e.Message)
		if line := sourceLine(source, e.Begin); line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
			b.WriteString(indicator(e.Begin.Column, e.End, e.Begin))
			b.WriteByte('\n')
		}
	}
	if l.count > 0 {
		b.WriteString(prov.Format(message.CompilationError, l.count))
		b.WriteByte('\n')
	}
	return b.String()
}

// sourceLine extracts the full source line containing pos, for the
// indicator line under each diagnostic.
func sourceLine(source []rune, pos srcpos.Full) string {
	if pos.Offset < 0 || pos.Offset > len(source) {
		return ""
	}
	start := pos.Offset
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := pos.Offset
	for end < len(source) && source[end] != '\n' {
		end++
	}
	return string(source[start:end])
}

// indicator draws the "^~~~" caret line under the span [begin.Column,
// end.Column), widened to the token's full span when End carries enough
// information, else a single caret.
func indicator(col int, end srcpos.Short, begin srcpos.Full) string {
	width := end.Column - begin.Column
	if width < 1 {
		width = 1
	}
	var b strings.Builder
	for i := 1; i < col; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	for i := 1; i < width; i++ {
		b.WriteByte('~')
	}
	return b.String()
}
