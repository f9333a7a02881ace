// Package cout accumulates generated text.
//
// Buffer is a growable string store with indentation state and position
// tracking attached. It's intended for code generators (AST visitors and
// alike) which emit text line by line and need the current indentation
// prefix and the output position without deriving them on each call.
//
// Buffer is not safe for concurrent use.
package cout

import (
	"fmt"
	"strings"

	"nikand.dev/go/hacked/hfmt"
	"tlog.app/go/errors"
	"tlog.app/go/loc"
)

type (
	// Buffer is an append-only text accumulator.
	//
	// Position counters (Line, Column, Offset) are derived from the
	// history of writes and count runes. They always agree with the
	// contents since the store is append-only.
	Buffer struct {
		b []byte

		name string

		tab   string
		ind   string
		level int

		line, col, off int
	}

	// Opts are Buffer construction options. Zero value of a field means
	// the default.
	Opts struct {
		Name string // diagnostic label, no behavioral effect. Default is "<string>".
		Init string // seed text, written through the normal write path.
		Tab  string // indentation unit, repeated level times. Default is "\t".
	}
)

// New creates a Buffer with default options.
func New() *Buffer { return NewOpts(Opts{}) }

// NewOpts creates a Buffer. Init, if any, goes through Write, so position
// counters reflect it.
func NewOpts(o Opts) *Buffer {
	if o.Name == "" {
		o.Name = "<string>"
	}
	if o.Tab == "" {
		o.Tab = "\t"
	}

	w := &Buffer{
		name: o.Name,
		tab:  o.Tab,
	}

	if o.Init != "" {
		w.Write(o.Init)
	}

	return w
}

// Write appends text verbatim and advances position counters over it.
func (w *Buffer) Write(text string) *Buffer {
	st := len(w.b)
	w.b = append(w.b, text...)
	w.count(w.b[st:])

	return w
}

// Writef formats args and appends the result. No indentation is added.
// Formatting follows fmt rules, bad verbs end up in the output the way fmt
// leaves them.
func (w *Buffer) Writef(format string, args ...interface{}) *Buffer {
	st := len(w.b)
	w.b = hfmt.Appendf(w.b, format, args...)
	w.count(w.b[st:])

	return w
}

// WriteIndented appends the current indentation prefix and then text.
func (w *Buffer) WriteIndented(text string) *Buffer {
	w.Write(w.ind)

	return w.Write(text)
}

// Iwrite is an alias of WriteIndented.
func (w *Buffer) Iwrite(text string) *Buffer { return w.WriteIndented(text) }

// WriteLine appends the indentation prefix, text and a newline.
// Empty text appends a single newline with no prefix, so a blank line
// carries no trailing whitespace.
func (w *Buffer) WriteLine(text string) *Buffer {
	if text == "" {
		return w.Write("\n")
	}

	w.Write(w.ind)
	w.Write(text)

	return w.Write("\n")
}

// Newline appends a single newline. It's WriteLine with empty text.
func (w *Buffer) Newline() *Buffer { return w.WriteLine("") }

// WriteLines writes each item as its own line, in argument order.
// Items are rendered with %v.
func (w *Buffer) WriteLines(items ...interface{}) *Buffer {
	for _, item := range items {
		w.WriteLine(fmt.Sprint(item))
	}

	return w
}

// Indent increases indentation by one level.
func (w *Buffer) Indent() *Buffer {
	w.level++
	w.updateIndent()

	return w
}

// Unindent decreases indentation by one level.
// Going below zero is a bug in the caller; it panics instead of clamping.
func (w *Buffer) Unindent() *Buffer { return w.unindent(2) }

// Dedent is an alias of Unindent.
func (w *Buffer) Dedent() *Buffer { return w.unindent(2) }

// Outdent is an alias of Unindent.
func (w *Buffer) Outdent() *Buffer { return w.unindent(2) }

func (w *Buffer) unindent(d int) *Buffer {
	if w.level == 0 {
		panic(errors.New("cout: unindent below zero (from %v)", loc.Caller(d)))
	}

	w.level--
	w.updateIndent()

	return w
}

// String returns the contents accumulated so far.
func (w *Buffer) String() string { return string(w.b) }

// Bytes returns the underlying store. It's only valid until the next write.
func (w *Buffer) Bytes() []byte { return w.b }

// Len returns the contents length in bytes.
func (w *Buffer) Len() int { return len(w.b) }

// Equal reports whether the contents equal s.
func (w *Buffer) Equal(s string) bool { return string(w.b) == s }

// Append appends v through the write path: strings as is, anything else
// rendered with %v.
func (w *Buffer) Append(v interface{}) *Buffer {
	if s, ok := v.(string); ok {
		return w.Write(s)
	}

	st := len(w.b)
	w.b = fmt.Append(w.b, v)
	w.count(w.b[st:])

	return w
}

// At returns the byte at offset i of the contents.
func (w *Buffer) At(i int) byte { return w.b[i] }

// Slice returns the contents between byte offsets i and j.
func (w *Buffer) Slice(i, j int) string { return string(w.b[i:j]) }

// Name returns the diagnostic label the buffer was created with.
func (w *Buffer) Name() string { return w.name }

// SetName replaces the diagnostic label.
func (w *Buffer) SetName(name string) { w.name = name }

// Tab returns the indentation unit.
func (w *Buffer) Tab() string { return w.tab }

// SetTab replaces the indentation unit and recomputes the prefix for the
// current level. Already written output is not touched.
func (w *Buffer) SetTab(tab string) {
	w.tab = tab
	w.updateIndent()
}

// Level returns the indentation level.
func (w *Buffer) Level() int { return w.level }

// SetLevel jumps to an arbitrary indentation level.
// Negative level is a bug in the caller; it panics.
func (w *Buffer) SetLevel(level int) {
	if level < 0 {
		panic(errors.New("cout: negative indentation level %d (from %v)", level, loc.Caller(1)))
	}

	w.level = level
	w.updateIndent()
}

// Indentation returns the current indentation prefix (Tab repeated Level
// times).
func (w *Buffer) Indentation() string { return w.ind }

// Line returns the number of newlines written so far.
func (w *Buffer) Line() int { return w.line }

// Column returns the number of runes written since the last newline.
func (w *Buffer) Column() int { return w.col }

// Offset returns the total number of runes written.
func (w *Buffer) Offset() int { return w.off }

func (w *Buffer) updateIndent() {
	w.ind = strings.Repeat(w.tab, w.level)
}

func (w *Buffer) count(p []byte) {
	for _, r := range string(p) {
		if r == '\n' {
			w.line++
			w.col = 0
		} else {
			w.col++
		}

		w.off++
	}
}
