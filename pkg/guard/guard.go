// Package guard normalizes C/C++ include guards to #pragma once.
//
// The transform is pure: it maps one header's bytes to either "no
// change" or a fully assembled replacement buffer. All file I/O,
// traversal, and persistence live with the caller (see pkg/pipeline
// and pkg/runner).
package guard

import (
	"bytes"
	"errors"
	"fmt"
)

// Marker is the canonical idempotent-inclusion directive emitted in
// place of a located include guard.
const Marker = "#pragma once"

// ErrUnbalancedConditionals is returned when a guard's #ifndef has no
// matching #endif before end of file. The input is left untouched.
var ErrUnbalancedConditionals = errors.New("no terminating #endif found")

// Status classifies the outcome of a Transform.
type Status string

const (
	// StatusNoGuard means no #ifndef/#define guard pair was located.
	// This is the expected outcome for most non-header content and
	// for files already converted to the marker form.
	StatusNoGuard Status = "no-guard"

	// StatusUnchanged means a guard was located but the rewritten
	// output is byte-identical to the input.
	StatusUnchanged Status = "unchanged"

	// StatusRewritten means the guard was replaced and Output holds
	// the new file content.
	StatusRewritten Status = "rewritten"
)

// Result is the outcome of transforming one header.
type Result struct {
	// Status classifies the outcome.
	Status Status

	// GuardName is the guard identifier, when one was located.
	GuardName string

	// Output is the rewritten file content. Nil unless Status is
	// StatusRewritten.
	Output []byte
}

// Transform locates the first include guard in src, finds its true
// matching #endif by tracking conditional nesting, and assembles the
// normalized output:
//
//	prologue + "#pragma once" + one blank line + body + suffix
//
// where prologue (everything before the #ifndef line), body (the text
// between the #define line and the matching #endif line), and suffix
// (everything after the #endif line) are carried over verbatim, apart
// from leading blank lines of the body and trailing whitespace at end
// of file. A file with no guard, including one already converted,
// yields StatusNoGuard. A guard with unbalanced conditionals yields
// ErrUnbalancedConditionals and no output.
func Transform(src []byte) (Result, error) {
	m, ok := Locate(src)
	if !ok {
		return Result{Status: StatusNoGuard}, nil
	}

	endifStart, endifEnd, err := findTerminator(src, m.DefineEnd)
	if err != nil {
		return Result{GuardName: m.Name}, fmt.Errorf("guard %s: %w", m.Name, err)
	}

	out := assemble(src, m, endifStart, endifEnd)
	if bytes.Equal(out, src) {
		return Result{Status: StatusUnchanged, GuardName: m.Name}, nil
	}

	return Result{Status: StatusRewritten, GuardName: m.Name, Output: out}, nil
}

// assemble builds the rewritten buffer from the located guard and the
// terminator line span.
func assemble(src []byte, m Match, endifStart, endifEnd int) []byte {
	prologue := src[:m.GuardStart]
	body := trimLeadingBlankLines(src[m.DefineEnd:endifStart])
	suffix := src[endifEnd:]

	var buf bytes.Buffer
	buf.Grow(len(prologue) + len(Marker) + 2 + len(body) + len(suffix) + 1)
	buf.Write(prologue)
	buf.WriteString(Marker)
	buf.WriteString("\n\n")
	buf.Write(body)
	buf.Write(suffix)

	// Trailing-whitespace trim plus a single newline at end of file
	// keeps repeated runs byte-stable.
	out := bytes.TrimRight(buf.Bytes(), " \t\r\n")
	return append(out, '\n')
}

// trimLeadingBlankLines drops whitespace-only lines from the start of
// the body so exactly one blank line separates the marker from the
// first body content.
func trimLeadingBlankLines(body []byte) []byte {
	for len(body) > 0 {
		nl := bytes.IndexByte(body, '\n')
		if nl < 0 {
			break
		}
		if len(bytes.TrimRight(body[:nl], " \t\r")) != 0 {
			break
		}
		body = body[nl+1:]
	}
	return body
}
