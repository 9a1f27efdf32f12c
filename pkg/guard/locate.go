package guard

import (
	"bytes"
	"regexp"
)

// Match describes a located include guard.
type Match struct {
	// Name is the guard identifier shared by the #ifndef and #define.
	Name string

	// GuardStart is the byte offset of the start of the #ifndef line.
	// Everything before it is the prologue and is preserved verbatim.
	GuardStart int

	// DefineEnd is the byte offset immediately past the #define line,
	// including its newline when present.
	DefineEnd int
}

var (
	ifndefLine = regexp.MustCompile(`^[ \t]*#ifndef[ \t]+(\w+)[ \t\r]*$`)
	defineLine = regexp.MustCompile(`^[ \t]*#define[ \t]+(\w+)[ \t\r]*$`)
)

// Locate finds the first top-level include guard: an #ifndef line
// whose next directive-bearing line is a #define of the exact same
// identifier. Whitespace-only lines between the two are tolerated;
// any other intervening content disqualifies the candidate and the
// scan resumes at the following line. Identifier comparison is
// case-sensitive; #define lines carrying a value do not match.
func Locate(src []byte) (Match, bool) {
	for pos := 0; pos < len(src); {
		lineEnd := lineEndAt(src, pos)
		line := trimNewline(src[pos:lineEnd])

		sub := ifndefLine.FindSubmatch(line)
		if sub == nil {
			pos = lineEnd
			continue
		}
		name := string(sub[1])

		// Walk forward over blank lines to the define candidate.
		for next := lineEnd; next < len(src); {
			nextEnd := lineEndAt(src, next)
			nextLine := trimNewline(src[next:nextEnd])

			if len(bytes.TrimRight(nextLine, " \t\r")) == 0 {
				next = nextEnd
				continue
			}

			def := defineLine.FindSubmatch(nextLine)
			if def != nil && string(def[1]) == name {
				return Match{Name: name, GuardStart: pos, DefineEnd: nextEnd}, true
			}
			break
		}

		pos = lineEnd
	}

	return Match{}, false
}

// lineEndAt returns the offset just past the line starting at pos,
// including its newline, or len(src) for a final unterminated line.
func lineEndAt(src []byte, pos int) int {
	nl := bytes.IndexByte(src[pos:], '\n')
	if nl < 0 {
		return len(src)
	}
	return pos + nl + 1
}

// trimNewline strips a single trailing \n from a line slice. Carriage
// returns are left in place; the line patterns tolerate them.
func trimNewline(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		return line[:n-1]
	}
	return line
}
