package guard

import "regexp"

// conditionalLine recognizes the directives that change nesting depth.
// #elif and #else are deliberately absent: they neither open nor close
// a block and pass through as body text. The scan is line-shaped, not
// a real preprocessor lexer, so a directive-looking line inside a
// multi-line comment or string literal is still counted. That matches
// the observed behavior on real headers and is accepted as a known
// limitation.
var conditionalLine = regexp.MustCompile(`^[ \t]*#(if|ifdef|ifndef|endif)\b`)

// findTerminator scans src from offset from (immediately after the
// guard's #define line) and returns the line span of the #endif that
// closes the guard: start is the offset of the line's first byte, end
// is the offset just past its newline.
//
// Depth starts at 1 for the guard's own #ifndef. Every #if/#ifdef/
// #ifndef pushes, every #endif pops regardless of what kind of
// directive it closes, mirroring the preprocessor's untyped #endif.
// The pop that reaches depth 0 identifies the terminator. Reaching end
// of input first means the file is unbalanced and the rewrite must be
// abandoned.
func findTerminator(src []byte, from int) (start, end int, err error) {
	depth := 1

	for pos := from; pos < len(src); {
		lineEnd := lineEndAt(src, pos)
		line := trimNewline(src[pos:lineEnd])

		if sub := conditionalLine.FindSubmatch(line); sub != nil {
			if string(sub[1]) == "endif" {
				depth--
				if depth == 0 {
					return pos, lineEnd, nil
				}
			} else {
				depth++
			}
		}

		pos = lineEnd
	}

	return 0, 0, ErrUnbalancedConditionals
}
