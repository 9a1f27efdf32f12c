// Package langdetect classifies header files by language. A .h file
// may belong to C, C++, or Objective-C; guardfix only rewrites the
// first two, so the pipeline consults this package before touching a
// header when language detection is enabled.
package langdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Language names as reported by enry.
const (
	LangC          = "C"
	LangCPP        = "C++"
	LangObjectiveC = "Objective-C"
)

// Detect returns the language enry assigns to the header, or "" when
// classification is inconclusive. Both the filename (extension
// heuristics) and the content (disambiguation between the .h
// languages) participate.
func Detect(path string, content []byte) string {
	return enry.GetLanguage(filepath.Base(path), content)
}

// IsConvertible reports whether a detected language is one guardfix
// rewrites. An empty detection is treated as convertible: the guard
// locator itself is the final arbiter and a false positive there is
// impossible for files with no #ifndef/#define pair.
func IsConvertible(lang string) bool {
	switch lang {
	case LangC, LangCPP, "":
		return true
	default:
		return false
	}
}
