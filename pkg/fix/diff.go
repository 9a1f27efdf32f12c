// Package fix provides unified-diff generation for rewritten headers.
// Diffs are produced with github.com/pmezard/go-difflib and rendered
// in classic unified format (---/+++ headers, @@ hunks).
package fix

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// Diff is a unified diff between a file's original and rewritten content.
type Diff struct {
	// Path is the file path used in the diff headers.
	Path string

	// Additions is the number of added lines.
	Additions int

	// Deletions is the number of removed lines.
	Deletions int

	unified string
}

// GenerateDiff creates a unified diff between original and modified
// content. Returns nil when there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	if bytes.Equal(original, modified) {
		return nil
	}

	display := strings.TrimPrefix(path, "/")
	ud := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(original)),
		B:        splitLinesKeepNL(string(modified)),
		FromFile: "a/" + display,
		ToFile:   "b/" + display,
		Context:  contextLines,
	}

	unified, err := difflib.GetUnifiedDiffString(ud)
	if err != nil || unified == "" {
		return nil
	}

	d := &Diff{Path: path, unified: unified}
	for _, line := range strings.Split(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			d.Additions++
		case strings.HasPrefix(line, "-"):
			d.Deletions++
		}
	}

	return d
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified format (without the git header).
func (d *Diff) String() string {
	if d == nil {
		return ""
	}
	return d.unified
}

// FullString returns the complete diff including the git header.
func (d *Diff) FullString() string {
	if d == nil || d.unified == "" {
		return ""
	}
	return d.GitHeader() + "\n" + d.unified
}

// HasChanges reports whether the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && d.unified != ""
}

// splitLinesKeepNL splits content into lines, keeping the trailing
// newline on each element, which produces accurate unified hunks.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.SplitAfter(s, "\n")
}
