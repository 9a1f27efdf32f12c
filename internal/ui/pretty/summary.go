package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/guardfix/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Examples:
//
//	No include guards to convert (12 files checked)
//	3 files rewritten (3 backups), 12 files checked
//	3 files need rewriting, 12 files checked, 1 malformed
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	switch {
	case stats.FilesWritten > 0:
		msg := fmt.Sprintf("%d %s rewritten", stats.FilesWritten, plural(stats.FilesWritten))
		if stats.BackupsCreated > 0 {
			msg += fmt.Sprintf(" (%d %s)", stats.BackupsCreated, pluralWord(stats.BackupsCreated, "backup", "backups"))
		}
		parts = append(parts, s.Success.Render(msg))
	case stats.FilesRewritable > 0:
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s rewriting",
			stats.FilesRewritable, pluralWord(stats.FilesRewritable, "file needs", "files need"))))
	default:
		parts = append(parts, s.Success.Render("No include guards to convert"))
	}

	parts = append(parts, s.Dim.Render(
		fmt.Sprintf("%d %s checked", stats.FilesDiscovered, plural(stats.FilesDiscovered))))

	if stats.FilesMalformed > 0 {
		parts = append(parts, s.Failure.Render(
			fmt.Sprintf("%d malformed", stats.FilesMalformed)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(
			fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatOutcomeLine renders a single file outcome for text output.
func (s *Styles) FormatOutcomeLine(path, guardName, message string) string {
	line := s.FilePath.Render(path) + ": " + s.Message.Render(message)
	if guardName != "" {
		line += " " + s.GuardName.Render("("+guardName+")")
	}
	return line + "\n"
}

// FormatErrorLine renders a per-file failure for text output.
func (s *Styles) FormatErrorLine(path string, err error) string {
	return s.FilePath.Render(path) + ": " + s.Error.Render(fmt.Sprintf("error: %v", err)) + "\n"
}

func plural(n int) string {
	return pluralWord(n, wordFile, wordFiles)
}

func pluralWord(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
