package reporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yaklabco/guardfix/pkg/runner"
)

// JSONReporter emits machine-readable results for CI consumption.
type JSONReporter struct {
	opts Options
	out  io.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts, out: opts.Writer}
}

type jsonFile struct {
	Path          string `json:"path"`
	Status        string `json:"status"`
	Guard         string `json:"guard,omitempty"`
	Written       bool   `json:"written,omitempty"`
	BackupCreated bool   `json:"backup_created,omitempty"`
	Skipped       bool   `json:"skipped,omitempty"`
	SkipReason    string `json:"skip_reason,omitempty"`
	Error         string `json:"error,omitempty"`
	Malformed     bool   `json:"malformed,omitempty"`
	Diff          string `json:"diff,omitempty"`
}

type jsonStats struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesProcessed  int `json:"files_processed"`
	FilesSkipped    int `json:"files_skipped"`
	FilesErrored    int `json:"files_errored"`
	FilesMalformed  int `json:"files_malformed"`
	GuardsFound     int `json:"guards_found"`
	FilesNoGuard    int `json:"files_no_guard"`
	FilesRewritable int `json:"files_rewritable"`
	FilesWritten    int `json:"files_written"`
	BackupsCreated  int `json:"backups_created"`
}

type jsonReport struct {
	Files []jsonFile `json:"files"`
	Stats jsonStats  `json:"stats"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	report := jsonReport{Files: []jsonFile{}}
	var reported int

	if result != nil {
		for _, file := range result.Files {
			jf := jsonFile{Path: displayPath(file.Path, r.opts.WorkingDir)}

			switch {
			case file.Error != nil:
				jf.Status = "error"
				jf.Error = file.Error.Error()
				jf.Malformed = file.Malformed()
				reported++
			case file.Result != nil:
				jf.Status = string(file.Result.Status)
				jf.Guard = file.Result.GuardName
				jf.Written = file.Result.Written
				jf.BackupCreated = file.Result.BackupCreated
				jf.Skipped = file.Result.Skipped
				jf.SkipReason = file.Result.SkipReason
				jf.Diff = file.Result.Diff.String()
				if file.Result.Modified {
					reported++
				}
			}

			report.Files = append(report.Files, jf)
		}

		report.Stats = jsonStats{
			FilesDiscovered: result.Stats.FilesDiscovered,
			FilesProcessed:  result.Stats.FilesProcessed,
			FilesSkipped:    result.Stats.FilesSkipped,
			FilesErrored:    result.Stats.FilesErrored,
			FilesMalformed:  result.Stats.FilesMalformed,
			GuardsFound:     result.Stats.GuardsFound,
			FilesNoGuard:    result.Stats.FilesNoGuard,
			FilesRewritable: result.Stats.FilesRewritable,
			FilesWritten:    result.Stats.FilesWritten,
			BackupsCreated:  result.Stats.BackupsCreated,
		}
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return 0, fmt.Errorf("encode json report: %w", err)
	}

	return reported, nil
}
