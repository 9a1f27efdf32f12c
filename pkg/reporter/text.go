package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/guardfix/internal/ui/pretty"
	"github.com/yaklabco/guardfix/pkg/runner"
)

// TextReporter formats results as styled terminal output, one line per
// actionable file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No header files to process."))
		}
		return 0, nil
	}

	var reported int
	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		switch {
		case file.Error != nil:
			fmt.Fprint(r.bw, r.styles.FormatErrorLine(path, file.Error))
			reported++
		case file.Result == nil:
			continue
		case file.Result.Skipped:
			fmt.Fprint(r.bw, r.styles.FormatOutcomeLine(path, file.Result.GuardName,
				"skipped: "+file.Result.SkipReason))
			reported++
		case file.Result.Modified:
			fmt.Fprint(r.bw, r.styles.FormatOutcomeLine(path, file.Result.GuardName,
				file.Result.Summary()))
			reported++
		case r.opts.ShowUnchanged:
			fmt.Fprint(r.bw, r.styles.FormatOutcomeLine(path, file.Result.GuardName,
				file.Result.Summary()))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return reported, nil
}
