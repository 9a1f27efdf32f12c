package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/guardfix/pkg/fix"
	"github.com/yaklabco/guardfix/pkg/guard"
	"github.com/yaklabco/guardfix/pkg/pipeline"
	"github.com/yaklabco/guardfix/pkg/reporter"
	"github.com/yaklabco/guardfix/pkg/runner"
)

func sampleResult() *runner.Result {
	original := []byte("#ifndef A_H\n#define A_H\nint a;\n#endif\n")
	modified := []byte("#pragma once\n\nint a;\n")

	res := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "src/a.h",
				Result: &pipeline.Result{
					Path:            "src/a.h",
					Status:          guard.StatusRewritten,
					GuardName:       "A_H",
					Modified:        true,
					ModifiedContent: modified,
					Diff:            fix.GenerateDiff("src/a.h", original, modified),
				},
			},
			{
				Path: "src/plain.h",
				Result: &pipeline.Result{
					Path:   "src/plain.h",
					Status: guard.StatusNoGuard,
				},
			},
			{
				Path:  "src/broken.h",
				Error: fmt.Errorf("%w: guard BROKEN_H", pipeline.ErrMalformed),
			},
		},
	}
	res.Stats = runner.Stats{
		FilesDiscovered: 3,
		FilesProcessed:  2,
		FilesErrored:    1,
		FilesMalformed:  1,
		GuardsFound:     1,
		FilesNoGuard:    1,
		FilesRewritable: 1,
	}
	return res
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"", "text", "diff", "json"} {
		f, err := reporter.ParseFormat(valid)
		require.NoError(t, err, valid)
		assert.True(t, f.IsValid())
	}

	_, err := reporter.ParseFormat("sarif")
	assert.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	t.Run("reports actionable files and summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		rep, err := reporter.New(reporter.Options{
			Writer:      &buf,
			Format:      reporter.FormatText,
			Color:       "never",
			ShowSummary: true,
		})
		require.NoError(t, err)

		count, err := rep.Report(context.Background(), sampleResult())
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		out := buf.String()
		assert.Contains(t, out, "src/a.h: needs rewrite (A_H)")
		assert.Contains(t, out, "src/broken.h: error:")
		assert.NotContains(t, out, "src/plain.h")
		assert.Contains(t, out, "1 file needs rewriting")
		assert.Contains(t, out, "1 malformed")
	})

	t.Run("show-unchanged includes quiet files", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		rep := reporter.NewTextReporter(reporter.Options{
			Writer:        &buf,
			Color:         "never",
			ShowUnchanged: true,
		})

		_, err := rep.Report(context.Background(), sampleResult())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "src/plain.h: no guard")
	})

	t.Run("empty result prints notice", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		rep := reporter.NewTextReporter(reporter.Options{
			Writer:      &buf,
			Color:       "never",
			ShowSummary: true,
		})

		count, err := rep.Report(context.Background(), &runner.Result{})
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Contains(t, buf.String(), "No header files to process.")
	})
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewDiffReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	out := buf.String()
	assert.Contains(t, out, "diff --git a/src/a.h b/src/a.h")
	assert.Contains(t, out, "-#ifndef A_H")
	assert.Contains(t, out, "+#pragma once")
	assert.Contains(t, out, "1 file changed")
	assert.Contains(t, out, "2 insertions(+)")
	assert.Contains(t, out, "3 deletions(-)")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var report struct {
		Files []map[string]any `json:"files"`
		Stats map[string]any   `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	require.Len(t, report.Files, 3)
	assert.Equal(t, "rewritten", report.Files[0]["status"])
	assert.Equal(t, "A_H", report.Files[0]["guard"])
	assert.Equal(t, "no-guard", report.Files[1]["status"])
	assert.Equal(t, "error", report.Files[2]["status"])
	assert.Equal(t, true, report.Files[2]["malformed"])
	assert.EqualValues(t, 1, report.Stats["files_rewritable"])
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: reporter.Format("xml")})
	assert.Error(t, err)
}

func TestMalformedOutcomeHelper(t *testing.T) {
	t.Parallel()

	outcome := runner.FileOutcome{Error: fmt.Errorf("wrap: %w", pipeline.ErrMalformed)}
	assert.True(t, outcome.Malformed())

	outcome = runner.FileOutcome{Error: errors.New("io")}
	assert.False(t, outcome.Malformed())
}
