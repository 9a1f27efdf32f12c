package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/guardfix/pkg/config"
	"github.com/yaklabco/guardfix/pkg/pipeline"
	"github.com/yaklabco/guardfix/pkg/runner"
)

const guardedHeader = "#ifndef A_H\n#define A_H\nint a;\n#endif\n"

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("report-only run aggregates outcomes", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"a.h":             guardedHeader,
			"sub/b.hpp":       "#ifndef B_HPP\n#define B_HPP\nint b;\n#endif\n",
			"sub/done.h":      "#pragma once\n\nint d;\n",
			"sub/broken.h":    "#ifndef BROKEN_H\n#define BROKEN_H\n#ifdef X\n#endif\n",
			"notes.txt":       "not a header",
			"sub/.hidden.h":   guardedHeader,
			"third_party/t.h": guardedHeader,
		})

		res, err := runner.New(pipeline.New()).Run(ctx, runner.Options{
			Paths:        []string{"."},
			WorkingDir:   dir,
			ExcludeGlobs: []string{"third_party/**"},
			Config:       config.NewConfig(),
		})
		require.NoError(t, err)

		assert.Equal(t, 4, res.Stats.FilesDiscovered)
		assert.Equal(t, 3, res.Stats.FilesProcessed)
		assert.Equal(t, 1, res.Stats.FilesErrored)
		assert.Equal(t, 1, res.Stats.FilesMalformed)
		assert.Equal(t, 2, res.Stats.GuardsFound)
		assert.Equal(t, 2, res.Stats.FilesRewritable)
		assert.Equal(t, 1, res.Stats.FilesNoGuard)
		assert.Equal(t, 0, res.Stats.FilesWritten)
		assert.True(t, res.HasPendingChanges())
		assert.True(t, res.HasMalformed())

		// Outcomes come back in path order.
		require.Len(t, res.Files, 4)
		for i := 1; i < len(res.Files); i++ {
			assert.Less(t, res.Files[i-1].Path, res.Files[i].Path)
		}
	})

	t.Run("write mode rewrites everything", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"a.h":  guardedHeader,
			"b.hh": "#ifndef B_HH\n#define B_HH\nint b;\n#endif\n",
		})

		cfg := config.NewConfig()
		cfg.Write = true
		cfg.Backups.Enabled = false

		res, err := runner.New(pipeline.New()).Run(ctx, runner.Options{
			WorkingDir: dir,
			Jobs:       2,
			Config:     cfg,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, res.Stats.FilesWritten)
		assert.False(t, res.HasPendingChanges())

		got, err := os.ReadFile(filepath.Join(dir, "a.h"))
		require.NoError(t, err)
		assert.Equal(t, "#pragma once\n\nint a;\n", string(got))
	})

	t.Run("empty directory yields empty result", func(t *testing.T) {
		t.Parallel()

		res, err := runner.New(pipeline.New()).Run(ctx, runner.Options{
			WorkingDir: t.TempDir(),
			Config:     config.NewConfig(),
		})
		require.NoError(t, err)
		assert.Zero(t, res.Stats.FilesDiscovered)
		assert.Empty(t, res.Files)
	})

	t.Run("cancelled context reports error", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{"a.h": guardedHeader})
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := runner.New(pipeline.New()).Run(cancelled, runner.Options{
			WorkingDir: dir,
			Config:     config.NewConfig(),
		})
		assert.Error(t, err)
	})
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("filters by extension case-insensitively", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"a.h":   "",
			"b.H":   "",
			"c.hpp": "",
			"d.cpp": "",
			"e":     "",
		})

		files, err := runner.Discover(ctx, runner.Options{WorkingDir: dir})
		require.NoError(t, err)

		var names []string
		for _, f := range files {
			names = append(names, filepath.Base(f))
		}
		assert.ElementsMatch(t, []string{"a.h", "b.H", "c.hpp"}, names)
	})

	t.Run("explicit file path bypasses directory walk", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{"x.h": "", "y.h": ""})

		files, err := runner.Discover(ctx, runner.Options{
			Paths:      []string{"x.h"},
			WorkingDir: dir,
		})
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "x.h", filepath.Base(files[0]))
	})

	t.Run("missing path is an error", func(t *testing.T) {
		t.Parallel()

		_, err := runner.Discover(ctx, runner.Options{
			Paths:      []string{"nope"},
			WorkingDir: t.TempDir(),
		})
		assert.Error(t, err)
	})

	t.Run("deduplicates overlapping paths", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{"sub/a.h": ""})

		files, err := runner.Discover(ctx, runner.Options{
			Paths:      []string{".", "sub", filepath.Join("sub", "a.h")},
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("exclude globs prune directories and files", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"keep/a.h":      "",
			"vendor/v.h":    "",
			"gen/deep/g.h":  "",
			"keep/skip.hpp": "",
		})

		files, err := runner.Discover(ctx, runner.Options{
			WorkingDir:   dir,
			ExcludeGlobs: []string{"vendor/**", "gen/**", "*.hpp"},
		})
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "a.h", filepath.Base(files[0]))
	})

	t.Run("include globs restrict matches", func(t *testing.T) {
		t.Parallel()

		dir := writeTree(t, map[string]string{
			"src/a.h": "",
			"doc/b.h": "",
		})

		files, err := runner.Discover(ctx, runner.Options{
			WorkingDir:   dir,
			IncludeGlobs: []string{"src/**"},
		})
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "a.h", filepath.Base(files[0]))
	})
}
