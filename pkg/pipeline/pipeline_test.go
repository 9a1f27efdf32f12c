package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/guardfix/pkg/fsutil"
	"github.com/yaklabco/guardfix/pkg/guard"
	"github.com/yaklabco/guardfix/pkg/pipeline"
)

const guardedHeader = "#ifndef A_H\n#define A_H\nint a;\n#endif\n"

func writeHeader(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestProcessFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := pipeline.New()

	t.Run("report-only run produces diff without writing", func(t *testing.T) {
		t.Parallel()

		path := writeHeader(t, t.TempDir(), "a.h", guardedHeader)
		res, err := p.ProcessFile(ctx, path, pipeline.Options{})
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}

		if res.Status != guard.StatusRewritten {
			t.Errorf("status = %v, want %v", res.Status, guard.StatusRewritten)
		}
		if !res.Modified || res.Written {
			t.Errorf("modified = %v written = %v, want modified only", res.Modified, res.Written)
		}
		if !res.Diff.HasChanges() {
			t.Error("expected a diff")
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != guardedHeader {
			t.Error("report-only run modified the file")
		}
	})

	t.Run("write mode rewrites atomically with backup", func(t *testing.T) {
		t.Parallel()

		path := writeHeader(t, t.TempDir(), "a.h", guardedHeader)
		opts := pipeline.Options{
			Write:               true,
			Backup:              fsutil.BackupConfig{Enabled: true},
			StrictRaceDetection: true,
		}

		res, err := p.ProcessFile(ctx, path, opts)
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}
		if !res.Written || !res.BackupCreated {
			t.Errorf("written = %v backup = %v, want both", res.Written, res.BackupCreated)
		}
		if res.Summary() != "rewritten (backup created)" {
			t.Errorf("summary = %q", res.Summary())
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		want := "#pragma once\n\nint a;\n"
		if string(got) != want {
			t.Errorf("content = %q, want %q", got, want)
		}

		bak, err := os.ReadFile(fsutil.BackupPath(path))
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(bak) != guardedHeader {
			t.Errorf("backup = %q, want original", bak)
		}
	})

	t.Run("dry-run in write mode never writes", func(t *testing.T) {
		t.Parallel()

		path := writeHeader(t, t.TempDir(), "a.h", guardedHeader)
		res, err := p.ProcessFile(ctx, path, pipeline.Options{Write: true, DryRun: true})
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}
		if res.Written {
			t.Error("dry-run wrote the file")
		}
		if !res.Diff.HasChanges() {
			t.Error("expected a diff in dry-run")
		}

		got, _ := os.ReadFile(path)
		if string(got) != guardedHeader {
			t.Error("dry-run modified the file")
		}
	})

	t.Run("no guard is a clean no-op", func(t *testing.T) {
		t.Parallel()

		path := writeHeader(t, t.TempDir(), "a.h", "#pragma once\n\nint a;\n")
		res, err := p.ProcessFile(ctx, path, pipeline.Options{Write: true})
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}
		if res.Status != guard.StatusNoGuard || res.Modified || res.Written {
			t.Errorf("unexpected outcome: %+v", res)
		}
		if res.Summary() != "no guard" {
			t.Errorf("summary = %q", res.Summary())
		}
	})

	t.Run("malformed nesting leaves file untouched", func(t *testing.T) {
		t.Parallel()

		src := "#ifndef A_H\n#define A_H\n#ifdef B\nint b;\n#endif\n"
		path := writeHeader(t, t.TempDir(), "a.h", src)

		_, err := p.ProcessFile(ctx, path, pipeline.Options{Write: true})
		if !errors.Is(err, pipeline.ErrMalformed) {
			t.Fatalf("error = %v, want ErrMalformed", err)
		}
		if !errors.Is(err, guard.ErrUnbalancedConditionals) {
			t.Errorf("error = %v, want to wrap ErrUnbalancedConditionals", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != src {
			t.Error("malformed file was modified")
		}
	})

	t.Run("missing file categorized", func(t *testing.T) {
		t.Parallel()

		_, err := p.ProcessFile(ctx, filepath.Join(t.TempDir(), "nope.h"), pipeline.Options{})
		if !errors.Is(err, pipeline.ErrFileNotFound) {
			t.Errorf("error = %v, want ErrFileNotFound", err)
		}
	})

	t.Run("language detection skips objective-c header", func(t *testing.T) {
		t.Parallel()

		src := "#ifndef WIDGET_H\n#define WIDGET_H\n#import <Foundation/Foundation.h>\n@interface Widget : NSObject\n@end\n#endif\n"
		path := writeHeader(t, t.TempDir(), "widget.h", src)

		res, err := p.ProcessFile(ctx, path, pipeline.Options{Write: true, DetectLanguage: true})
		if err != nil {
			t.Fatalf("ProcessFile() error = %v", err)
		}
		if !res.Skipped {
			t.Fatalf("expected skip, got %+v", res)
		}

		got, _ := os.ReadFile(path)
		if string(got) != src {
			t.Error("skipped file was modified")
		}
	})
}

func TestProcessContent(t *testing.T) {
	t.Parallel()

	p := pipeline.New()

	res, err := p.ProcessContent(context.Background(), "mem.h", []byte(guardedHeader), pipeline.Options{})
	if err != nil {
		t.Fatalf("ProcessContent() error = %v", err)
	}
	if res.Status != guard.StatusRewritten {
		t.Errorf("status = %v, want %v", res.Status, guard.StatusRewritten)
	}
	if string(res.ModifiedContent) != "#pragma once\n\nint a;\n" {
		t.Errorf("content = %q", res.ModifiedContent)
	}
	if !res.Diff.HasChanges() {
		t.Error("expected a diff")
	}
}

func TestProcessFileIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := pipeline.New()
	path := writeHeader(t, t.TempDir(), "a.h", guardedHeader)
	opts := pipeline.Options{Write: true, StrictRaceDetection: true}

	first, err := p.ProcessFile(ctx, path, opts)
	if err != nil {
		t.Fatalf("first run error = %v", err)
	}
	if !first.Written {
		t.Fatal("first run did not write")
	}

	second, err := p.ProcessFile(ctx, path, opts)
	if err != nil {
		t.Fatalf("second run error = %v", err)
	}
	if second.Status != guard.StatusNoGuard || second.Written {
		t.Errorf("second run not a no-op: %+v", second)
	}
}
