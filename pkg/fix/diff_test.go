package fix_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/guardfix/pkg/fix"
)

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for identical content", func(t *testing.T) {
		t.Parallel()

		content := []byte("#pragma once\n\nint a;\n")
		if diff := fix.GenerateDiff("a.h", content, content); diff != nil {
			t.Error("expected nil for identical content")
		}
	})

	t.Run("counts additions and deletions", func(t *testing.T) {
		t.Parallel()

		original := []byte("#ifndef A_H\n#define A_H\nint a;\n#endif\n")
		modified := []byte("#pragma once\n\nint a;\n")

		diff := fix.GenerateDiff("a.h", original, modified)
		if diff == nil {
			t.Fatal("expected non-nil diff")
		}
		if !diff.HasChanges() {
			t.Error("expected HasChanges() = true")
		}
		if diff.Additions != 2 {
			t.Errorf("additions = %d, want 2", diff.Additions)
		}
		if diff.Deletions != 3 {
			t.Errorf("deletions = %d, want 3", diff.Deletions)
		}
	})

	t.Run("renders unified format", func(t *testing.T) {
		t.Parallel()

		original := []byte("#ifndef A_H\n#define A_H\nint a;\n#endif\n")
		modified := []byte("#pragma once\n\nint a;\n")

		diff := fix.GenerateDiff("include/a.h", original, modified)
		if diff == nil {
			t.Fatal("expected non-nil diff")
		}

		out := diff.String()
		for _, want := range []string{
			"--- a/include/a.h",
			"+++ b/include/a.h",
			"@@",
			"-#ifndef A_H",
			"+#pragma once",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("diff missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("git header strips leading slash", func(t *testing.T) {
		t.Parallel()

		diff := fix.GenerateDiff("/tmp/x.h", []byte("a\n"), []byte("b\n"))
		if diff == nil {
			t.Fatal("expected non-nil diff")
		}
		want := "diff --git a/tmp/x.h b/tmp/x.h"
		if got := diff.GitHeader(); got != want {
			t.Errorf("GitHeader() = %q, want %q", got, want)
		}
		if !strings.HasPrefix(diff.FullString(), want+"\n") {
			t.Errorf("FullString() missing header: %q", diff.FullString())
		}
	})

	t.Run("nil diff renders empty", func(t *testing.T) {
		t.Parallel()

		var diff *fix.Diff
		if diff.String() != "" || diff.FullString() != "" || diff.GitHeader() != "" {
			t.Error("nil diff should render empty strings")
		}
		if diff.HasChanges() {
			t.Error("nil diff should have no changes")
		}
	})
}
