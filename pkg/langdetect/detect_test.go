package langdetect_test

import (
	"testing"

	"github.com/yaklabco/guardfix/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("classifies C++ header", func(t *testing.T) {
		t.Parallel()

		content := []byte("#pragma once\n\nnamespace app {\nclass Widget {\n public:\n  Widget();\n};\n}  // namespace app\n")
		lang := langdetect.Detect("widget.hpp", content)
		if lang != langdetect.LangCPP {
			t.Errorf("Detect() = %q, want %q", lang, langdetect.LangCPP)
		}
	})

	t.Run("classifies Objective-C header", func(t *testing.T) {
		t.Parallel()

		content := []byte("#import <Foundation/Foundation.h>\n\n@interface Widget : NSObject\n- (void)render;\n@end\n")
		lang := langdetect.Detect("widget.h", content)
		if lang != langdetect.LangObjectiveC {
			t.Errorf("Detect() = %q, want %q", lang, langdetect.LangObjectiveC)
		}
	})
}

func TestIsConvertible(t *testing.T) {
	t.Parallel()

	cases := []struct {
		lang string
		want bool
	}{
		{langdetect.LangC, true},
		{langdetect.LangCPP, true},
		{"", true},
		{langdetect.LangObjectiveC, false},
		{"Pawn", false},
	}

	for _, tc := range cases {
		if got := langdetect.IsConvertible(tc.lang); got != tc.want {
			t.Errorf("IsConvertible(%q) = %v, want %v", tc.lang, got, tc.want)
		}
	}
}
