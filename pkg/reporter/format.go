package reporter

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText Format = "text"
	FormatDiff Format = "diff"
	FormatJSON Format = "json"
)

// ParseFormat parses a format string, rejecting unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "diff":
		return FormatDiff, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, diff, json", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is known.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatDiff, FormatJSON:
		return true
	default:
		return false
	}
}
