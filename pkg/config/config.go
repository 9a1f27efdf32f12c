// Package config defines the configuration types for guardfix. These
// are pure data structures; loading and merging live in
// internal/configloader.
package config

// OutputFormat specifies the output format for results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatDiff OutputFormat = "diff"
	FormatJSON OutputFormat = "json"
)

// BackupsConfig controls sidecar backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for guardfix.
type Config struct {
	// Extensions is the set of header file extensions to process
	// (lowercase, with leading dot).
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// Backups configures backup behavior when rewriting.
	Backups BackupsConfig `yaml:"backups"`

	// DetectLanguage enables content-based language detection so
	// headers classified as something other than C or C++ (for
	// example Objective-C) are skipped instead of rewritten.
	DetectLanguage bool `yaml:"detect_language"`

	// Jobs is the number of parallel workers (0 = one per CPU).
	Jobs int `yaml:"jobs"`

	// CLI-level options, never persisted to config files.

	// Write enables rewriting files (fix mode); when false the run is
	// report-only.
	Write bool `yaml:"-"`

	// DryRun generates diffs without writing files.
	DryRun bool `yaml:"-"`

	// NoBackups disables backup creation even if the file config
	// enables it.
	NoBackups bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`
}

// DefaultExtensions returns the header extensions processed when the
// configuration does not specify any.
func DefaultExtensions() []string {
	return []string{".h", ".hpp", ".hh", ".hxx", ".h++"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: DefaultExtensions(),
		Backups:    BackupsConfig{Enabled: true},
		Format:     FormatText,
	}
}
