package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/guardfix/pkg/config"
)

// envVarPrefix is the prefix for all guardfix environment variables.
const envVarPrefix = "GUARDFIX_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":          {field: "format", typ: envTypeString},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"WRITE":           {field: "write", typ: envTypeBool},
	"DRY_RUN":         {field: "dry_run", typ: envTypeBool},
	"NO_BACKUPS":      {field: "no_backups", typ: envTypeBool},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool},
	"DETECT_LANGUAGE": {field: "detect_language", typ: envTypeBool},
	"EXTENSIONS":      {field: "extensions", typ: envTypeSlice},
	"IGNORE":          {field: "ignore", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GUARDFIX_ (e.g., GUARDFIX_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "write":
		cfg.Write = value
	case "dry_run":
		cfg.DryRun = value
	case "no_backups":
		cfg.NoBackups = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "detect_language":
		cfg.DetectLanguage = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "extensions":
		cfg.Extensions = value
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GUARDFIX_FORMAT":          "Output format: text, diff, or json",
		"GUARDFIX_JOBS":            "Number of parallel workers (0 = one per CPU)",
		"GUARDFIX_WRITE":           "Rewrite files in place: true or false",
		"GUARDFIX_DRY_RUN":         "Dry-run mode: true or false",
		"GUARDFIX_NO_BACKUPS":      "Disable backups: true or false",
		"GUARDFIX_BACKUPS_ENABLED": "Keep a sidecar backup when rewriting: true or false",
		"GUARDFIX_DETECT_LANGUAGE": "Skip non-C/C++ headers by content: true or false",
		"GUARDFIX_EXTENSIONS":      "Comma-separated list of header extensions",
		"GUARDFIX_IGNORE":          "Comma-separated list of ignore patterns",
	}
}
