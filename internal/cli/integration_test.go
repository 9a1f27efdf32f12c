package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/guardfix/internal/cli"
)

const guardedHeader = `#ifndef FOO_H
#define FOO_H

struct foo { int a; };

#endif
`

const convertedHeader = `#pragma once

struct foo { int a; };
`

// unbalancedHeader opens a nested #if that never closes.
const unbalancedHeader = `#ifndef BAR_H
#define BAR_H
#if defined(FOO)
int bar;
#endif
`

func writeHeader(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--color", "never"))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestIntegration_CheckFindsGuards(t *testing.T) {
	dir := t.TempDir()
	writeHeader(t, dir, "foo.h", guardedHeader)
	writeHeader(t, dir, "clean.h", "#pragma once\n\nint x;\n")

	stdout, _, err := execute(t, "check", dir)

	require.ErrorIs(t, err, cli.ErrChangesNeeded)
	assert.Contains(t, stdout, "needs rewrite")
	assert.Contains(t, stdout, "FOO_H")
	assert.NotContains(t, stdout, "clean.h")
}

func TestIntegration_CheckCleanTree(t *testing.T) {
	dir := t.TempDir()
	writeHeader(t, dir, "clean.h", "#pragma once\n\nint x;\n")

	stdout, _, err := execute(t, "check", dir)

	require.NoError(t, err)
	assert.Contains(t, stdout, "No include guards to convert")
}

func TestIntegration_CheckMalformed(t *testing.T) {
	dir := t.TempDir()
	writeHeader(t, dir, "bar.h", unbalancedHeader)

	stdout, _, err := execute(t, "check", dir)

	require.ErrorIs(t, err, cli.ErrMalformedHeaders)
	assert.Equal(t, cli.ExitMalformed, cli.ExitCode(err))
	assert.Contains(t, stdout, "error")
}

func TestIntegration_CheckDiffFormat(t *testing.T) {
	dir := t.TempDir()
	writeHeader(t, dir, "foo.h", guardedHeader)

	stdout, _, err := execute(t, "check", dir, "--format", "diff")

	require.ErrorIs(t, err, cli.ErrChangesNeeded)
	assert.Contains(t, stdout, "-#ifndef FOO_H")
	assert.Contains(t, stdout, "+#pragma once")
}

func TestIntegration_CheckJSONFormat(t *testing.T) {
	dir := t.TempDir()
	writeHeader(t, dir, "foo.h", guardedHeader)

	stdout, _, err := execute(t, "check", dir, "--format", "json")

	require.ErrorIs(t, err, cli.ErrChangesNeeded)
	assert.Contains(t, stdout, `"status": "rewritten"`)
	assert.Contains(t, stdout, `"guard": "FOO_H"`)
}

func TestIntegration_FixRewrites(t *testing.T) {
	dir := t.TempDir()
	path := writeHeader(t, dir, "foo.h", guardedHeader)

	_, _, err := execute(t, "fix", dir)
	require.NoError(t, err)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, convertedHeader, string(content))

	backup, readErr := os.ReadFile(path + ".guardfix.bak")
	require.NoError(t, readErr)
	assert.Equal(t, guardedHeader, string(backup))

	// A second run finds nothing left to do.
	_, _, err = execute(t, "fix", dir)
	require.NoError(t, err)
}

func TestIntegration_FixNoBackups(t *testing.T) {
	dir := t.TempDir()
	path := writeHeader(t, dir, "foo.h", guardedHeader)

	_, _, err := execute(t, "fix", "--no-backups", dir)
	require.NoError(t, err)

	_, statErr := os.Stat(path + ".guardfix.bak")
	assert.True(t, os.IsNotExist(statErr))
}

func TestIntegration_FixDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeHeader(t, dir, "foo.h", guardedHeader)

	stdout, _, err := execute(t, "fix", "--dry-run", "--format", "diff", dir)

	require.ErrorIs(t, err, cli.ErrChangesNeeded)
	assert.Contains(t, stdout, "+#pragma once")

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, guardedHeader, string(content))
}

func TestIntegration_IgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	writeHeader(t, dir, "foo.h", guardedHeader)
	vendor := filepath.Join(dir, "vendor")
	require.NoError(t, os.MkdirAll(vendor, 0o755))
	writeHeader(t, vendor, "third.h", guardedHeader)

	// Ignore globs match relative to the working directory.
	t.Chdir(dir)
	stdout, _, err := execute(t, "check", "--ignore", "vendor/**", ".")

	require.ErrorIs(t, err, cli.ErrChangesNeeded)
	assert.Contains(t, stdout, "foo.h")
	assert.NotContains(t, stdout, "third.h")
}

func TestIntegration_ExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	writeHeader(t, dir, "foo.hxx", guardedHeader)

	cfgPath := filepath.Join(t.TempDir(), "guardfix.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("extensions: [.hxx]\n"), 0o644))

	_, _, err := execute(t, "check", "--config", cfgPath, dir)
	require.ErrorIs(t, err, cli.ErrChangesNeeded)
}

func TestIntegration_BadConfigPath(t *testing.T) {
	_, _, err := execute(t, "check", "--config", filepath.Join(t.TempDir(), "missing.yml"), t.TempDir())

	require.ErrorIs(t, err, cli.ErrConfig)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_MissingPath(t *testing.T) {
	_, _, err := execute(t, "check", filepath.Join(t.TempDir(), "does-not-exist"))

	require.ErrorIs(t, err, cli.ErrIO)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestIntegration_InitCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".guardfix.yml")

	_, _, err := execute(t, "init", "--output", target)
	require.NoError(t, err)

	content, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "extensions:")
	assert.Contains(t, string(content), "backups:")

	// Without --force and without a terminal, init refuses to overwrite.
	_, _, err = execute(t, "init", "--output", target)
	require.Error(t, err)

	_, _, err = execute(t, "init", "--output", target, "--force")
	require.NoError(t, err)
}
