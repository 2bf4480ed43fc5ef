package hilite

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/hilite/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCmdMissingConfig(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{})
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootCmdInvalidColorMode(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "rules.yaml", "rules:\n  - {keyword: x, color: Red}\n")

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"--config", config, "--color", "sometimes"})
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootCmdRejectsPositionalArgs(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"unexpected-arg"})
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))

	assert.Error(t, rootCmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"version"})
	rootCmd.SetOut(&out)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "hilite version")
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "rules.yaml", `
rules:
  - {keyword: ERROR, color: Red}
  - {keyword: WARN, color: Yellow}
`)

	in := strings.NewReader("ERROR: WARN: ok\n")
	var out bytes.Buffer

	err := run(runOptions{configPath: config, colorize: true}, in, &out)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mERROR\x1b[0m: \x1b[33mWARN\x1b[0m: ok\n", out.String())
}

func TestRunInputFile(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "rules.yaml", "rules:\n  - {keyword: hit, color: Green}\n")
	input := writeFile(t, dir, "input.txt", "a hit here\nnothing\n")

	var out bytes.Buffer
	err := run(runOptions{configPath: config, inputPath: input, colorize: true}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "a \x1b[32mhit\x1b[0m here\nnothing\n", out.String())
}

func TestRunMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "rules.yaml", "rules:\n  - {keyword: x, color: Red}\n")

	var out bytes.Buffer
	err := run(runOptions{
		configPath: config,
		inputPath:  filepath.Join(dir, "nope.txt"),
		colorize:   true,
	}, nil, &out)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStreamRead))
	assert.Empty(t, out.String())
}

func TestRunIgnoreCase(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "rules.yaml", "rules:\n  - {keyword: Error, color: Red}\n")

	var out bytes.Buffer
	err := run(runOptions{configPath: config, ignoreCase: true, colorize: true},
		strings.NewReader("error\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31merror\x1b[0m\n", out.String())
}

func TestRunColorizeOff(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "rules.yaml", "rules:\n  - {keyword: ERROR, color: Red}\n")

	var out bytes.Buffer
	err := run(runOptions{configPath: config, colorize: false},
		strings.NewReader("ERROR here\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "ERROR here\n", out.String())
}

func TestRunColorizeOffStillCompiles(t *testing.T) {
	// A bad user pattern fails the run even when colors are disabled.
	dir := t.TempDir()
	config := writeFile(t, dir, "rules.yaml", "rules:\n  - {keyword: '([bad', color: Red, is_regex: true}\n")

	var out bytes.Buffer
	err := run(runOptions{configPath: config, colorize: false},
		strings.NewReader("text\n"), &out)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternCompile))
}

func TestRootCmdUsageTemplate(t *testing.T) {
	// The custom template renders section headers through the
	// boldUpper/bold template funcs.
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"--help"})
	rootCmd.SetOut(&out)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "USAGE:")
	assert.Contains(t, out.String(), "FLAGS:")
	assert.Contains(t, out.String(), "EXAMPLES:")
}

func TestRunLogsDuration(t *testing.T) {
	var logs bytes.Buffer
	oldLogger := log.Logger
	oldLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&logs)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = oldLogger
		zerolog.SetGlobalLevel(oldLevel)
	}()

	dir := t.TempDir()
	config := writeFile(t, dir, "rules.yaml", "rules:\n  - {keyword: x, color: Red}\n")

	var out bytes.Buffer
	err := run(runOptions{configPath: config, colorize: true},
		strings.NewReader("x\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), `"operation":"run"`)
	assert.Contains(t, logs.String(), `"duration"`)
}

func TestRunIncludedRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "rules:\n  - {keyword: shared, color: Cyan}\n")
	config := writeFile(t, dir, "rules.yaml", `
include: [base.yaml]
rules:
  - {keyword: own, color: Magenta}
`)

	var out bytes.Buffer
	err := run(runOptions{configPath: config, colorize: true},
		strings.NewReader("shared own\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[36mshared\x1b[0m \x1b[35mown\x1b[0m\n", out.String())
}
