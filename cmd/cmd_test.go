package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/observability"
)

// executeCommand runs a fresh root command with isolated global state. Log
// output and the pipeline cache are redirected into temp directories so test
// runs leave nothing behind.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	observability.ResetForTest()
	cfgFile = ""
	t.Setenv("REIFY_LOGGER_LOG_FILE", filepath.Join(t.TempDir(), "reify.log"))
	t.Setenv("REIFY_LOGGER_LEVEL", "error")
	t.Setenv("REIFY_PROCESSING_CACHE_DIRECTORY", t.TempDir())

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLanguagesCommand(t *testing.T) {
	out, err := executeCommand(t, "languages")
	require.NoError(t, err)

	for _, lang := range schemas.SupportedLanguages() {
		assert.Contains(t, out, string(lang))
	}
	assert.Contains(t, out, "fastapi")
	assert.Contains(t, out, "gin")
	assert.Contains(t, out, "flask")
}

func TestVersionFlag(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestProcessCommandWritesProject(t *testing.T) {
	outputDir := t.TempDir()

	out, err := executeCommand(t,
		"process", "Build a REST API to manage tasks with user authentication",
		"-o", outputDir, "-l", "python")
	require.NoError(t, err)

	entryPoint := filepath.Join(outputDir, "python", "main.py")
	content, err := os.ReadFile(entryPoint)
	require.NoError(t, err)
	assert.NotEmpty(t, content)

	_, err = os.Stat(filepath.Join(outputDir, "python", "Dockerfile"))
	require.NoError(t, err)

	assert.Contains(t, out, "python")
	assert.Contains(t, out, "main.py")
	assert.Contains(t, out, "Architecture:")
}

func TestProcessCommandMultipleLanguages(t *testing.T) {
	outputDir := t.TempDir()

	_, err := executeCommand(t,
		"process", "Create a chat service that stores messages",
		"-o", outputDir, "-l", "go,rust")
	require.NoError(t, err)

	for _, entry := range []string{
		filepath.Join(outputDir, "go", "main.go"),
		filepath.Join(outputDir, "rust", "main.rs"),
	} {
		_, err := os.Stat(entry)
		require.NoError(t, err, entry)
	}
}

func TestProcessCommandJSON(t *testing.T) {
	out, err := executeCommand(t,
		"process", "Build a dashboard that displays sales data",
		"--json", "-l", "typescript")
	require.NoError(t, err)

	var result schemas.ProcessingResult
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Contains(t, result.GeneratedCode, schemas.LanguageTypeScript)
	require.NotNil(t, result.Architecture)
	assert.NotEmpty(t, result.Architecture.Components)
}

func TestProcessCommandRequiresStatements(t *testing.T) {
	_, err := executeCommand(t, "process")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one statement")
}

func TestProcessCommandRejectsUnknownLanguage(t *testing.T) {
	_, err := executeCommand(t, "process", "Build something", "-l", "cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cobol")
}

func TestDeployCommandRejectsUnknownLanguage(t *testing.T) {
	_, err := executeCommand(t, "deploy", "Build something", "-l", "fortran")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fortran")
}

func TestDeployCommandRejectsUnknownProvider(t *testing.T) {
	_, err := executeCommand(t, "deploy", "Build something", "--provider", "heroku")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heroku")
}

func TestCollectStatementsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statements.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		"# requirements\n\nBuild a todo app\nIt must support offline use\n",
	), 0o644))

	statements, err := collectStatements([]string{"Store data in a database"}, path)
	require.NoError(t, err)
	require.Len(t, statements, 3)
	assert.Equal(t, "Store data in a database", statements[0].Content)
	assert.Equal(t, "Build a todo app", statements[1].Content)
	assert.Equal(t, schemas.StatementFunctional, statements[2].Type)
}

func TestCollectStatementsMissingFile(t *testing.T) {
	_, err := collectStatements(nil, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement file")
}

func TestResolveLanguageFlags(t *testing.T) {
	langs, err := resolveLanguageFlags([]string{"Python", " go "})
	require.NoError(t, err)
	assert.Equal(t, []schemas.Language{schemas.LanguagePython, schemas.LanguageGo}, langs)

	_, err = resolveLanguageFlags([]string{"brainfuck"})
	require.Error(t, err)
}
