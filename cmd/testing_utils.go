// Testing utilities shared by the command tests: temporary environments,
// output capture and a CLI wired to the real commands.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/envseal/internal/configs"
	logger "github.com/PolarWolf314/envseal/internal/logging"
	"github.com/spf13/cobra"
)

// setupTestEnvironment changes into a fresh project directory and points the
// user settings at temporary directories. It returns the project directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	originalUserSettings := configs.UserEnvsealSettings
	originalProjectSettings := configs.ProjectEnvsealSettings

	// Resolve symlinks so the directory matches what os.Getwd reports.
	tempDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp directory: %v", err)
	}
	projectDir := filepath.Join(tempDir, "project")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		t.Fatalf("Failed to create project directory: %v", err)
	}

	if err := os.Chdir(projectDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.UserEnvsealSettings = originalUserSettings
		configs.ProjectEnvsealSettings = originalProjectSettings
		ResetGlobalState()
	})

	configs.UserEnvsealSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "user", "config"),
		UserDataPath:    filepath.Join(tempDir, "user", "data"),
		Username:        "testuser",
	}

	return projectDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		stderrChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}

// createTestCLI returns the root command set up to run args.
func createTestCLI(args ...string) *cobra.Command {
	ResetGlobalState()
	Logger = logger.Logger{}

	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	RootCmd.SetArgs(args)
	return RootCmd
}

// runCLI executes the CLI with args and returns the combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return captureOutput(func() error {
		return createTestCLI(args...).Execute()
	})
}
