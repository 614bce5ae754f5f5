// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and driving the real envseal CLI.
package shared

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/envseal/cmd"
	"github.com/PolarWolf314/envseal/internal/configs"
	logger "github.com/PolarWolf314/envseal/internal/logging"
)

// SetupTestEnvironment changes into a fresh project directory and redirects
// the user config and data directories. The real username is kept so stores
// written through the CLI open with the public load package. Returns the
// project directory.
func SetupTestEnvironment(t *testing.T) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	originalUserSettings := configs.UserEnvsealSettings
	originalProjectSettings := configs.ProjectEnvsealSettings

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
		cmd.ResetGlobalState()
	})

	configs.UserEnvsealSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "user", "config"),
		UserDataPath:    filepath.Join(tempDir, "user", "data"),
		Username:        originalUserSettings.Username,
	}

	return projectDir
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
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

// RunCLI executes envseal with args and returns the combined output.
func RunCLI(t *testing.T, verboseFlag bool, args ...string) (string, error) {
	t.Helper()

	cmd.ResetGlobalState()
	cmd.SetVerbose(verboseFlag)
	cmd.SetLogger(logger.Logger{Verbose: verboseFlag})

	if args == nil {
		args = []string{}
	}
	root := cmd.GetRootCmd()
	root.SetArgs(args)

	return CaptureOutput(root.Execute)
}
