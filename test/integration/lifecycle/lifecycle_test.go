package lifecycle

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/envseal/test/integration/shared"
)

// Tests the full init, set, list and log flow through the CLI.
func TestLifecycle(t *testing.T) {
	projectDir := shared.SetupTestEnvironment(t)

	output, err := shared.RunCLI(t, false, "init")
	if err != nil {
		t.Fatalf("init failed: %v\n%s", err, output)
	}

	if _, err := shared.RunCLI(t, false, "set", "API_KEY=abc123", "DEBUG=true"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := shared.RunCLI(t, false, "set", "API_KEY=rotated"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err = shared.RunCLI(t, false, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if output != "API_KEY\nDEBUG\n" {
		t.Errorf("Expected names, got %q", output)
	}

	// The store file holds names in the clear and values encrypted.
	raw, err := os.ReadFile(filepath.Join(projectDir, ".envseal.json"))
	if err != nil {
		t.Fatalf("Failed to read store: %v", err)
	}
	var doc map[string]string
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Store is not a JSON object of strings: %v", err)
	}
	for name, value := range doc {
		if strings.Contains(value, "abc123") || strings.Contains(value, "rotated") || value == "true" {
			t.Errorf("Value of %s is stored in the clear", name)
		}
		if parts := strings.Split(value, ":"); len(parts) != 3 || len(parts[0]) != 32 || len(parts[1]) != 32 {
			t.Errorf("Value of %s is not iv:tag:ciphertext", name)
		}
	}

	ignore, err := os.ReadFile(filepath.Join(projectDir, ".gitignore"))
	if err != nil || !strings.Contains(string(ignore), ".envseal.json") {
		t.Errorf("Expected .gitignore to list the store, got %q (err: %v)", ignore, err)
	}

	output, err = shared.RunCLI(t, false, "log")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if strings.Count(output, "\n") != 3 {
		t.Errorf("Expected 3 log lines, got:\n%s", output)
	}
	for _, value := range []string{"abc123", "rotated"} {
		if strings.Contains(output, value) {
			t.Errorf("Log output leaks a value: %s", output)
		}
	}
}

// Tests that a store copied to another directory does not open there.
func TestStoreBoundToDirectory(t *testing.T) {
	projectDir := shared.SetupTestEnvironment(t)

	if _, err := shared.RunCLI(t, false, "set", "TOKEN=xyz"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(projectDir, ".envseal.json"))
	if err != nil {
		t.Fatalf("Failed to read store: %v", err)
	}

	movedDir := filepath.Join(filepath.Dir(projectDir), "moved")
	if err := os.MkdirAll(movedDir, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(movedDir, ".envseal.json"), raw, 0600); err != nil {
		t.Fatalf("Failed to copy store: %v", err)
	}
	if err := os.Chdir(movedDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	// Names are still listable without a key.
	output, err := shared.RunCLI(t, false, "list")
	if err != nil || output != "TOKEN\n" {
		t.Fatalf("Expected list to work, got %q (err: %v)", output, err)
	}

	output, err = shared.RunCLI(t, false, "run", "--", "true")
	if err == nil {
		t.Fatal("Expected run to fail in a different directory")
	}
	if !strings.Contains(output, "Could not decrypt TOKEN") {
		t.Errorf("Expected decryption failure naming TOKEN, got: %s", output)
	}
}
