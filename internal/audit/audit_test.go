package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PolarWolf314/envseal/internal/configs"
)

func setupAuditTest(t *testing.T, projectPath string) string {
	t.Helper()

	dataDir := filepath.Join(t.TempDir(), "data", "envseal")

	originalUser := configs.UserEnvsealSettings
	originalProject := configs.ProjectEnvsealSettings
	configs.UserEnvsealSettings = &configs.UserSettings{
		UserDataPath: dataDir,
		Username:     "alice",
	}
	configs.ProjectEnvsealSettings = &configs.ProjectSettings{
		ProjectPath: projectPath,
	}
	t.Cleanup(func() {
		configs.UserEnvsealSettings = originalUser
		configs.ProjectEnvsealSettings = originalProject
	})

	return filepath.Join(dataDir, LogFileName)
}

func TestLog_CreatesFile(t *testing.T) {
	logPath := setupAuditTest(t, "/srv/app")

	Log(NewEntry("init"))

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Audit log file was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected permissions 0600, got %o", perm)
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	setupAuditTest(t, "/srv/app")

	Log(NewEntry("init"))
	entry := NewEntry("set")
	entry.Names = []string{"API_KEY"}
	Log(entry)
	Log(NewEntry("run"))

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	expectedOps := []string{"init", "set", "run"}
	for i, op := range expectedOps {
		if entries[i].Operation != op {
			t.Errorf("Entry %d: expected op %q, got %q", i, op, entries[i].Operation)
		}
		if entries[i].User != "alice" {
			t.Errorf("Entry %d: expected user alice, got %q", i, entries[i].User)
		}
		if entries[i].Project != "/srv/app" {
			t.Errorf("Entry %d: expected project /srv/app, got %q", i, entries[i].Project)
		}
	}
	if entries[0].ID == entries[1].ID {
		t.Error("Expected distinct entry IDs")
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	setupAuditTest(t, "/srv/app")

	Log(NewEntry("init"))

	entries, err := ReadEntries()
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d (err: %v)", len(entries), err)
	}

	if _, err := time.Parse(TimestampLayout, entries[0].Timestamp); err != nil {
		t.Errorf("Timestamp %q does not match layout: %v", entries[0].Timestamp, err)
	}
	if !strings.HasSuffix(entries[0].Timestamp, "Z") {
		t.Errorf("Expected UTC timestamp, got %q", entries[0].Timestamp)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	logPath := setupAuditTest(t, "/srv/app")

	Log(NewEntry("init"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &raw); err != nil {
		t.Fatalf("Audit line is not valid JSON: %v", err)
	}
	for _, field := range []string{"names", "reset"} {
		if _, ok := raw[field]; ok {
			t.Errorf("Expected %q to be omitted, got %v", field, raw[field])
		}
	}
	for _, field := range []string{"id", "ts", "user", "op", "project"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("Expected %q to be present", field)
		}
	}
}

func TestLog_NoDataPath(t *testing.T) {
	setupAuditTest(t, "/srv/app")
	configs.UserEnvsealSettings.UserDataPath = ""

	// Should not panic.
	Log(NewEntry("init"))

	if LogPath() != "" {
		t.Errorf("Expected empty log path, got %q", LogPath())
	}
	entries, err := ReadEntries()
	if err != nil || entries != nil {
		t.Errorf("Expected no entries and no error, got %v, %v", entries, err)
	}
}

func TestLog_UnwritableDirectory(t *testing.T) {
	setupAuditTest(t, "/srv/app")

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	configs.UserEnvsealSettings.UserDataPath = filepath.Join(blocker, "envseal")

	// Best effort: must not panic or surface an error.
	Log(NewEntry("init"))
}

func TestReadEntries_MissingLog(t *testing.T) {
	setupAuditTest(t, "/srv/app")

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"op":"init","user":"alice"}
not json
{"op":"set","names":["A"]}

{"op":"run"`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Operation != "set" || len(entries[1].Names) != 1 || entries[1].Names[0] != "A" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}

func TestForProject(t *testing.T) {
	entries := []Entry{
		{Operation: "init", Project: "/srv/app"},
		{Operation: "init", Project: "/srv/other"},
		{Operation: "set", Project: "/srv/app"},
	}

	filtered := ForProject(entries, "/srv/app")
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(filtered))
	}
	if filtered[0].Operation != "init" || filtered[1].Operation != "set" {
		t.Errorf("Expected log order to be kept, got %+v", filtered)
	}

	if ForProject(entries, "/srv/none") != nil {
		t.Error("Expected nil for a project without entries")
	}
}
