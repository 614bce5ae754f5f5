package audit

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/envseal/internal/configs"
	"github.com/google/uuid"
)

const (
	LogFileName     = "audit.jsonl"
	TimestampLayout = "2006-01-02T15:04:05.000000Z"
)

// Entry represents a single audit log entry. It never carries secret values.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"`   // UTC with microseconds.
	User      string `json:"user"` // Local username.
	Operation string `json:"op"`   // init, set or run.
	Project   string `json:"project"`

	Names []string `json:"names,omitempty"` // For set and run.
	Reset bool     `json:"reset,omitempty"` // Set found a corrupt store and started over.
}

// NewEntry returns an entry for op with the ID, user and project filled in.
func NewEntry(op string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		User:      configs.UserEnvsealSettings.Username,
		Operation: op,
		Project:   configs.ProjectEnvsealSettings.ProjectPath,
	}
}

// Log appends an entry to the audit log.
// Failures are ignored: operations must not fail because auditing did.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampLayout)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the machine-local audit log.
// Returns empty string if the user data directory is unknown.
func LogPath() string {
	dataPath := configs.UserEnvsealSettings.UserDataPath
	if dataPath == "" {
		return ""
	}
	return filepath.Join(dataPath, LogFileName)
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// ForProject keeps the entries recorded for projectPath, in log order.
func ForProject(entries []Entry, projectPath string) []Entry {
	var filtered []Entry
	for _, entry := range entries {
		if entry.Project == projectPath {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
