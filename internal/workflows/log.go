package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PolarWolf314/envseal/internal/audit"
	"github.com/PolarWolf314/envseal/internal/configs"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// ProjectPath is the project root. If empty, uses the working directory.
	ProjectPath string

	// Limit is the maximum number of entries to return, keeping the most
	// recent. 0 means no limit.
	Limit int
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// LogPath is the location of the audit log.
	LogPath string

	// Entries are this project's entries, oldest first.
	Entries []audit.Entry

	// TotalEntriesBeforeLimit is the number of this project's entries.
	TotalEntriesBeforeLimit int
}

// Log reads the audit entries recorded for the project. A missing log
// yields no entries.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if _, err := bindProject(opts.ProjectPath); err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	filtered := audit.ForProject(entries, configs.ProjectEnvsealSettings.ProjectPath)
	result := &LogResult{
		LogPath:                 audit.LogPath(),
		TotalEntriesBeforeLimit: len(filtered),
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[len(filtered)-opts.Limit:]
	}

	result.Entries = filtered
	return result, nil
}

// FormatDateTime formats a timestamp string to YYYY-MM-DD HH:MM:SS format.
func FormatDateTime(ts string) string {
	t, err := time.Parse(audit.TimestampLayout, ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	if err != nil {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDetails summarises an entry's names for one-line output.
func FormatDetails(e audit.Entry) string {
	details := ""
	switch {
	case len(e.Names) == 0:
	case len(e.Names) > 3:
		details = fmt.Sprintf("%d secrets", len(e.Names))
	default:
		details = strings.Join(e.Names, ", ")
	}

	if e.Reset {
		if details != "" {
			details += " "
		}
		details += "(store reset)"
	}
	return details
}
