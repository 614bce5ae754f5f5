package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EnsureIgnored makes sure the project's .gitignore lists entry, creating the
// file if needed. A line matches when it equals entry after trimming
// whitespace and a leading "/". Returns true when the file was changed.
func EnsureIgnored(projectPath, entry string) (bool, error) {
	ignorePath := filepath.Join(projectPath, ".gitignore")

	data, err := os.ReadFile(ignorePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to read %s: %w", ignorePath, err)
	}

	want := strings.TrimPrefix(strings.TrimSpace(entry), "/")
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimPrefix(strings.TrimSpace(line), "/") == want {
			return false, nil
		}
	}

	var b strings.Builder
	b.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		b.WriteString("\n")
	}
	b.WriteString(entry)
	b.WriteString("\n")

	if err := os.WriteFile(ignorePath, []byte(b.String()), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", ignorePath, err)
	}
	return true, nil
}
