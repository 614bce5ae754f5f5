package secrets

import (
	"fmt"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterNames returns the names matching any of patterns, keeping their order.
// Patterns use doublestar syntax (*, ?, [...], {a,b}). No patterns means no filtering.
func FilterNames(names []string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return names, nil
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", kerrors.ErrInvalidPattern, pattern)
		}
	}

	var matched []string
	for _, name := range names {
		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", kerrors.ErrInvalidPattern, pattern, err)
			}
			if ok {
				matched = append(matched, name)
				break
			}
		}
	}

	return matched, nil
}
