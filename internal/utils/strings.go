package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
	"github.com/PolarWolf314/envseal/internal/ui"
)

// FormatNames formats a slice of secret names into a readable list.
func FormatNames(names []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString("    - ")
		b.WriteString(ui.Name.Sprint(name))
		b.WriteString("\n")
	}
	return b.String()
}

// ValidateSecretName applies the command line naming rule: non-empty, valid
// UTF-8, no "=" and no NUL byte.
func ValidateSecretName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", kerrors.ErrInvalidSecretName)
	case !utf8.ValidString(name):
		return fmt.Errorf("%w: %q is not valid UTF-8", kerrors.ErrInvalidSecretName, name)
	case strings.Contains(name, "="):
		return fmt.Errorf("%w: %q contains '='", kerrors.ErrInvalidSecretName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: name contains a NUL byte", kerrors.ErrInvalidSecretName)
	}
	return nil
}

// ParseAssignment splits NAME=value at the first "=". The value may be empty
// and may itself contain "=". The error never includes the value.
func ParseAssignment(arg string) (name, value string, err error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		// Without '=' the argument holds no value, so it is safe to show.
		return "", "", fmt.Errorf("%w: %q is not of the form NAME=value", kerrors.ErrInvalidAssignment, arg)
	}
	if name == "" {
		return "", "", fmt.Errorf("%w: missing name before '='", kerrors.ErrInvalidAssignment)
	}
	if err := ValidateSecretName(name); err != nil {
		return "", "", err
	}
	return name, value, nil
}
