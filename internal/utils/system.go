package utils

import (
	"errors"
	"os"
	"os/user"
)

// lookupUser reports the current OS account. Replaced in tests.
var lookupUser = user.Current

// GetUsername returns the current username. When the OS account lookup fails
// or reports no name, the USER and then USERNAME environment variables are
// used.
func GetUsername() (string, error) {
	if u, err := lookupUser(); err == nil && u.Username != "" {
		return u.Username, nil
	}

	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name, nil
		}
	}

	return "", errors.New("could not determine the current username")
}
