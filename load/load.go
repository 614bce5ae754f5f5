// Package load injects the secrets of an envseal store into a running
// program's environment.
//
// A program that calls Load at startup sees the stored secrets as ordinary
// environment variables:
//
//	func main() {
//		if err := load.Load(); err != nil {
//			log.Fatal(err)
//		}
//		apiKey := os.Getenv("API_KEY")
//	}
//
// Variables that are already set are never overridden. A project without a
// store file loads nothing and is not an error.
package load

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/PolarWolf314/envseal/internal/secrets"
)

// Load loads the store of the working directory into the process environment.
func Load() error {
	return LoadDir("")
}

// LoadDir loads the store of the project rooted at dir into the process
// environment. A relative dir is resolved against the working directory.
func LoadDir(dir string) error {
	values, err := Read(dir)
	if err != nil {
		return err
	}

	for _, name := range sortedKeys(values) {
		if _, ok := os.LookupEnv(name); ok {
			continue
		}
		if err := os.Setenv(name, values[name]); err != nil {
			return fmt.Errorf("failed to set %q: %w", name, err)
		}
	}

	return nil
}

// Read decrypts the store of the project rooted at dir without touching the
// environment. Decryption and parse errors are returned unchanged.
func Read(dir string) (map[string]string, error) {
	store := secrets.NewStoreAt(secrets.OSFilesystem(), secrets.CurrentIdentity(), dir)
	return store.LoadAll()
}

// Environ merges values into base, a list of KEY=value pairs in the form
// os.Environ returns. Keys already present in base win. Added pairs follow
// base, sorted by name.
func Environ(base []string, values map[string]string) []string {
	present := Keys(base)

	env := make([]string, 0, len(base)+len(values))
	env = append(env, base...)
	for _, name := range sortedKeys(values) {
		if present[name] {
			continue
		}
		env = append(env, name+"="+values[name])
	}
	return env
}

// Keys returns the set of variable names in env.
func Keys(env []string) map[string]bool {
	keys := make(map[string]bool, len(env))
	for _, kv := range env {
		// Windows keeps per-drive directories in entries like "=C:=C:\".
		key, _, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		keys[key] = true
	}
	return keys
}

func sortedKeys(values map[string]string) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
