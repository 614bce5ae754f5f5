package load

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
	"github.com/PolarWolf314/envseal/internal/secrets"
)

func saveSecrets(t *testing.T, dir string, values map[string]string) {
	t.Helper()
	store := secrets.NewStoreAt(secrets.OSFilesystem(), secrets.CurrentIdentity(), dir)
	for name, value := range values {
		if err := store.Save(name, value); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	expected := map[string]string{"ENVSEAL_TEST_A": "1", "ENVSEAL_TEST_B": "two words"}
	saveSecrets(t, dir, expected)

	values, err := Read(dir)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(values, expected) {
		t.Errorf("Expected %v, got %v", expected, values)
	}
}

func TestReadMissingStore(t *testing.T) {
	values, err := Read(t.TempDir())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("Expected no values, got %v", values)
	}
}

func TestReadPropagatesErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, secrets.StoreFileName), []byte("[1, 2]"), 0600); err != nil {
		t.Fatalf("Failed to write store: %v", err)
	}

	_, err := Read(dir)
	if !errors.Is(err, kerrors.ErrCorruptStore) {
		t.Errorf("Expected ErrCorruptStore, got %v", err)
	}
	if err := LoadDir(dir); !errors.Is(err, kerrors.ErrCorruptStore) {
		t.Errorf("Expected LoadDir to return ErrCorruptStore, got %v", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	saveSecrets(t, dir, map[string]string{
		"ENVSEAL_LOAD_NEW":      "from-store",
		"ENVSEAL_LOAD_EXISTING": "from-store",
	})

	t.Setenv("ENVSEAL_LOAD_EXISTING", "from-env")
	t.Setenv("ENVSEAL_LOAD_NEW", "")
	os.Unsetenv("ENVSEAL_LOAD_NEW")

	if err := LoadDir(dir); err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	if got := os.Getenv("ENVSEAL_LOAD_NEW"); got != "from-store" {
		t.Errorf("Expected ENVSEAL_LOAD_NEW=from-store, got %q", got)
	}
	if got := os.Getenv("ENVSEAL_LOAD_EXISTING"); got != "from-env" {
		t.Errorf("Expected existing variable to win, got %q", got)
	}
}

func TestLoadUsesWorkingDirectory(t *testing.T) {
	// The store is bound to the path os.Getwd reports, which has symlinks resolved.
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	saveSecrets(t, dir, map[string]string{"ENVSEAL_LOAD_CWD": "yes"})

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(originalDir)

	t.Setenv("ENVSEAL_LOAD_CWD", "")
	os.Unsetenv("ENVSEAL_LOAD_CWD")

	if err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := os.Getenv("ENVSEAL_LOAD_CWD"); got != "yes" {
		t.Errorf("Expected ENVSEAL_LOAD_CWD=yes, got %q", got)
	}
}

func TestEnviron(t *testing.T) {
	tests := []struct {
		name     string
		base     []string
		values   map[string]string
		expected []string
	}{
		{
			"AddsSorted",
			[]string{"PATH=/bin"},
			map[string]string{"B": "2", "A": "1"},
			[]string{"PATH=/bin", "A=1", "B=2"},
		},
		{
			"BaseWins",
			[]string{"A=env"},
			map[string]string{"A": "store", "B": "store"},
			[]string{"A=env", "B=store"},
		},
		{
			"EmptyBaseValueStillWins",
			[]string{"A="},
			map[string]string{"A": "store"},
			[]string{"A="},
		},
		{
			"ValueWithEquals",
			nil,
			map[string]string{"DSN": "a=b"},
			[]string{"DSN=a=b"},
		},
		{
			"NoValues",
			[]string{"PATH=/bin"},
			nil,
			[]string{"PATH=/bin"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Environ(tc.base, tc.values)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	keys := Keys([]string{"A=1", "B=", "=C:=C:\\", "broken"})
	expected := map[string]bool{"A": true, "B": true}
	if !reflect.DeepEqual(keys, expected) {
		t.Errorf("Expected %v, got %v", expected, keys)
	}
}
