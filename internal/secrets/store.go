package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
)

// StoreFileName is the name of the store file inside the project root.
const StoreFileName = ".envseal.json"

const storeFileMode os.FileMode = 0600

// Store reads and writes the encrypted secret store of one project.
type Store struct {
	fs       Filesystem
	identity Identity
	root     string
}

// NewStoreAt returns the store rooted at projectPath on fsys. projectPath is
// canonicalised against the identity, so an empty path means its WorkDir.
func NewStoreAt(fsys Filesystem, identity Identity, projectPath string) *Store {
	return &Store{
		fs:       fsys,
		identity: identity,
		root:     identity.Canonicalize(projectPath),
	}
}

// Root returns the canonical project root the store belongs to.
func (s *Store) Root() string {
	return s.root
}

// Path returns the location of the store file.
func (s *Store) Path() string {
	return filepath.Join(s.root, StoreFileName)
}

// Exists reports whether the store file is present.
func (s *Store) Exists() bool {
	_, err := s.fs.Stat(s.Path())
	return err == nil
}

// Init creates an empty store file. It returns ErrAlreadyExists if one is
// already present; existing content is never merged or replaced.
func (s *Store) Init() error {
	if s.Exists() {
		return fmt.Errorf("%w: %s", kerrors.ErrAlreadyExists, s.Path())
	}

	data, err := newDocument().marshal()
	if err != nil {
		return err
	}

	if err := writeFileExclusive(s.fs, s.Path(), data, storeFileMode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", kerrors.ErrAlreadyExists, s.Path())
		}
		return fmt.Errorf("failed to create secret store: %w", err)
	}

	return nil
}

// Assignment is a name and the plaintext value to store under it.
type Assignment struct {
	Name  string
	Value string
}

// SaveReport describes what SaveAll changed. Secret values never appear in it.
type SaveReport struct {
	// Added holds names that were not in the store before, in argument order.
	Added []string
	// Replaced holds names whose previous value was overwritten.
	Replaced []string
	// Reset is set when an unparseable store file was discarded.
	Reset bool
}

// Save encrypts value and stores it under name, replacing any previous value.
// A missing store file is created. A store file that cannot be parsed is
// discarded and rewritten with just this entry, so a corrupt store can be
// recovered by setting a value again.
func (s *Store) Save(name, value string) error {
	_, err := s.SaveAll([]Assignment{{Name: name, Value: value}})
	return err
}

// SaveAll stores every assignment with a single write, following the rules
// of Save. A name given twice keeps the last value. Names must be valid UTF-8
// so they survive the JSON encoding unchanged.
func (s *Store) SaveAll(assignments []Assignment) (*SaveReport, error) {
	for _, a := range assignments {
		if !utf8.ValidString(a.Name) {
			return nil, fmt.Errorf("%w: %q is not valid UTF-8", kerrors.ErrInvalidSecretName, a.Name)
		}
	}

	report := &SaveReport{}

	doc, err := s.read()
	switch {
	case err == nil:
	case isCorrupt(err):
		doc = newDocument()
		report.Reset = true
	default:
		return nil, err
	}

	key := DeriveKey(s.identity, s.root)
	seen := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		encrypted, err := Encrypt(a.Value, key)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt secret %q: %w", a.Name, err)
		}

		replaced := doc.set(a.Name, encrypted)
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		if replaced {
			report.Replaced = append(report.Replaced, a.Name)
		} else {
			report.Added = append(report.Added, a.Name)
		}
	}

	data, err := doc.marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to serialise secret store: %w", err)
	}

	if err := replaceFile(s.fs, s.Path(), data, storeFileMode); err != nil {
		return nil, fmt.Errorf("failed to write secret store: %w", err)
	}

	return report, nil
}

// LoadAll decrypts every stored secret. A missing store yields an empty map.
// If any entry fails to decrypt the whole call fails with a DecryptionError
// naming it and no values are returned.
func (s *Store) LoadAll() (map[string]string, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	secrets := make(map[string]string, len(doc.names))
	if len(doc.names) == 0 {
		return secrets, nil
	}

	key := DeriveKey(s.identity, s.root)
	for _, name := range doc.names {
		plaintext, err := Decrypt(doc.values[name], key)
		if err != nil {
			return nil, &kerrors.DecryptionError{Name: name, Err: err}
		}
		secrets[name] = plaintext
	}

	return secrets, nil
}

// ListNames returns the stored names sorted by byte value. It derives no key
// and decrypts nothing. A missing store yields an empty list.
func (s *Store) ListNames() ([]string, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.sortedNames(), nil
}

// read loads and parses the store file. A missing file is an empty document.
func (s *Store) read() (*document, error) {
	data, err := readFile(s.fs, s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return newDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read secret store %s: %w", s.Path(), err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrCorruptStore, s.Path(), err)
	}

	return doc, nil
}

func isCorrupt(err error) bool {
	return errors.Is(err, kerrors.ErrCorruptStore)
}
