package secrets

import (
	"crypto/sha256"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/envseal/internal/utils"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of a derived key in bytes (AES-256).
	KeySize = 32

	// KDFIterations is the PBKDF2 iteration count. Changing it changes every derived key.
	KDFIterations = 100000

	// FallbackUsername is used when the OS does not report an account name.
	FallbackUsername = "default"
)

// Identity is the machine-local context a key is derived from. It is passed in
// explicitly so nothing in this package reads ambient process state.
type Identity struct {
	// Username is the OS account name.
	Username string

	// WorkDir is the directory relative project paths are resolved against.
	WorkDir string
}

// CurrentIdentity reads the account name and working directory of this process.
func CurrentIdentity() Identity {
	username, err := utils.GetUsername()
	if err != nil || username == "" {
		username = FallbackUsername
	}

	wd, err := os.Getwd()
	if err != nil {
		wd, _ = filepath.Abs(".")
	}

	return Identity{Username: username, WorkDir: wd}
}

// Canonicalize returns path as a clean absolute path. Relative paths, including
// the empty string, are resolved against the identity's WorkDir. The path does
// not have to exist and symlinks are left alone.
func (id Identity) Canonicalize(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(id.WorkDir, path)
}

// AccountName returns the account name keys are derived from.
func (id Identity) AccountName() string {
	if id.Username == "" {
		return FallbackUsername
	}
	return id.Username
}

// saltInput is the string both the PBKDF2 password and, hashed, the salt are taken from.
func (id Identity) saltInput(projectPath string) string {
	return id.AccountName() + ":" + id.Canonicalize(projectPath)
}

// DeriveKey derives the store key for projectPath. The same account name and
// canonical path always produce the same key; there is no stored salt.
func DeriveKey(id Identity, projectPath string) []byte {
	input := []byte(id.saltInput(projectPath))
	salt := sha256.Sum256(input)
	return pbkdf2.Key(input, salt[:], KDFIterations, KeySize, sha256.New)
}
