package errors

import (
	"errors"
	"fmt"
)

// Store errors indicate problems with the secret store file itself.
var (
	// ErrAlreadyExists indicates a store file is already present where init would create one.
	ErrAlreadyExists = errors.New("secret store already exists")

	// ErrCorruptStore indicates the store file could not be parsed as a name to value mapping.
	ErrCorruptStore = errors.New("secret store is corrupt")
)

// Cryptographic errors indicate failures while encrypting or decrypting a single value.
var (
	// ErrMalformedValue indicates an encrypted value does not match the iv:tag:ciphertext format.
	ErrMalformedValue = errors.New("malformed encrypted value")

	// ErrAuthenticationFailure indicates the value was tampered with or the key is wrong.
	ErrAuthenticationFailure = errors.New("authentication failed")

	// ErrDecryptionFailure indicates a named secret in the store could not be decrypted.
	ErrDecryptionFailure = errors.New("failed to decrypt secret")

	// ErrInvalidKeyLength indicates the symmetric key has an unexpected length.
	ErrInvalidKeyLength = errors.New("invalid symmetric key length")
)

// Input errors indicate invalid user input at the command layer.
var (
	// ErrInvalidSecretName indicates a secret name that cannot be used as an environment variable.
	ErrInvalidSecretName = errors.New("invalid secret name")

	// ErrInvalidAssignment indicates an argument that is not of the form NAME=value.
	ErrInvalidAssignment = errors.New("invalid assignment")

	// ErrInvalidPattern indicates a malformed name filter pattern.
	ErrInvalidPattern = errors.New("invalid name pattern")

	// ErrNoCommand indicates run was invoked without a command to execute.
	ErrNoCommand = errors.New("no command given")

	// ErrNoValue indicates no value could be read for a secret.
	ErrNoValue = errors.New("no value provided")

	// ErrInvalidPreference indicates an unknown preference key or a value it cannot take.
	ErrInvalidPreference = errors.New("invalid preference")
)

// DecryptionError reports which stored secret failed to decrypt. The cause is
// either ErrAuthenticationFailure or ErrMalformedValue. It never carries the
// value itself.
type DecryptionError struct {
	Name string
	Err  error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrDecryptionFailure, e.Name, e.Err)
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is reports ErrDecryptionFailure as matching so callers can test for the kind
// without caring about the cause.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailure
}
