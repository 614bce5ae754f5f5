// Package errors provides typed error values for envseal.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Store errors: ErrAlreadyExists, ErrCorruptStore
//   - Crypto errors: ErrMalformedValue, ErrAuthenticationFailure, ErrDecryptionFailure
//   - Input errors: ErrInvalidSecretName, ErrInvalidAssignment, ErrInvalidPattern,
//     ErrNoCommand, ErrNoValue, ErrInvalidPreference
//
// ErrAuthenticationFailure covers both a tampered value and a wrong key. The
// two cases are deliberately not told apart.
//
// DecryptionError wraps a crypto error with the name of the secret that
// failed. It matches both ErrDecryptionFailure and its cause:
//
//	_, err := store.LoadAll()
//	var derr *kerrors.DecryptionError
//	if errors.As(err, &derr) {
//	    // derr.Name is the offending secret
//	}
//
// No error in this module carries a plaintext secret value. Names and paths
// are the only user data that may appear in messages.
package errors
