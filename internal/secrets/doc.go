// Package secrets provides the cryptographic engine and the encrypted store
// file for envseal.
//
// # Key Derivation
//
// Keys are never stored. Each operation derives a 256-bit key from the OS
// account name and the canonical project path:
//
//	input = username + ":" + canonical_path
//	key   = PBKDF2-HMAC-SHA256(input, SHA256(input), 100000 iterations, 32 bytes)
//
// The same string serves as the password and, hashed, as the salt. This keeps
// the scheme free of external state; changing it would orphan every existing
// store, so it must stay as is.
//
// Identity carries the account name and working directory explicitly, so the
// derivation is a pure function of its arguments and can be tested with a
// simulated user.
//
// # Value Encryption
//
// Each value is sealed with AES-256-GCM using a fresh random 16-byte IV and
// stored as three hex fields:
//
//	hex(iv):hex(tag):hex(ciphertext)
//
// A wrong key and a tampered value fail the same way, with
// ErrAuthenticationFailure.
//
// # Store File
//
// The store is a JSON object in .envseal.json at the project root, mapping
// secret names to encrypted values. Names stay readable so listing never needs
// a key. Writes go through a temp file and a rename.
//
// Store talks to disk through Filesystem, a subset of absfs.FileSystem. The
// host filesystem is used in production and memfs in tests.
package secrets
