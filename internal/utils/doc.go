// Package utils provides shared helpers for envseal.
//
// # Filesystem
//   - EnsureIgnored: adds the store file to the project's .gitignore
//
// # System
//   - GetUsername: returns the current system username
//
// # Strings
//   - ParseAssignment: splits NAME=value arguments
//   - ValidateSecretName: the command line naming rule
//   - FormatNames: formats secret names for output
//
// # I/O and terminal
//   - ReadStdin, TrimTrailingNewline: piped secret values
//   - ReadSecret, IsTerminal: hidden prompt for interactive values
package utils
