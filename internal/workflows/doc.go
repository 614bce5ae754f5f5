// Package workflows provides high-level orchestration for envseal commands.
//
// Each workflow handles a single command's business logic, independent of
// CLI concerns like flag parsing, spinners and output formatting. The cmd
// package parses arguments, calls a workflow and renders its result.
//
// Workflows handle everything else:
//   - Binding the project settings and loading user preferences
//   - Performing the store operation
//   - Keeping .gitignore up to date on init
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Init: creates an empty store in the project
//   - Set: encrypts and stores secrets
//   - List: lists stored names, optionally filtered by pattern
//   - Run: runs a command with the secrets in its environment
//   - Log: reads the project's audit entries
//
// # Error Handling
//
// Workflows return sentinel errors from the internal/errors package so the
// CLI can choose a message without string matching:
//
//	result, err := workflows.Init(ctx, opts)
//	if errors.Is(err, kerrors.ErrAlreadyExists) {
//	    // Suggest envseal set instead
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Run uses it to stop the child process.
package workflows
