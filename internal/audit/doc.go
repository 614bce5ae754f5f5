// Package audit records envseal operations in a machine-local log.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	<data dir>/envseal/audit.jsonl
//
// Each entry contains an ID, a UTC timestamp with microseconds, the local
// username, the operation (init, set or run), the project path, and for set
// and run the secret names involved. Values are never recorded.
//
// # Usage
//
//	entry := audit.NewEntry("set")
//	entry.Names = names
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails the operation continues
// without error. Whether to log at all is decided by the caller from the
// user's preferences.
//
// # Reading Logs
//
// ReadEntries parses the whole log and ForProject narrows it to one project.
// Malformed lines are skipped to tolerate partial writes.
package audit
