// Package configs manages user settings and preferences for envseal.
//
// # Settings
//
// Global settings are initialized at startup:
//   - UserEnvsealSettings: config and data directories, and the username
//   - ProjectEnvsealSettings: the project directory and its store path
//
// Call InitProjectSettings (or InitProjectSettingsAt) before accessing
// ProjectEnvsealSettings. The project is the working directory; envseal does
// not search parent directories.
//
// # User Configuration
//
// An optional TOML file at <config dir>/envseal/config.toml:
//
//	[preferences]
//	manage_gitignore = true  # init adds .envseal.json to .gitignore
//	audit = true             # record operations in the audit log
//
// A missing file means defaults. Unknown keys are reported as errors.
// Key derivation inputs are not configurable.
package configs
