package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
)

const ConfigFileName = "config.toml"

type UserConfig struct {
	Preferences Preferences `toml:"preferences"`
}

// Preferences are optional; a nil field means the default applies.
type Preferences struct {
	ManageGitignore *bool `toml:"manage_gitignore,omitempty"`
	Audit           *bool `toml:"audit,omitempty"`
}

// ManageGitignore reports whether init should add the store file to the
// project's .gitignore. Defaults to true.
func (c *UserConfig) ManageGitignore() bool {
	return c.Preferences.ManageGitignore == nil || *c.Preferences.ManageGitignore
}

// AuditEnabled reports whether operations are recorded in the audit log.
// Defaults to true.
func (c *UserConfig) AuditEnabled() bool {
	return c.Preferences.Audit == nil || *c.Preferences.Audit
}

// PreferenceKeys lists the keys accepted by SetPreference, in display order.
var PreferenceKeys = []string{"manage_gitignore", "audit"}

// SetPreference sets the preference named by its TOML key. The value is
// parsed with strconv.ParseBool.
func (c *UserConfig) SetPreference(key, value string) error {
	var target **bool
	switch key {
	case "manage_gitignore":
		target = &c.Preferences.ManageGitignore
	case "audit":
		target = &c.Preferences.Audit
	default:
		return fmt.Errorf("%w: unknown key %q", kerrors.ErrInvalidPreference, key)
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%w: %s expects true or false, got %q", kerrors.ErrInvalidPreference, key, value)
	}
	*target = BoolPtr(b)
	return nil
}

// UserConfigPath returns the location of the user config file.
func UserConfigPath() string {
	return filepath.Join(UserEnvsealSettings.UserConfigsPath, ConfigFileName)
}

// LoadUserConfig loads the user configuration. A missing file yields the defaults.
func LoadUserConfig() (*UserConfig, error) {
	configPath := UserConfigPath()

	config := &UserConfig{}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(UserConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// BoolPtr is a helper for filling Preferences.
func BoolPtr(b bool) *bool {
	return &b
}
