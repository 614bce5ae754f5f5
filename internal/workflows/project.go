package workflows

import (
	"fmt"

	"github.com/PolarWolf314/envseal/internal/audit"
	"github.com/PolarWolf314/envseal/internal/configs"
	"github.com/PolarWolf314/envseal/internal/secrets"
)

// bindProject points the project settings at projectPath, or at the working
// directory when it is empty, and loads the user's preferences.
func bindProject(projectPath string) (*configs.UserConfig, error) {
	var err error
	if projectPath == "" {
		err = configs.InitProjectSettings()
	} else {
		err = configs.InitProjectSettingsAt(projectPath)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing project settings: %w", err)
	}

	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	return userConfig, nil
}

// projectStore returns the store of the bound project for the current user.
func projectStore() *secrets.Store {
	return secrets.NewStoreAt(
		secrets.OSFilesystem(),
		configs.Identity(),
		configs.ProjectEnvsealSettings.ProjectPath,
	)
}

func recordAudit(userConfig *configs.UserConfig, entry audit.Entry) {
	if userConfig.AuditEnabled() {
		audit.Log(entry)
	}
}
