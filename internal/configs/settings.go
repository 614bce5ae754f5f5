package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/envseal/internal/secrets"
	"github.com/PolarWolf314/envseal/internal/utils"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
	Username        string
}

type ProjectSettings struct {
	ProjectName string
	ProjectPath string
	StorePath   string
}

var (
	UserEnvsealSettings    *UserSettings
	ProjectEnvsealSettings *ProjectSettings
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	// An unknown user still gets a working identity; key derivation falls
	// back to a fixed name in that case.
	username, _ := utils.GetUsername()

	UserEnvsealSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "envseal"),
		UserDataPath:    filepath.Join(dataDir, "envseal"),
		Username:        username,
	}
	ProjectEnvsealSettings = &ProjectSettings{}
}

// InitProjectSettings binds the project settings to the working directory.
func InitProjectSettings() error {
	projectPath, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error getting working directory: %w", err)
	}
	return InitProjectSettingsAt(projectPath)
}

// InitProjectSettingsAt binds the project settings to dir, made absolute.
func InitProjectSettingsAt(dir string) error {
	projectPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("error resolving project path %s: %w", dir, err)
	}

	ProjectEnvsealSettings = &ProjectSettings{
		ProjectName: filepath.Base(projectPath),
		ProjectPath: projectPath,
		StorePath:   filepath.Join(projectPath, secrets.StoreFileName),
	}

	return nil
}

// Identity returns the key derivation identity for the current user, rooted
// at the current project.
func Identity() secrets.Identity {
	return secrets.Identity{
		Username: UserEnvsealSettings.Username,
		WorkDir:  ProjectEnvsealSettings.ProjectPath,
	}
}
