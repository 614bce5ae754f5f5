package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envseal/internal/audit"
	"github.com/PolarWolf314/envseal/internal/configs"
	"github.com/PolarWolf314/envseal/internal/secrets"
	"github.com/PolarWolf314/envseal/internal/utils"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// ProjectPath is the project root. If empty, uses the working directory.
	ProjectPath string
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// ProjectName is the base name of the project directory.
	ProjectName string

	// StorePath is the location of the new store file.
	StorePath string

	// GitignoreUpdated is true when the store file was added to .gitignore.
	GitignoreUpdated bool

	// GitignoreErr is set when .gitignore could not be updated. The store
	// was still created.
	GitignoreErr error
}

// Init creates an empty secret store in the project directory.
//
// Returns ErrAlreadyExists if a store file is already present. Existing
// contents are never touched.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	userConfig, err := bindProject(opts.ProjectPath)
	if err != nil {
		return nil, err
	}

	store := projectStore()
	if err := store.Init(); err != nil {
		return nil, err
	}

	result := &InitResult{
		ProjectName: configs.ProjectEnvsealSettings.ProjectName,
		StorePath:   store.Path(),
	}

	if userConfig.ManageGitignore() {
		changed, err := utils.EnsureIgnored(store.Root(), secrets.StoreFileName)
		if err != nil {
			result.GitignoreErr = fmt.Errorf("updating .gitignore: %w", err)
		}
		result.GitignoreUpdated = changed
	}

	recordAudit(userConfig, audit.NewEntry("init"))

	return result, nil
}
