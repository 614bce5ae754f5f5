package workflows

import (
	"context"

	"github.com/PolarWolf314/envseal/internal/audit"
	kerrors "github.com/PolarWolf314/envseal/internal/errors"
	"github.com/PolarWolf314/envseal/internal/secrets"
	"github.com/PolarWolf314/envseal/internal/utils"
)

// SetOptions configures the set workflow.
type SetOptions struct {
	// ProjectPath is the project root. If empty, uses the working directory.
	ProjectPath string

	// Assignments are the secrets to store, in order.
	Assignments []secrets.Assignment
}

// SetResult contains the outcome of a set operation.
type SetResult struct {
	// StorePath is the location of the store file.
	StorePath string

	// Added are names that were new to the store.
	Added []string

	// Replaced are names whose previous value was overwritten.
	Replaced []string

	// Reset is true when a corrupt store file was discarded before saving.
	Reset bool
}

// Set encrypts and stores one or more secrets in a single write. A missing
// store file is created.
//
// Returns ErrNoValue if there is nothing to store.
// Returns ErrInvalidSecretName if a name breaks the command line naming rule.
func Set(ctx context.Context, opts SetOptions) (*SetResult, error) {
	if len(opts.Assignments) == 0 {
		return nil, kerrors.ErrNoValue
	}
	for _, a := range opts.Assignments {
		if err := utils.ValidateSecretName(a.Name); err != nil {
			return nil, err
		}
	}

	userConfig, err := bindProject(opts.ProjectPath)
	if err != nil {
		return nil, err
	}

	store := projectStore()
	report, err := store.SaveAll(opts.Assignments)
	if err != nil {
		return nil, err
	}

	auditEntry := audit.NewEntry("set")
	auditEntry.Names = append(append([]string{}, report.Added...), report.Replaced...)
	auditEntry.Reset = report.Reset
	recordAudit(userConfig, auditEntry)

	return &SetResult{
		StorePath: store.Path(),
		Added:     report.Added,
		Replaced:  report.Replaced,
		Reset:     report.Reset,
	}, nil
}
