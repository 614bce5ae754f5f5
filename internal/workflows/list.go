package workflows

import (
	"context"

	"github.com/PolarWolf314/envseal/internal/secrets"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// ProjectPath is the project root. If empty, uses the working directory.
	ProjectPath string

	// Patterns filter names with glob syntax. Empty means all names.
	Patterns []string
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	// StorePath is the location of the store file.
	StorePath string

	// StoreExists is false when the project has no store file yet.
	StoreExists bool

	// Names are the matching names, sorted.
	Names []string

	// Total is the number of names in the store before filtering.
	Total int
}

// List returns the names in the store without deriving a key or decrypting
// anything.
//
// Returns ErrInvalidPattern for a malformed pattern.
// Returns ErrCorruptStore if the store file cannot be parsed.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	// Reject bad patterns before touching the store.
	if _, err := secrets.FilterNames(nil, opts.Patterns); err != nil {
		return nil, err
	}

	if _, err := bindProject(opts.ProjectPath); err != nil {
		return nil, err
	}

	store := projectStore()
	names, err := store.ListNames()
	if err != nil {
		return nil, err
	}

	filtered, err := secrets.FilterNames(names, opts.Patterns)
	if err != nil {
		return nil, err
	}
	if filtered == nil {
		filtered = []string{}
	}

	return &ListResult{
		StorePath:   store.Path(),
		StoreExists: store.Exists(),
		Names:       filtered,
		Total:       len(names),
	}, nil
}
