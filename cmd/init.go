package cmd

import (
	"context"
	"errors"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
	"github.com/PolarWolf314/envseal/internal/ui"
	"github.com/PolarWolf314/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty secret store in the current directory",
	Long: `Creates .envseal.json in the current directory and, unless disabled in
your preferences, adds it to .gitignore.

An existing store is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initializing envseal...", verbose)
		defer cleanup()

		result, err := workflows.Init(context.Background(), workflows.InitOptions{})
		if err != nil {
			if errors.Is(err, kerrors.ErrAlreadyExists) {
				spinner.FinalMSG = ui.ErrorMark() + " envseal is already initialized in this directory\n" +
					ui.InfoMark() + " Run " + ui.Code.Sprint("envseal set NAME=value") + " to add secrets"
				return shown(err)
			}
			spinner.FinalMSG = formatStoreError(err)
			return shown(err)
		}

		Logger.Infof("Created store at %s", result.StorePath)
		msg := ui.SuccessMark() + " envseal initialized for " + ui.Highlight.Sprint(result.ProjectName) + "\n" +
			ui.InfoMark() + " Secrets are stored in " + ui.Path.Sprint(result.StorePath)
		if result.GitignoreUpdated {
			msg += "\n" + ui.InfoMark() + " Added " + ui.Path.Sprint(".envseal.json") + " to " + ui.Path.Sprint(".gitignore")
		}
		if result.GitignoreErr != nil {
			msg += "\n" + ui.WarningMark() + " Could not update .gitignore: " + result.GitignoreErr.Error()
		}
		spinner.FinalMSG = msg
		return nil
	},
}
