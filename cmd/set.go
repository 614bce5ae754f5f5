package cmd

import (
	"context"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
	"github.com/PolarWolf314/envseal/internal/secrets"
	"github.com/PolarWolf314/envseal/internal/ui"
	"github.com/PolarWolf314/envseal/internal/utils"
	"github.com/PolarWolf314/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

// readValue supplies the value for `envseal set NAME`. Replaced in tests.
var readValue = readValueFromInput

var setCmd = &cobra.Command{
	Use:   "set NAME=value [NAME=value...] | set NAME",
	Short: "Encrypt and store one or more secrets",
	Long: `Stores secrets in the project's encrypted store, replacing existing values.

Each argument is split at its first '=', so values may contain '='.
With a single NAME and no '=', the value is read from piped stdin (one
trailing newline removed) or prompted for without echo.

Examples:
  envseal set API_KEY=abc123 DEBUG=true
  envseal set DB_PASSWORD
  cat key.pem | envseal set TLS_KEY`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

func resetSetCommandState() {
	readValue = readValueFromInput
}

func runSet(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting set command")

	assignments, err := parseSetArgs(args)
	if err != nil {
		fmt.Println(formatStoreError(err))
		return shown(err)
	}

	spinner, cleanup := startSpinner("Encrypting secrets...", verbose)
	defer cleanup()

	result, err := workflows.Set(context.Background(), workflows.SetOptions{Assignments: assignments})
	if err != nil {
		spinner.FinalMSG = formatStoreError(err)
		return shown(err)
	}

	Logger.Infof("Saved %d secrets to %s", len(result.Added)+len(result.Replaced), result.StorePath)

	if result.Reset {
		Logger.WarnfAlways("The existing store at %s could not be read and was replaced", result.StorePath)
	}

	var b strings.Builder
	b.WriteString(ui.SuccessMark() + " Saved to " + ui.Path.Sprint(result.StorePath))
	for _, name := range result.Added {
		b.WriteString("\n    + " + ui.Name.Sprint(name))
	}
	for _, name := range result.Replaced {
		b.WriteString("\n    ~ " + ui.Name.Sprint(name) + " " + ui.Muted.Sprint("updated"))
	}
	spinner.FinalMSG = b.String()
	return nil
}

// parseSetArgs turns the arguments into assignments. A lone NAME without '='
// takes its value from readValue.
func parseSetArgs(args []string) ([]secrets.Assignment, error) {
	if len(args) == 1 && !strings.Contains(args[0], "=") {
		name := args[0]
		if err := utils.ValidateSecretName(name); err != nil {
			return nil, err
		}
		value, err := readValue(name)
		if err != nil {
			return nil, err
		}
		return []secrets.Assignment{{Name: name, Value: value}}, nil
	}

	assignments := make([]secrets.Assignment, 0, len(args))
	for _, arg := range args {
		name, value, err := utils.ParseAssignment(arg)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, secrets.Assignment{Name: name, Value: value})
	}
	return assignments, nil
}

func readValueFromInput(name string) (string, error) {
	if utils.IsTerminal() {
		value, err := utils.ReadSecret("Value for " + name + ": ")
		if err != nil {
			return "", fmt.Errorf("%w: %v", kerrors.ErrNoValue, err)
		}
		return value, nil
	}

	data, err := utils.ReadStdin()
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrNoValue, err)
	}
	return utils.TrimTrailingNewline(string(data)), nil
}
