package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/PolarWolf314/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

// exitFunc ends the process with the child's status. Replaced in tests.
var exitFunc = os.Exit

var runCmd = &cobra.Command{
	Use:   "run -- COMMAND [ARGS...]",
	Short: "Run a command with the secrets in its environment",
	Long: `Decrypts the project's secrets and runs COMMAND with them added to its
environment. Variables that are already set are not overridden.

envseal exits with the command's exit status. If any secret cannot be
decrypted, the command is not started.

Examples:
  envseal run -- npm start
  envseal run -- sh -c 'echo $API_KEY'`,
	RunE: runRun,
}

func init() {
	// Flags after the command name belong to the command.
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting run command")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := workflows.Run(ctx, workflows.RunOptions{Command: args})
	if err != nil {
		fmt.Fprintln(os.Stderr, formatStoreError(err))
		return shown(err)
	}

	if !result.StoreExists {
		Logger.Infof("No secret store found, running without secrets")
	}
	Logger.Infof("Injected %d secrets", len(result.Injected))
	if len(result.Shadowed) > 0 {
		Logger.Infof("Already set in the environment: %s", strings.Join(result.Shadowed, ", "))
	}

	if result.ExitCode != 0 {
		Logger.Debugf("Command exited with status %d", result.ExitCode)
		exitFunc(result.ExitCode)
	}
	return nil
}
