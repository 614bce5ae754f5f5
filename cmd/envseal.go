package cmd

import (
	"errors"
	"fmt"
	"os"

	logger "github.com/PolarWolf314/envseal/internal/logging"
	"github.com/PolarWolf314/envseal/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "envseal",
		Short: "Keep a project's environment secrets encrypted on disk",
		Long: `envseal stores environment variables for a project in an encrypted file
next to the code, and injects them into commands that need them.

Values are encrypted with a key derived from your username and the project
path, so the store only opens for you, in this directory, on this machine.

Examples:
  envseal init                       # Create .envseal.json here
  envseal set API_KEY=abc123         # Store a secret
  envseal set DB_PASSWORD            # Prompt for a value
  envseal list                       # Show stored names
  envseal run -- npm start           # Run with secrets in the environment`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			printBanner()
			fmt.Printf("%s Run %s to see available commands\n", ui.InfoMark(), ui.Code.Sprint("envseal --help"))
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(setCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := RootCmd.Execute()
	if err == nil {
		return 0
	}

	var alreadyShown *shownError
	if !errors.As(err, &alreadyShown) {
		fmt.Fprintln(os.Stderr, ui.ErrorMark()+" "+err.Error())
	}
	return 1
}

func printBanner() {
	fmt.Println()
	if ui.ColorEnabled() {
		figure.NewColorFigure("envseal", "", "green", true).Print()
	} else {
		figure.NewFigure("envseal", "", true).Print()
	}
	fmt.Println()
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetSetCommandState()
	resetListCommandState()
	resetLogCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marks left by a previous Execute so
// flags parse cleanly on the next one.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
