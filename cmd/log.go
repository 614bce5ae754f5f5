package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/envseal/internal/audit"
	"github.com/PolarWolf314/envseal/internal/ui"
	"github.com/PolarWolf314/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit int
	logJSON  bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 0, "show only the most recent N entries")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log for this project",
	Long: `Displays the operations recorded for this project on this machine.

Entries show the operation and the secret names involved, never values.

Examples:
  envseal log            # View full log
  envseal log -n 10      # Last 10 entries
  envseal log --json     # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading audit log...", verbose)
	defer cleanup()

	result, err := workflows.Log(context.Background(), workflows.LogOptions{Limit: logLimit})
	if err != nil {
		spinner.FinalMSG = ui.ErrorMark() + " Failed to read audit log: " + err.Error()
		return shown(err)
	}

	Logger.Debugf("Read %d entries for this project from %s", result.TotalEntriesBeforeLimit, result.LogPath)

	spinner.FinalMSG = ""
	if logJSON {
		return outputLogJSON(result.Entries)
	}

	if len(result.Entries) == 0 {
		fmt.Println("No audit log entries found.")
		return nil
	}

	outputLogDefault(result.Entries)
	return nil
}

func outputLogJSON(entries []audit.Entry) error {
	if entries == nil {
		entries = []audit.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputLogDefault(entries []audit.Entry) {
	for _, e := range entries {
		datetime := workflows.FormatDateTime(e.Timestamp)
		details := workflows.FormatDetails(e)
		fmt.Printf("%-19s  %-15s  %-4s  %s\n", datetime, e.User, e.Operation, details)
	}
}
