package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/envseal/internal/ui"
	"github.com/PolarWolf314/envseal/internal/workflows"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

func resetListCommandState() {
	listJSON = false
}

var listCmd = &cobra.Command{
	Use:   "list [PATTERN...]",
	Short: "List the names of stored secrets",
	Long: `Lists secret names in sorted order. Values are never shown and nothing is
decrypted.

Patterns use glob syntax: *, ?, [abc] and {a,b}.

Examples:
  envseal list
  envseal list 'AWS_*'
  envseal list --json`,
	RunE: runList,
}

type listOutput struct {
	Store string   `json:"store"`
	Names []string `json:"names"`
}

func runList(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting list command")

	result, err := workflows.List(context.Background(), workflows.ListOptions{Patterns: args})
	if err != nil {
		fmt.Println(formatStoreError(err))
		return shown(err)
	}

	Logger.Debugf("%d of %d names matched", len(result.Names), result.Total)

	if listJSON {
		data, err := json.MarshalIndent(listOutput{Store: result.StorePath, Names: result.Names}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal names to JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if !result.StoreExists {
		fmt.Println(ui.ErrorMark() + " No secret store in this directory")
		fmt.Println(ui.InfoMark() + " Run " + ui.Code.Sprint("envseal init") + " to create one")
		return nil
	}

	if len(result.Names) == 0 {
		if result.Total == 0 {
			fmt.Println(ui.InfoMark() + " No secrets stored yet")
		} else {
			fmt.Println(ui.InfoMark() + " No secrets match the given patterns")
		}
		return nil
	}

	for _, name := range result.Names {
		fmt.Println(ui.Name.Sprint(name))
	}
	return nil
}
