package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/envseal/internal/audit"
	"github.com/PolarWolf314/envseal/internal/configs"
	kerrors "github.com/PolarWolf314/envseal/internal/errors"
	"github.com/PolarWolf314/envseal/internal/ui"
	"github.com/PolarWolf314/envseal/internal/utils"
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change envseal configuration",
	Long: `Shows where envseal keeps its files and which preferences are in effect,
and changes preferences.

Preferences live in config.toml in your config directory:

  [preferences]
  manage_gitignore = true
  audit = true`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved paths and preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		if err := configs.InitProjectSettings(); err != nil {
			return shown(Logger.ErrorfAndReturn("Failed to resolve project: %v", err))
		}

		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			fmt.Println(ui.ErrorMark() + " " + err.Error())
			return shown(err)
		}

		fmt.Println("Paths:")
		fmt.Printf("  %-18s %s\n", "Config file:", ui.Path.Sprint(configs.UserConfigPath()))
		fmt.Printf("  %-18s %s\n", "Audit log:", ui.Path.Sprint(audit.LogPath()))
		fmt.Printf("  %-18s %s\n", "Store:", ui.Path.Sprint(configs.ProjectEnvsealSettings.StorePath))
		fmt.Println()
		fmt.Println("Identity:")
		fmt.Printf("  %-18s %s\n", "User:", ui.Highlight.Sprint(configs.Identity().AccountName()))
		fmt.Printf("  %-18s %s\n", "Project:", ui.Path.Sprint(configs.ProjectEnvsealSettings.ProjectPath))
		fmt.Println()
		fmt.Println("Preferences:")
		fmt.Printf("  %-18s %t\n", "manage_gitignore:", userConfig.ManageGitignore())
		fmt.Printf("  %-18s %t\n", "audit:", userConfig.AuditEnabled())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a preference in the user config file",
	Long: `Sets a preference in config.toml. Values are true or false.

Keys:
  manage_gitignore   init adds the store file to .gitignore
  audit              record operations in the audit log

Examples:
  envseal config set audit false
  envseal config set manage_gitignore true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set command")
		spinner, cleanup := startSpinner("Saving preference...", verbose)
		defer cleanup()

		key, value := strings.ToLower(args[0]), args[1]
		Logger.Debugf("Preference %s = %s", key, value)

		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			spinner.FinalMSG = ui.ErrorMark() + " " + err.Error()
			return shown(err)
		}

		if err := userConfig.SetPreference(key, value); err != nil {
			msg := ui.ErrorMark() + " " + err.Error()
			if errors.Is(err, kerrors.ErrInvalidPreference) {
				msg += "\n" + ui.InfoMark() + " Valid keys:" + strings.TrimSuffix(utils.FormatNames(configs.PreferenceKeys), "\n")
			}
			spinner.FinalMSG = msg
			return shown(err)
		}

		if err := configs.SaveUserConfig(userConfig); err != nil {
			spinner.FinalMSG = ui.ErrorMark() + " " + err.Error()
			return shown(err)
		}
		Logger.Infof("User config saved to %s", configs.UserConfigPath())

		spinner.FinalMSG = ui.SuccessMark() + " Set " + ui.Name.Sprint(key) + " to " +
			ui.Highlight.Sprint(value) + " in " + ui.Path.Sprint(configs.UserConfigPath())
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetCmd)
}
