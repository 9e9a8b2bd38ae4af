package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Flags
	baseManifest string

	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for stagereslot.
var rootCmd = &cobra.Command{
	Use:     "stagereslot <mod-root>",
	Version: "dev",
	Short:   "Reslot a stage mod onto a new stage name",
	Long: `stagereslot turns a stage mod that replaces a vanilla stage into one that
adds a new stage slot.

It writes a config.json that shares every vanilla file the mod does not
replace, renames the mod's files to the new stage name, and can generate the
stage name xmsbt and database json.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runReslot,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	rootCmd.Flags().StringVar(&baseManifest, "base", "", "Base-game manifest json (default: dir_info_with_files_trimmed.json next to the executable, or $STAGERESLOT_MANIFEST)")
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
