package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/ui"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "agentctl",
	Short:   "AI Agents România catalog CLI",
	Version: version,
	Long: `A command-line tool for browsing the AI Agents România catalog.
Explore AI agent offerings classified by Romanian CAEN industry codes,
filter by facets, search, and inspect promotional shelves.`,
	Example: `  # Show the category / CAEN code tree
  $ agentctl list

  # List agents under a CAEN code
  $ agentctl agents --code 5610

  # Show the most popular agents
  $ agentctl top popular

  # Start interactive browsing
  $ agentctl browse`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(browseCmd)

	// Global server flag
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "API server address (overrides config)")

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("agentctl version %s\n", version)
}
