package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/config"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/tui"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/ui"
)

var browseCode string

// browseCmd is the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "start interactive catalog browsing",
	Long: `Start an interactive catalog browsing session.

Opens a terminal UI bound to a server-side browsing session. Pick a CAEN
code, then narrow the results with free-text search and facet toggles.`,
	Example: `  # Pick a CAEN code interactively, then browse
  $ agentctl browse

  # Jump straight into a code
  $ agentctl browse --code 5610

  # Keyboard controls:
  • / focuses the search box, Enter applies the term
  • p/r/m/l toggle the popular/recommended/premium/license facets
  • f cycles the pricing facet, c clears all facets
  • Esc exits`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseCode, "code", "", "CAEN code to browse (skips the picker)")

	browseCmd.SilenceUsage = true
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Println("\nRun 'agentctl browse' to start an interactive session.")
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	code := browseCode
	if code == "" {
		code, err = pickCode(ctx)
		if err != nil {
			return err
		}
	}

	ui.PrintBrowseWelcomeBanner()

	session, err := apiClient.CreateSession(ctx)
	if err != nil {
		ui.PrintErrorBox("Cannot start a browsing session",
			fmt.Sprintf("%v\n\nIs the catalog server running? Check --server or ~/.agentctl/config.json.", err))
		return fmt.Errorf("session creation failed")
	}
	defer func() {
		if err := apiClient.DeleteSession(context.Background(), session.SessionID); err != nil {
			ui.PrintWarning("failed to close browsing session: %v", err)
			return
		}
		ui.PrintSuccess("browsing session closed")
	}()

	if code != "" {
		session, err = apiClient.SelectCode(ctx, session.SessionID, code)
		if err != nil {
			ui.PrintError("failed to select code: %v", err)
			return fmt.Errorf("code selection failed")
		}
	}

	// Remember the session so a crashed TUI can be inspected server-side
	if cfg, cfgErr := config.Load(); cfgErr == nil {
		cfg.SessionID = session.SessionID
		_ = cfg.Save()
	}

	program := tui.NewBrowseProgram(apiClient, session)
	if err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browse TUI: %w", err)
	}

	return nil
}

// pickCode prompts for a CAEN code with an interactive selector
func pickCode(ctx context.Context) (string, error) {
	apiClient, err := newAPIClient()
	if err != nil {
		return "", err
	}

	codes, err := apiClient.ListCodes(ctx)
	if err != nil {
		ui.PrintError("failed to list classification codes: %v", err)
		return "", fmt.Errorf("list operation failed")
	}

	const allCodes = "All codes"
	options := []string{allCodes}
	for _, c := range codes {
		options = append(options, fmt.Sprintf("%s — %s (%d agents)", c.Code, c.Title, c.AgentCount))
	}

	var choice string
	prompt := &survey.Select{
		Message:  "Pick a CAEN code to browse:",
		Options:  options,
		PageSize: 12,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", fmt.Errorf("selection cancelled")
	}

	if choice == allCodes {
		return "", nil
	}
	return strings.SplitN(choice, " ", 2)[0], nil
}
