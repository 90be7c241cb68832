package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/ui"
)

var (
	listCategory string
	listCode     string
)

// listCmd is the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list industry categories and CAEN codes",
	Long: `List industry categories and their CAEN classification codes in a tree view.

Displays every category with the classification codes it groups, showing
live agent counts per code.

The output includes:
  • Category names with icons
  • CAEN codes with titles and descriptions
  • Live agent counts per code`,
	Example: `  # Show the full catalog tree
  $ agentctl list

  # Show one category only
  $ agentctl list -c horeca
  $ agentctl list --category retail

  # Show one classification code in detail
  $ agentctl list --code 5610`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Show only one category")
	listCmd.Flags().StringVar(&listCode, "code", "", "Show one classification code in detail")

	// Silence usage to avoid showing help on every error
	listCmd.SilenceUsage = true
}

func runList(cmd *cobra.Command, args []string) error {
	// Validate arguments
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	if listCode != "" {
		code, err := apiClient.GetCode(ctx, listCode)
		if err != nil {
			ui.PrintError("failed to fetch code %s: %v", listCode, err)
			return fmt.Errorf("list operation failed")
		}
		fmt.Println()
		fmt.Println(ui.RenderCodeDetail(*code))
		return nil
	}

	ui.PrintInfo("Fetching catalog...")

	categories, err := apiClient.ListCategories(ctx)
	if err != nil {
		ui.PrintError("failed to list categories: %v", err)
		return fmt.Errorf("list operation failed")
	}

	codes, err := apiClient.ListCodes(ctx)
	if err != nil {
		ui.PrintError("failed to list classification codes: %v", err)
		return fmt.Errorf("list operation failed")
	}

	if listCategory != "" {
		categories = filterCategories(categories, listCategory)
		if len(categories) == 0 {
			ui.PrintError("unknown category: %s", listCategory)
			return fmt.Errorf("unknown category")
		}
		codes = filterCodesByCategory(codes, listCategory)
	}

	fmt.Println()
	fmt.Println(ui.RenderCatalogTree(categories, codes))

	agentTotal := 0
	for _, c := range codes {
		agentTotal += c.AgentCount
	}
	fmt.Println(ui.RenderCatalogSummary(len(categories), len(codes), agentTotal))

	return nil
}
