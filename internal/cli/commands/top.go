package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/ui"
)

var topLimit int

// topCmd is the top command
var topCmd = &cobra.Command{
	Use:   "top [popular|recommended]",
	Short: "show a promotional shelf of top-rated agents",
	Long: `Show a promotional shelf of top-rated agents.

Shelves rank flagged agents by rating, highest first; agents with equal
ratings keep their catalog order. Without an argument both shelves are shown.`,
	Example: `  # Both shelves with the default size
  $ agentctl top

  # The popular shelf only
  $ agentctl top popular

  # A larger recommended shelf
  $ agentctl top recommended --limit 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTop,
}

func init() {
	topCmd.Flags().IntVarP(&topLimit, "limit", "l", 4, "Maximum agents per shelf")

	topCmd.SilenceUsage = true
}

func runTop(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	selectors := []string{"popular", "recommended"}
	if len(args) == 1 {
		if args[0] != "popular" && args[0] != "recommended" {
			ui.PrintError("unknown shelf: %s (expected 'popular' or 'recommended')", args[0])
			return fmt.Errorf("invalid arguments")
		}
		selectors = []string{args[0]}
	}

	for i, selector := range selectors {
		agents, err := apiClient.TopRanked(ctx, selector, topLimit)
		if err != nil {
			ui.PrintError("failed to fetch %s shelf: %v", selector, err)
			return fmt.Errorf("shelf fetch failed")
		}

		title := "Most popular"
		if selector == "recommended" {
			title = "Recommended"
		}

		if i == 0 {
			fmt.Println()
		}
		fmt.Println(ui.RenderShelf(title, agents))
		if i < len(selectors)-1 {
			fmt.Println()
		}
	}

	return nil
}
