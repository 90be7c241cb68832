package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/client"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/types"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/ui"
)

var (
	agentsCode      string
	agentsSearch    string
	agentsCategory  string
	agentsType      string
	agentsPricing   string
	agentsPremium   bool
	agentsPopular   bool
	agentsRecommend bool
	agentsLicense   bool
	agentsWide      bool
)

// agentsCmd is the agents command
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "list agents, optionally filtered by code, search term, and facets",
	Long: `List AI agents from the catalog.

Without flags, prints the full agent catalog. Flags narrow the listing the
same way the interactive browser does: first by CAEN code, then by free-text
search, then by facets.`,
	Example: `  # Full catalog
  $ agentctl agents

  # Agents registered under a CAEN code
  $ agentctl agents --code 5610

  # Free-text search combined with a facet
  $ agentctl agents --search rezervări --premium

  # Facet-only filtering
  $ agentctl agents --type chatbot --pricing free`,
	RunE: runAgents,
}

func init() {
	agentsCmd.Flags().StringVar(&agentsCode, "code", "", "Filter by CAEN classification code")
	agentsCmd.Flags().StringVar(&agentsSearch, "search", "", "Free-text search over name, description, use case, and tags")
	agentsCmd.Flags().StringVar(&agentsCategory, "facet-category", "", "Facet: industry category")
	agentsCmd.Flags().StringVar(&agentsType, "type", "", "Facet: agent type (chatbot, automation, analytics, ...)")
	agentsCmd.Flags().StringVar(&agentsPricing, "pricing", "", "Facet: pricing model (free, freemium, paid, enterprise)")
	agentsCmd.Flags().BoolVar(&agentsPremium, "premium", false, "Facet: premium agents only")
	agentsCmd.Flags().BoolVar(&agentsPopular, "popular", false, "Facet: popular agents only")
	agentsCmd.Flags().BoolVar(&agentsRecommend, "recommended", false, "Facet: recommended agents only")
	agentsCmd.Flags().BoolVar(&agentsLicense, "license", false, "Facet: license-available agents only")
	agentsCmd.Flags().BoolVarP(&agentsWide, "wide", "w", false, "Show full agent profiles instead of one line per agent")

	agentsCmd.SilenceUsage = true
}

func runAgents(cmd *cobra.Command, args []string) error {
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

	// No filters at all: plain catalog listing
	update := buildFacetUpdate()
	if agentsCode == "" && agentsSearch == "" && update == nil {
		agents, err := apiClient.ListAgents(ctx)
		if err != nil {
			ui.PrintError("failed to list agents: %v", err)
			return fmt.Errorf("list operation failed")
		}
		printAgents(agents)
		return nil
	}

	// Filtered listing runs through a short-lived browsing session so the
	// output matches what the interactive browser would show.
	session, err := apiClient.CreateSession(ctx)
	if err != nil {
		ui.PrintError("failed to start browsing session: %v", err)
		return fmt.Errorf("session creation failed")
	}
	defer func() {
		_ = apiClient.DeleteSession(context.Background(), session.SessionID)
	}()

	session, err = applyFilters(ctx, apiClient, session.SessionID, update)
	if err != nil {
		return err
	}

	printAgents(session.Results)
	return nil
}

// applyFilters drives the session through code, search, and facet updates
func applyFilters(ctx context.Context, apiClient *client.APIClient, sessionID string, update *types.FacetUpdate) (*types.Session, error) {
	session, err := apiClient.GetSession(ctx, sessionID)
	if err != nil {
		ui.PrintError("failed to fetch session: %v", err)
		return nil, fmt.Errorf("session fetch failed")
	}

	if agentsCode != "" {
		session, err = apiClient.SelectCode(ctx, sessionID, agentsCode)
		if err != nil {
			ui.PrintError("failed to select code: %v", err)
			return nil, fmt.Errorf("filter failed")
		}
	}

	if agentsSearch != "" {
		session, err = apiClient.SetSearchTerm(ctx, sessionID, agentsSearch)
		if err != nil {
			ui.PrintError("failed to set search term: %v", err)
			return nil, fmt.Errorf("filter failed")
		}
	}

	if update != nil {
		session, err = apiClient.UpdateFacets(ctx, sessionID, *update)
		if err != nil {
			ui.PrintError("failed to apply facets: %v", err)
			return nil, fmt.Errorf("filter failed")
		}
	}

	return session, nil
}

// buildFacetUpdate converts flag values into a facet update; nil means no facets
func buildFacetUpdate() *types.FacetUpdate {
	update := types.FacetUpdate{}
	hasFacets := false

	if agentsCategory != "" {
		update.Category = &agentsCategory
		hasFacets = true
	}
	if agentsType != "" {
		update.AgentType = &agentsType
		hasFacets = true
	}
	if agentsPricing != "" {
		update.Pricing = &agentsPricing
		hasFacets = true
	}
	if agentsPremium {
		update.IsPremium = boolPtr(true)
		hasFacets = true
	}
	if agentsPopular {
		update.IsPopular = boolPtr(true)
		hasFacets = true
	}
	if agentsRecommend {
		update.IsRecommended = boolPtr(true)
		hasFacets = true
	}
	if agentsLicense {
		update.LicenseAvailable = boolPtr(true)
		hasFacets = true
	}

	if !hasFacets {
		return nil
	}
	return &update
}

func printAgents(agents []types.Agent) {
	fmt.Println()
	if agentsWide {
		for i, agent := range agents {
			fmt.Println(ui.RenderAgentDetail(agent))
			if i < len(agents)-1 {
				fmt.Println()
			}
		}
		if len(agents) == 0 {
			fmt.Println(ui.RenderAgentList(nil))
		}
	} else {
		fmt.Println(ui.RenderAgentList(agents))
	}

	label := "agents"
	if len(agents) == 1 {
		label = "agent"
	}
	fmt.Printf("\n%d %s\n", len(agents), label)
}

func boolPtr(b bool) *bool {
	return &b
}
