package commands

import (
	"fmt"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/client"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/config"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/types"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/ui"
)

// serverURL holds the --server override; empty means use the config file
var serverURL string

// newAPIClient loads CLI configuration and builds the catalog API client
func newAPIClient() (*client.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed")
	}

	server := cfg.Server
	if serverURL != "" {
		server = serverURL
	}

	apiClient, err := client.NewAPIClient(server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}

	return apiClient, nil
}

// filterCategories keeps only the category with the given ID
func filterCategories(categories []types.Category, id string) []types.Category {
	var out []types.Category
	for _, c := range categories {
		if c.ID == id {
			out = append(out, c)
		}
	}
	return out
}

// filterCodesByCategory keeps only codes belonging to the given category
func filterCodesByCategory(codes []types.ClassificationCode, categoryID string) []types.ClassificationCode {
	var out []types.ClassificationCode
	for _, c := range codes {
		if c.Category == categoryID {
			out = append(out, c)
		}
	}
	return out
}
