package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/fatih/color"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/types"
)

var (
	// Tree node styles
	categoryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)  // Cyan
	codeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))             // Blue
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            // Gray
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))            // Yellow
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true) // Pink

	// Summary box style
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// RenderCatalogTree renders industry categories with their CAEN codes as a tree.
// Codes carry live agent counts; categories with no codes are still shown.
func RenderCatalogTree(categories []types.Category, codes []types.ClassificationCode) string {
	if len(categories) == 0 && len(codes) == 0 {
		return keyStyle.Render("No catalog entries found")
	}

	// Group codes under their category, preserving catalog order
	codesByCategory := make(map[string][]types.ClassificationCode)
	for _, c := range codes {
		codesByCategory[c.Category] = append(codesByCategory[c.Category], c)
	}

	var parts []string
	for _, cat := range categories {
		parts = append(parts, buildCategoryNode(cat, codesByCategory[cat.ID]).String())
	}

	return strings.Join(parts, "\n")
}

// buildCategoryNode creates a tree node for one industry category
func buildCategoryNode(cat types.Category, codes []types.ClassificationCode) *tree.Tree {
	label := fmt.Sprintf("%s %s",
		cat.Icon,
		categoryStyle.Render(cat.Name),
	)

	catTree := tree.New().Root(label)

	if len(codes) == 0 {
		catTree.Child(keyStyle.Render("(no classification codes)"))
		return catTree
	}

	for _, code := range codes {
		catTree.Child(buildCodeNode(code))
	}

	return catTree
}

// buildCodeNode creates a tree node for a classification code
func buildCodeNode(code types.ClassificationCode) *tree.Tree {
	countLabel := "agents"
	if code.AgentCount == 1 {
		countLabel = "agent"
	}

	codeLabel := fmt.Sprintf("%s %s %s",
		codeStyle.Render("CAEN "+code.Code),
		code.Title,
		keyStyle.Render(fmt.Sprintf("(%d %s)", code.AgentCount, countLabel)),
	)

	codeTree := tree.New().Root(codeLabel)
	if code.Description != "" {
		codeTree.Child(formatKeyValue("About:", code.Description))
	}

	return codeTree
}

// RenderCodeDetail renders one classification code with full details
func RenderCodeDetail(code types.ClassificationCode) string {
	header := fmt.Sprintf("%s %s",
		code.Icon,
		highlightStyle.Render(fmt.Sprintf("CAEN %s — %s", code.Code, code.Title)),
	)

	detail := tree.New().Root(header)
	detail.Child(formatKeyValue("Category:", code.Category))
	detail.Child(formatKeyValue("Agents:", fmt.Sprintf("%d", code.AgentCount)))
	if code.Description != "" {
		detail.Child(formatKeyValue("About:", code.Description))
	}

	return detail.String()
}

// RenderAgentList renders agents as an aligned list with rating and pricing
func RenderAgentList(agents []types.Agent) string {
	if len(agents) == 0 {
		return keyStyle.Render("No agents found")
	}

	maxNameLen := 0
	maxTypeLen := 0
	for _, agent := range agents {
		if len(agent.Name) > maxNameLen {
			maxNameLen = len(agent.Name)
		}
		if len(agent.Type) > maxTypeLen {
			maxTypeLen = len(agent.Type)
		}
	}

	var b strings.Builder
	for _, agent := range agents {
		fmt.Fprintf(&b, "  %-*s  %-*s  %s  %s%s\n",
			maxNameLen, agent.Name,
			maxTypeLen, agent.Type,
			renderRating(agent.Rating, agent.ReviewCount),
			renderPricing(agent.Pricing),
			renderBadges(agent),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderAgentDetail renders one agent as a tree with its full profile
func RenderAgentDetail(agent types.Agent) string {
	label := fmt.Sprintf("%s%s",
		highlightStyle.Render(agent.Name),
		renderBadges(agent),
	)

	agentTree := tree.New().Root(label)
	agentTree.Child(formatKeyValue("CAEN:", agent.CaenCode))
	agentTree.Child(formatKeyValue("Type:", agent.Type))
	agentTree.Child(formatKeyValue("Rating:", renderRating(agent.Rating, agent.ReviewCount)))
	agentTree.Child(formatKeyValue("Pricing:", renderPricing(agent.Pricing)))
	if agent.UseCase != "" {
		agentTree.Child(formatKeyValue("Use case:", agent.UseCase))
	}
	if len(agent.Tags) > 0 {
		agentTree.Child(formatKeyValue("Tags:", strings.Join(agent.Tags, ", ")))
	}
	if len(agent.Integrations) > 0 {
		agentTree.Child(formatKeyValue("Integrations:", strings.Join(agent.Integrations, ", ")))
	}

	return agentTree.String()
}

// RenderShelf renders a ranked promotional shelf with a header line
func RenderShelf(title string, agents []types.Agent) string {
	header := categoryStyle.Render(title)
	return header + "\n" + RenderAgentList(agents)
}

// renderRating formats the star rating with review count
func renderRating(rating float64, reviews int) string {
	stars := valueStyle.Render(fmt.Sprintf("★ %.1f", rating))
	return fmt.Sprintf("%s %s", stars, keyStyle.Render(fmt.Sprintf("(%d reviews)", reviews)))
}

// renderPricing formats an agent's commercial terms
func renderPricing(p types.Pricing) string {
	switch p.Type {
	case "free":
		return color.GreenString("free")
	case "freemium", "paid":
		if p.StartingPrice != nil {
			return fmt.Sprintf("%s %s", p.Type,
				valueStyle.Render(fmt.Sprintf("from %.0f %s/mo", *p.StartingPrice, p.Currency)))
		}
		return p.Type
	default:
		return p.Type
	}
}

// renderBadges appends premium/popular/recommended markers after a name
func renderBadges(agent types.Agent) string {
	var badges []string
	if agent.IsPremium {
		badges = append(badges, color.MagentaString("premium"))
	}
	if agent.IsPopular {
		badges = append(badges, color.YellowString("popular"))
	}
	if agent.IsRecommended {
		badges = append(badges, color.CyanString("recommended"))
	}
	if len(badges) == 0 {
		return ""
	}
	return " [" + strings.Join(badges, " ") + "]"
}

// formatKeyValue formats a key-value pair
func formatKeyValue(key, value string) string {
	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		value,
	)
}

// RenderCatalogSummary renders a summary line for the catalog tree
func RenderCatalogSummary(categoryCount, codeCount, agentCount int) string {
	summary := fmt.Sprintf("Total: %s categories, %s CAEN codes, %s agents",
		highlightStyle.Render(fmt.Sprintf("%d", categoryCount)),
		highlightStyle.Render(fmt.Sprintf("%d", codeCount)),
		highlightStyle.Render(fmt.Sprintf("%d", agentCount)),
	)

	return summaryStyle.Render(summary)
}
