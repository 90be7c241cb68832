// Package query implements the catalog query engine: pure, stateless read
// operations over the immutable dataset, plus the per-session view
// controller built on top of them. Every function here is a total function:
// misses come back as empty slices, never as errors.
package query

import (
	"sort"
	"strings"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

// FilterByCode narrows agents to one classification code. An empty code
// returns the input unchanged, in its original order; an unknown code
// yields an empty result.
func FilterByCode(agents []*entity.Agent, code string) []*entity.Agent {
	if code == "" {
		return agents
	}
	out := make([]*entity.Agent, 0, len(agents))
	for _, agent := range agents {
		if agent.CAENCode == code {
			out = append(out, agent)
		}
	}
	return out
}

// FilterByFacets applies every active facet as an AND-combined predicate.
// Facets at their zero value impose no constraint.
func FilterByFacets(agents []*entity.Agent, facets domain.FacetSet) []*entity.Agent {
	if facets.IsZero() {
		return agents
	}
	out := make([]*entity.Agent, 0, len(agents))
	for _, agent := range agents {
		if matchesFacets(agent, facets) {
			out = append(out, agent)
		}
	}
	return out
}

func matchesFacets(agent *entity.Agent, f domain.FacetSet) bool {
	// Boolean checks first; they are cheaper than the string comparisons.
	if f.IsPopular && !agent.IsPopular {
		return false
	}
	if f.IsRecommended && !agent.IsRecommended {
		return false
	}
	if f.IsPremium && !agent.IsPremium {
		return false
	}
	if f.LicenseAvailable && !agent.LicenseAvailable {
		return false
	}
	if f.Category != "" && agent.CategoryID != f.Category {
		return false
	}
	if f.AgentType != "" && agent.Type != f.AgentType {
		return false
	}
	if f.Pricing != "" && agent.Pricing.Type != f.Pricing {
		return false
	}
	return true
}

// SearchText keeps agents whose name, description or use case contains the
// term, or that carry a tag containing it. Matching is case-insensitive
// substring containment, deliberately not tokenized or fuzzy. A blank term
// returns the input unchanged.
func SearchText(agents []*entity.Agent, term string) []*entity.Agent {
	term = strings.TrimSpace(term)
	if term == "" {
		return agents
	}
	needle := strings.ToLower(term)

	out := make([]*entity.Agent, 0, len(agents))
	for _, agent := range agents {
		if matchesTerm(agent, needle) {
			out = append(out, agent)
		}
	}
	return out
}

func matchesTerm(agent *entity.Agent, needle string) bool {
	if strings.Contains(strings.ToLower(agent.Name), needle) ||
		strings.Contains(strings.ToLower(agent.Description), needle) ||
		strings.Contains(strings.ToLower(agent.UseCase), needle) {
		return true
	}
	for _, tag := range agent.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// RankTop builds a promotional shelf: agents carrying the selector flag,
// sorted by rating descending and truncated to limit. The sort is stable so
// agents with equal ratings keep their dataset order.
func RankTop(agents []*entity.Agent, selector domain.RankSelector, limit int) []*entity.Agent {
	flagged := make([]*entity.Agent, 0, len(agents))
	for _, agent := range agents {
		switch selector {
		case domain.RankPopular:
			if agent.IsPopular {
				flagged = append(flagged, agent)
			}
		case domain.RankRecommended:
			if agent.IsRecommended {
				flagged = append(flagged, agent)
			}
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].Rating > flagged[j].Rating
	})

	if limit >= 0 && len(flagged) > limit {
		flagged = flagged[:limit]
	}
	return flagged
}

// AggregateByCategory counts, for every category in declaration order, the
// agents of the given sequence that belong to it. Categories with no
// matching agents are included with a zero count so the UI can still render
// their shelf.
func AggregateByCategory(agents []*entity.Agent, categories []*entity.Category) []domain.CategoryCount {
	byID := make(map[string]int, len(categories))
	for _, agent := range agents {
		byID[agent.CategoryID]++
	}

	out := make([]domain.CategoryCount, 0, len(categories))
	for _, cat := range categories {
		out = append(out, domain.CategoryCount{
			Category: cat,
			Count:    byID[cat.ID],
		})
	}
	return out
}
