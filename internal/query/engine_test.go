package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

func fixtureAgents() []*entity.Agent {
	return []*entity.Agent{
		{
			ID: "sintra-ai", Name: "SINTRA AI",
			Description: "Preia rezervări pentru restaurante",
			UseCase:     "Automatizarea rezervărilor",
			CAENCode:    "5610", CategoryID: "horeca",
			Type: entity.AgentTypeChatbot, Rating: 4.8,
			IsPremium: true, IsPopular: true, IsRecommended: true,
			Pricing: entity.Pricing{Type: entity.PricingFreemium},
			Tags:    []string{"restaurante", "rezervări"},
		},
		{
			ID: "staybot", Name: "StayBot",
			Description: "Confirmă rezervări pentru hoteluri",
			CAENCode:    "5510", CategoryID: "horeca",
			Type: entity.AgentTypeAssistant, Rating: 4.5,
			IsPopular: true,
			Pricing:   entity.Pricing{Type: entity.PricingFree},
			Tags:      []string{"hoteluri"},
		},
		{
			ID: "retail-pulse", Name: "RetailPulse",
			Description: "Analiză de stocuri",
			CAENCode:    "4711", CategoryID: "retail",
			Type: entity.AgentTypeAnalyzer, Rating: 4.8,
			IsPremium: true, IsPopular: true,
			LicenseAvailable: true,
			Pricing:          entity.Pricing{Type: entity.PricingPaid},
			Tags:             []string{"stocuri"},
		},
		{
			ID: "cart-rescue", Name: "CartRescue",
			Description: "Recuperează coșuri abandonate",
			CAENCode:    "4791", CategoryID: "retail",
			Type: entity.AgentTypeAutomation, Rating: 4.6,
			IsRecommended: true,
			Pricing:       entity.Pricing{Type: entity.PricingFreemium},
			Tags:          []string{"ecommerce"},
		},
	}
}

func fixtureCategories() []*entity.Category {
	return []*entity.Category{
		{ID: "horeca", Name: "HoReCa"},
		{ID: "retail", Name: "Retail"},
		{ID: "transport", Name: "Transport"},
	}
}

func agentIDs(agents []*entity.Agent) []string {
	ids := make([]string, 0, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestFilterByCode(t *testing.T) {
	agents := fixtureAgents()

	t.Run("empty code returns input unchanged", func(t *testing.T) {
		got := FilterByCode(agents, "")
		assert.Equal(t, agentIDs(agents), agentIDs(got))
	})

	t.Run("known code", func(t *testing.T) {
		got := FilterByCode(agents, "5610")
		assert.Equal(t, []string{"sintra-ai"}, agentIDs(got))
	})

	t.Run("unknown code yields empty, not error", func(t *testing.T) {
		got := FilterByCode(agents, "9999")
		assert.Empty(t, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := FilterByCode(agents, "4711")
		twice := FilterByCode(once, "4711")
		assert.Equal(t, agentIDs(once), agentIDs(twice))
	})
}

func TestFilterByFacets(t *testing.T) {
	agents := fixtureAgents()

	t.Run("zero facets impose no constraint", func(t *testing.T) {
		got := FilterByFacets(agents, domain.FacetSet{})
		assert.Equal(t, agentIDs(agents), agentIDs(got))
	})

	t.Run("false boolean facet is not a constraint", func(t *testing.T) {
		// IsPremium=false must not mean "require non-premium"
		got := FilterByFacets(agents, domain.FacetSet{IsPopular: true, IsPremium: false})
		assert.Equal(t, []string{"sintra-ai", "staybot", "retail-pulse"}, agentIDs(got))
	})

	t.Run("facets combine with AND", func(t *testing.T) {
		got := FilterByFacets(agents, domain.FacetSet{IsPopular: true, IsPremium: true})
		assert.Equal(t, []string{"sintra-ai", "retail-pulse"}, agentIDs(got))
	})

	t.Run("enum facets", func(t *testing.T) {
		got := FilterByFacets(agents, domain.FacetSet{
			Category: "retail",
			Pricing:  entity.PricingPaid,
		})
		assert.Equal(t, []string{"retail-pulse"}, agentIDs(got))

		got = FilterByFacets(agents, domain.FacetSet{AgentType: entity.AgentTypeAutomation})
		assert.Equal(t, []string{"cart-rescue"}, agentIDs(got))
	})

	t.Run("idempotent", func(t *testing.T) {
		facets := domain.FacetSet{Category: "retail", IsPremium: true}
		once := FilterByFacets(agents, facets)
		twice := FilterByFacets(once, facets)
		assert.Equal(t, []string{"retail-pulse"}, agentIDs(once))
		assert.Equal(t, agentIDs(once), agentIDs(twice))
	})

	t.Run("preserves input order", func(t *testing.T) {
		got := FilterByFacets(agents, domain.FacetSet{Category: "retail"})
		assert.Equal(t, []string{"retail-pulse", "cart-rescue"}, agentIDs(got))
	})
}

func TestSearchText(t *testing.T) {
	agents := fixtureAgents()

	t.Run("blank term returns input unchanged", func(t *testing.T) {
		assert.Equal(t, agentIDs(agents), agentIDs(SearchText(agents, "")))
		assert.Equal(t, agentIDs(agents), agentIDs(SearchText(agents, "   ")))
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		got := SearchText(agents, "sintra")
		assert.Equal(t, []string{"sintra-ai"}, agentIDs(got))
	})

	t.Run("matches description and tags", func(t *testing.T) {
		// "rezervări" appears in two descriptions and one tag list
		got := SearchText(agents, "rezervări")
		assert.Equal(t, []string{"sintra-ai", "staybot"}, agentIDs(got))

		// tag-only match
		got = SearchText(agents, "ecommerce")
		assert.Equal(t, []string{"cart-rescue"}, agentIDs(got))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		assert.Empty(t, SearchText(agents, "blockchain"))
	})

	t.Run("narrowing only", func(t *testing.T) {
		got := SearchText(agents, "rezervări")
		assert.LessOrEqual(t, len(got), len(agents))
		// every result comes from the input
		seen := make(map[string]bool)
		for _, a := range agents {
			seen[a.ID] = true
		}
		for _, a := range got {
			assert.True(t, seen[a.ID])
		}
	})
}

func TestRankTop(t *testing.T) {
	agents := fixtureAgents()

	t.Run("ranks by rating descending", func(t *testing.T) {
		got := RankTop(agents, domain.RankPopular, 10)
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
		}
	})

	t.Run("equal ratings keep dataset order", func(t *testing.T) {
		// sintra-ai and retail-pulse are both popular at 4.8; sintra-ai is
		// declared first and must stay first
		got := RankTop(agents, domain.RankPopular, 2)
		assert.Equal(t, []string{"sintra-ai", "retail-pulse"}, agentIDs(got))
	})

	t.Run("limit truncates", func(t *testing.T) {
		assert.Len(t, RankTop(agents, domain.RankPopular, 1), 1)
		assert.Empty(t, RankTop(agents, domain.RankPopular, 0))
	})

	t.Run("limit beyond the flagged set", func(t *testing.T) {
		got := RankTop(agents, domain.RankRecommended, 100)
		assert.Equal(t, []string{"sintra-ai", "cart-rescue"}, agentIDs(got))
	})
}

func TestAggregateByCategory(t *testing.T) {
	agents := fixtureAgents()
	categories := fixtureCategories()

	got := AggregateByCategory(agents, categories)
	require.Len(t, got, len(categories))

	// one entry per category, in declaration order, zero counts included
	assert.Equal(t, "horeca", got[0].Category.ID)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "retail", got[1].Category.ID)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, "transport", got[2].Category.ID)
	assert.Equal(t, 0, got[2].Count)

	total := 0
	for _, cc := range got {
		total += cc.Count
	}
	assert.Equal(t, len(agents), total)
}

func TestAggregateByCategoryOverFilteredResults(t *testing.T) {
	agents := FilterByFacets(fixtureAgents(), domain.FacetSet{IsPremium: true})
	got := AggregateByCategory(agents, fixtureCategories())

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Count) // sintra-ai
	assert.Equal(t, 1, got[1].Count) // retail-pulse
	assert.Equal(t, 0, got[2].Count)
}
