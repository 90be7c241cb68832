package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

func testCategories() []*entity.Category {
	return []*entity.Category{
		{ID: "horeca", Name: "HoReCa"},
		{ID: "retail", Name: "Retail"},
	}
}

func testCodes() []*entity.ClassificationCode {
	return []*entity.ClassificationCode{
		{Code: "5610", Title: "Restaurante", CategoryID: "horeca", AgentCount: 99},
		{Code: "4711", Title: "Comerț", CategoryID: "retail"},
	}
}

func testAgent(mutate func(*entity.Agent)) *entity.Agent {
	price := 49.0
	agent := &entity.Agent{
		ID:         "agent-1",
		Name:       "Agent One",
		CAENCode:   "5610",
		CategoryID: "horeca",
		Type:       entity.AgentTypeChatbot,
		Rating:     4.5,
		Pricing: entity.Pricing{
			Type:          entity.PricingFreemium,
			StartingPrice: &price,
			Currency:      "EUR",
		},
	}
	if mutate != nil {
		mutate(agent)
	}
	return agent
}

func TestNewDataset(t *testing.T) {
	ds, err := New(testCategories(), testCodes(), []*entity.Agent{testAgent(nil)})
	require.NoError(t, err)

	assert.Len(t, ds.Categories(), 2)
	assert.Len(t, ds.Codes(), 2)
	assert.Len(t, ds.Agents(), 1)

	cat, ok := ds.Category("horeca")
	require.True(t, ok)
	assert.Equal(t, "HoReCa", cat.Name)

	code, ok := ds.Code("5610")
	require.True(t, ok)
	assert.Equal(t, "Restaurante", code.Title)

	_, ok = ds.Code("9999")
	assert.False(t, ok)
}

func TestNewDatasetValidation(t *testing.T) {
	tests := []struct {
		name       string
		categories []*entity.Category
		codes      []*entity.ClassificationCode
		agents     []*entity.Agent
	}{
		{
			name:       "duplicate category id",
			categories: append(testCategories(), &entity.Category{ID: "horeca"}),
			codes:      testCodes(),
		},
		{
			name:       "category with empty id",
			categories: []*entity.Category{{ID: ""}},
		},
		{
			name:       "duplicate classification code",
			categories: testCategories(),
			codes:      append(testCodes(), &entity.ClassificationCode{Code: "5610", CategoryID: "horeca"}),
		},
		{
			name:       "code references unknown category",
			categories: testCategories(),
			codes:      []*entity.ClassificationCode{{Code: "5610", CategoryID: "ghost"}},
		},
		{
			name:       "duplicate agent id",
			categories: testCategories(),
			codes:      testCodes(),
			agents:     []*entity.Agent{testAgent(nil), testAgent(nil)},
		},
		{
			name:       "agent references unknown code",
			categories: testCategories(),
			codes:      testCodes(),
			agents:     []*entity.Agent{testAgent(func(a *entity.Agent) { a.CAENCode = "9999" })},
		},
		{
			name:       "agent category disagrees with code category",
			categories: testCategories(),
			codes:      testCodes(),
			agents:     []*entity.Agent{testAgent(func(a *entity.Agent) { a.CategoryID = "retail" })},
		},
		{
			name:       "unknown agent type",
			categories: testCategories(),
			codes:      testCodes(),
			agents:     []*entity.Agent{testAgent(func(a *entity.Agent) { a.Type = "oracle" })},
		},
		{
			name:       "rating above range",
			categories: testCategories(),
			codes:      testCodes(),
			agents:     []*entity.Agent{testAgent(func(a *entity.Agent) { a.Rating = 5.1 })},
		},
		{
			name:       "negative rating",
			categories: testCategories(),
			codes:      testCodes(),
			agents:     []*entity.Agent{testAgent(func(a *entity.Agent) { a.Rating = -0.1 })},
		},
		{
			name:       "negative review count",
			categories: testCategories(),
			codes:      testCodes(),
			agents:     []*entity.Agent{testAgent(func(a *entity.Agent) { a.ReviewCount = -1 })},
		},
		{
			name:       "unknown pricing type",
			categories: testCategories(),
			codes:      testCodes(),
			agents:     []*entity.Agent{testAgent(func(a *entity.Agent) { a.Pricing.Type = "barter" })},
		},
		{
			name:       "starting price on free tier",
			categories: testCategories(),
			codes:      testCodes(),
			agents: []*entity.Agent{testAgent(func(a *entity.Agent) {
				a.Pricing.Type = entity.PricingFree
			})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.categories, tt.codes, tt.agents)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidDataset(err), "expected invalid dataset error, got %v", err)
		})
	}
}

func TestAgentCountForCode(t *testing.T) {
	agents := []*entity.Agent{
		testAgent(nil),
		testAgent(func(a *entity.Agent) { a.ID = "agent-2" }),
		testAgent(func(a *entity.Agent) {
			a.ID = "agent-3"
			a.CAENCode = "4711"
			a.CategoryID = "retail"
		}),
	}

	ds, err := New(testCategories(), testCodes(), agents)
	require.NoError(t, err)

	// The live count wins over the authored AgentCount hint (99 on 5610)
	assert.Equal(t, 2, ds.AgentCountForCode("5610"))
	assert.Equal(t, 1, ds.AgentCountForCode("4711"))
	assert.Equal(t, 0, ds.AgentCountForCode("9999"))
}
