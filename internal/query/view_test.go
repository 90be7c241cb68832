package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/catalog"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

func loadDataset(t *testing.T) *catalog.Dataset {
	t.Helper()
	ds, err := catalog.Load("")
	require.NoError(t, err)
	return ds
}

func boolPtr(b bool) *bool { return &b }

func TestViewControllerInitialState(t *testing.T) {
	ds := loadDataset(t)
	v := NewViewController(ds)

	assert.Empty(t, v.SelectedCode())
	assert.Empty(t, v.SearchTerm())
	assert.True(t, v.Facets().IsZero())
	assert.Equal(t, agentIDs(ds.Agents()), agentIDs(v.Results()))
}

func TestViewControllerSelectCode(t *testing.T) {
	ds := loadDataset(t)
	v := NewViewController(ds)

	v.SelectCode("5610")
	require.Len(t, v.Results(), 1)
	assert.Equal(t, "SINTRA AI", v.Results()[0].Name)

	// unknown code is a miss, not an error
	v.SelectCode("9999")
	assert.Empty(t, v.Results())

	// empty code clears the selection
	v.SelectCode("")
	assert.Equal(t, agentIDs(ds.Agents()), agentIDs(v.Results()))
}

func TestViewControllerSearchAndFacets(t *testing.T) {
	ds := loadDataset(t)
	v := NewViewController(ds)

	v.SetSearchTerm("rezervări")
	assert.Equal(t, []string{"sintra-ai", "staybot"}, agentIDs(v.Results()))

	// add a premium facet on top of the search
	require.NoError(t, v.UpdateFacets(domain.FacetUpdate{IsPremium: boolPtr(true)}))
	assert.Equal(t, []string{"sintra-ai"}, agentIDs(v.Results()))

	// toggling the facet off restores the search-only results
	require.NoError(t, v.UpdateFacets(domain.FacetUpdate{IsPremium: boolPtr(false)}))
	assert.Equal(t, []string{"sintra-ai", "staybot"}, agentIDs(v.Results()))
}

func TestViewControllerCompositionOrder(t *testing.T) {
	ds := loadDataset(t)
	v := NewViewController(ds)

	// code narrows first, then search, then facets; the end state is the
	// same regardless of the order transitions arrive in
	v.SelectCode("5510")
	v.SetSearchTerm("rezervări")
	require.NoError(t, v.UpdateFacets(domain.FacetUpdate{IsPopular: boolPtr(true)}))
	first := agentIDs(v.Results())

	w := NewViewController(ds)
	require.NoError(t, w.UpdateFacets(domain.FacetUpdate{IsPopular: boolPtr(true)}))
	w.SetSearchTerm("rezervări")
	w.SelectCode("5510")
	assert.Equal(t, first, agentIDs(w.Results()))
	assert.Equal(t, []string{"staybot"}, first)
}

func TestViewControllerInvalidFacetRejected(t *testing.T) {
	ds := loadDataset(t)
	v := NewViewController(ds)

	require.NoError(t, v.UpdateFacets(domain.FacetUpdate{IsPremium: boolPtr(true)}))
	before := agentIDs(v.Results())

	badType := entity.AgentType("oracle")
	err := v.UpdateFacets(domain.FacetUpdate{
		AgentType: &badType,
		IsPremium: boolPtr(false),
	})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))

	// the whole transition is rejected: no field of the update landed
	assert.True(t, v.Facets().IsPremium)
	assert.Empty(t, v.Facets().AgentType)
	assert.Equal(t, before, agentIDs(v.Results()))
}

func TestViewControllerClearFacets(t *testing.T) {
	ds := loadDataset(t)
	v := NewViewController(ds)

	v.SelectCode("5510")
	v.SetSearchTerm("rezervări")
	require.NoError(t, v.UpdateFacets(domain.FacetUpdate{IsPremium: boolPtr(true)}))
	assert.Empty(t, v.Results())

	v.ClearFacets()

	// code and term survive, facets are gone
	assert.Equal(t, "5510", v.SelectedCode())
	assert.Equal(t, "rezervări", v.SearchTerm())
	assert.True(t, v.Facets().IsZero())
	assert.Equal(t, []string{"staybot"}, agentIDs(v.Results()))
}

func TestViewControllerFacetClearViaZeroValue(t *testing.T) {
	ds := loadDataset(t)
	v := NewViewController(ds)

	pricing := entity.PricingFree
	require.NoError(t, v.UpdateFacets(domain.FacetUpdate{Pricing: &pricing}))
	assert.Equal(t, entity.PricingFree, v.Facets().Pricing)

	// setting the facet to its zero value removes the constraint
	empty := entity.PricingType("")
	require.NoError(t, v.UpdateFacets(domain.FacetUpdate{Pricing: &empty}))
	assert.True(t, v.Facets().IsZero())
	assert.Equal(t, agentIDs(ds.Agents()), agentIDs(v.Results()))
}
