package query

import (
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/catalog"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

// ViewController owns the current view state of one browsing session and
// recomputes the visible result set on every transition. It never writes to
// the dataset; it is not safe for concurrent use, the owner serializes
// access per session.
type ViewController struct {
	ds *catalog.Dataset

	selectedCode string
	searchTerm   string
	facets       domain.FacetSet

	results []*entity.Agent
}

// NewViewController creates a controller in the "show everything" state
func NewViewController(ds *catalog.Dataset) *ViewController {
	v := &ViewController{ds: ds}
	v.recompute()
	return v
}

// recompute derives the result set from the current state. The composition
// order is fixed: code filter, then text search, then facets, each stage
// consuming the previous stage's output.
func (v *ViewController) recompute() {
	v.results = FilterByFacets(
		SearchText(
			FilterByCode(v.ds.Agents(), v.selectedCode),
			v.searchTerm,
		),
		v.facets,
	)
}

// SelectCode replaces the active classification code. An empty code clears
// the selection; an unknown code is not an error and simply yields no
// results.
func (v *ViewController) SelectCode(code string) {
	v.selectedCode = code
	v.recompute()
}

// SetSearchTerm replaces the active free-text term
func (v *ViewController) SetSearchTerm(term string) {
	v.searchTerm = term
	v.recompute()
}

// UpdateFacets merges a partial update into the facet set, key by key.
// Setting a facet to its zero value removes the constraint. An invalid enum
// value rejects the whole transition and leaves the state untouched.
func (v *ViewController) UpdateFacets(u domain.FacetUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}

	if u.Category != nil {
		v.facets.Category = *u.Category
	}
	if u.AgentType != nil {
		v.facets.AgentType = *u.AgentType
	}
	if u.Pricing != nil {
		v.facets.Pricing = *u.Pricing
	}
	if u.IsPopular != nil {
		v.facets.IsPopular = *u.IsPopular
	}
	if u.IsRecommended != nil {
		v.facets.IsRecommended = *u.IsRecommended
	}
	if u.IsPremium != nil {
		v.facets.IsPremium = *u.IsPremium
	}
	if u.LicenseAvailable != nil {
		v.facets.LicenseAvailable = *u.LicenseAvailable
	}

	v.recompute()
	return nil
}

// ClearFacets resets the facet set without touching the selected code or the
// search term
func (v *ViewController) ClearFacets() {
	v.facets = domain.FacetSet{}
	v.recompute()
}

// Results returns the current result set. Callers must not modify it.
func (v *ViewController) Results() []*entity.Agent {
	return v.results
}

// SelectedCode returns the active classification code, empty when none
func (v *ViewController) SelectedCode() string {
	return v.selectedCode
}

// SearchTerm returns the active free-text term
func (v *ViewController) SearchTerm() string {
	return v.searchTerm
}

// Facets returns a copy of the active facet set
func (v *ViewController) Facets() domain.FacetSet {
	return v.facets
}
