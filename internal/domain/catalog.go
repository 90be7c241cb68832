package domain

import (
	"time"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

// RankSelector names the promotional flag a shelf is ranked on
type RankSelector string

const (
	RankPopular     RankSelector = "popular"
	RankRecommended RankSelector = "recommended"
)

// IsValid reports whether the selector is a known shelf selector
func (s RankSelector) IsValid() bool {
	return s == RankPopular || s == RankRecommended
}

// FacetSet is the closed set of filter constraints a browsing session can
// hold. Zero values mean "no constraint": an empty string or false facet
// imposes nothing, it never means "require false".
type FacetSet struct {
	Category  string
	AgentType entity.AgentType
	Pricing   entity.PricingType

	IsPopular        bool
	IsRecommended    bool
	IsPremium        bool
	LicenseAvailable bool
}

// IsZero reports whether no facet constraint is active
func (f FacetSet) IsZero() bool {
	return f == FacetSet{}
}

// FacetUpdate is a partial, key-by-key merge into a FacetSet. A nil field
// leaves the facet untouched; a zero value (empty string, false) clears the
// constraint, matching the UI's toggle-to-clear behavior.
type FacetUpdate struct {
	Category  *string
	AgentType *entity.AgentType
	Pricing   *entity.PricingType

	IsPopular        *bool
	IsRecommended    *bool
	IsPremium        *bool
	LicenseAvailable *bool
}

// Validate rejects enum values outside the closed facet domains. An empty
// string is allowed everywhere because it clears the facet.
func (u FacetUpdate) Validate() error {
	if u.AgentType != nil && *u.AgentType != "" && !u.AgentType.IsValid() {
		return NewInvalidInputError("unknown agent type: " + string(*u.AgentType))
	}
	if u.Pricing != nil && *u.Pricing != "" && !u.Pricing.IsValid() {
		return NewInvalidInputError("unknown pricing type: " + string(*u.Pricing))
	}
	return nil
}

// CategoryCount pairs a category with the number of agents from the current
// agent sequence that belong to it
type CategoryCount struct {
	Category *entity.Category
	Count    int
}

// BrowseSession is an immutable snapshot of one browsing session: its view
// state plus the result set derived from it
type BrowseSession struct {
	ID           string
	SelectedCode string
	SearchTerm   string
	Facets       FacetSet
	Results      []*entity.Agent
	CreatedAt    time.Time
	LastActiveAt time.Time
}
