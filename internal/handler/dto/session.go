package dto

import (
	"time"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

// SelectCodeRequest replaces the session's active classification code. An
// empty or absent code clears the selection.
type SelectCodeRequest struct {
	Code string `json:"code"`
}

// SearchRequest replaces the session's free-text term
type SearchRequest struct {
	Term string `json:"term"`
}

// UpdateFacetsRequest is a partial facet update. Absent keys leave the facet
// untouched; explicit zero values (empty string, false) clear the
// constraint, mirroring the toggle-to-clear behavior of the UI.
type UpdateFacetsRequest struct {
	Category  *string `json:"category,omitempty"`
	AgentType *string `json:"agent_type,omitempty"`
	Pricing   *string `json:"pricing,omitempty"`

	IsPopular        *bool `json:"is_popular,omitempty"`
	IsRecommended    *bool `json:"is_recommended,omitempty"`
	IsPremium        *bool `json:"is_premium,omitempty"`
	LicenseAvailable *bool `json:"license_available,omitempty"`
}

// ToFacetUpdate converts the request to the domain update
func (r UpdateFacetsRequest) ToFacetUpdate() domain.FacetUpdate {
	update := domain.FacetUpdate{
		Category:         r.Category,
		IsPopular:        r.IsPopular,
		IsRecommended:    r.IsRecommended,
		IsPremium:        r.IsPremium,
		LicenseAvailable: r.LicenseAvailable,
	}
	if r.AgentType != nil {
		t := entity.AgentType(*r.AgentType)
		update.AgentType = &t
	}
	if r.Pricing != nil {
		p := entity.PricingType(*r.Pricing)
		update.Pricing = &p
	}
	return update
}

// FacetSetResponse is the active facet set of a session. Only active
// constraints are serialized.
type FacetSetResponse struct {
	Category  string `json:"category,omitempty"`
	AgentType string `json:"agent_type,omitempty"`
	Pricing   string `json:"pricing,omitempty"`

	IsPopular        bool `json:"is_popular,omitempty"`
	IsRecommended    bool `json:"is_recommended,omitempty"`
	IsPremium        bool `json:"is_premium,omitempty"`
	LicenseAvailable bool `json:"license_available,omitempty"`
}

// SessionResponse is the snapshot of a browsing session: view state plus the
// result set derived from it
type SessionResponse struct {
	SessionID    string           `json:"session_id"`
	SelectedCode string           `json:"selected_code,omitempty"`
	SearchTerm   string           `json:"search_term,omitempty"`
	Facets       FacetSetResponse `json:"facets"`
	Results      []AgentResponse  `json:"results"`
	TotalCount   int              `json:"total_count"`
	CreatedAt    string           `json:"created_at"`
	LastActiveAt string           `json:"last_active_at"`
}

// ToSessionResponse converts a session snapshot to its response DTO
func ToSessionResponse(s *domain.BrowseSession) SessionResponse {
	return SessionResponse{
		SessionID:    s.ID,
		SelectedCode: s.SelectedCode,
		SearchTerm:   s.SearchTerm,
		Facets: FacetSetResponse{
			Category:         s.Facets.Category,
			AgentType:        string(s.Facets.AgentType),
			Pricing:          string(s.Facets.Pricing),
			IsPopular:        s.Facets.IsPopular,
			IsRecommended:    s.Facets.IsRecommended,
			IsPremium:        s.Facets.IsPremium,
			LicenseAvailable: s.Facets.LicenseAvailable,
		},
		Results:      ToAgentResponses(s.Results),
		TotalCount:   len(s.Results),
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		LastActiveAt: s.LastActiveAt.Format(time.RFC3339),
	}
}
