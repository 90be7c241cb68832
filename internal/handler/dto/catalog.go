package dto

import (
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

// CategoryResponse represents a category in HTTP responses
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// GradientResponse is a from/to display color pair
type GradientResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ClassificationCodeResponse represents a CAEN code in HTTP responses.
// AgentCount is the live count derived from the agent collection, not the
// authored display value.
type ClassificationCodeResponse struct {
	Code        string           `json:"code"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Color       string           `json:"color"`
	Gradient    GradientResponse `json:"gradient"`
	Category    string           `json:"category"`
	AgentCount  int              `json:"agent_count"`
}

// PricingResponse represents commercial terms
type PricingResponse struct {
	Type          string   `json:"type"`
	StartingPrice *float64 `json:"starting_price,omitempty"`
	Currency      string   `json:"currency"`
}

// AgentResponse represents an agent offering in HTTP responses
type AgentResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	UseCase          string          `json:"use_case"`
	CaenCode         string          `json:"caen_code"`
	Category         string          `json:"category"`
	Type             string          `json:"type"`
	Rating           float64         `json:"rating"`
	ReviewCount      int             `json:"review_count"`
	IsPremium        bool            `json:"is_premium"`
	IsRecommended    bool            `json:"is_recommended"`
	IsPopular        bool            `json:"is_popular"`
	LicenseAvailable bool            `json:"license_available"`
	Pricing          PricingResponse `json:"pricing"`
	Tags             []string        `json:"tags"`
	Features         []string        `json:"features"`
	Integrations     []string        `json:"integrations"`
	DemoAvailable    bool            `json:"demo_available"`
	TrialAvailable   bool            `json:"trial_available"`
}

// CategoryCountResponse pairs a category with its live agent count
type CategoryCountResponse struct {
	Category   CategoryResponse `json:"category"`
	AgentCount int              `json:"agent_count"`
}

// ToCategoryResponse converts a category entity to its response DTO
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		Icon:        cat.Icon,
		Color:       cat.Color,
	}
}

// ToClassificationCodeResponse converts a code entity to its response DTO,
// substituting the live agent count for the authored one
func ToClassificationCodeResponse(code *entity.ClassificationCode, liveAgentCount int) ClassificationCodeResponse {
	return ClassificationCodeResponse{
		Code:        code.Code,
		Title:       code.Title,
		Description: code.Description,
		Icon:        code.Icon,
		Color:       code.Color,
		Gradient:    GradientResponse{From: code.Gradient.From, To: code.Gradient.To},
		Category:    code.CategoryID,
		AgentCount:  liveAgentCount,
	}
}

// ToAgentResponse converts an agent entity to its response DTO
func ToAgentResponse(agent *entity.Agent) AgentResponse {
	return AgentResponse{
		ID:               agent.ID,
		Name:             agent.Name,
		Description:      agent.Description,
		ShortDescription: agent.ShortDescription,
		UseCase:          agent.UseCase,
		CaenCode:         agent.CAENCode,
		Category:         agent.CategoryID,
		Type:             string(agent.Type),
		Rating:           agent.Rating,
		ReviewCount:      agent.ReviewCount,
		IsPremium:        agent.IsPremium,
		IsRecommended:    agent.IsRecommended,
		IsPopular:        agent.IsPopular,
		LicenseAvailable: agent.LicenseAvailable,
		Pricing: PricingResponse{
			Type:          string(agent.Pricing.Type),
			StartingPrice: agent.Pricing.StartingPrice,
			Currency:      agent.Pricing.Currency,
		},
		Tags:           agent.Tags,
		Features:       agent.Features,
		Integrations:   agent.Integrations,
		DemoAvailable:  agent.DemoAvailable,
		TrialAvailable: agent.TrialAvailable,
	}
}

// ToAgentResponses converts a slice of agents
func ToAgentResponses(agents []*entity.Agent) []AgentResponse {
	items := make([]AgentResponse, len(agents))
	for i, agent := range agents {
		items[i] = ToAgentResponse(agent)
	}
	return items
}

// ToCategoryCountResponses converts category aggregates
func ToCategoryCountResponses(counts []domain.CategoryCount) []CategoryCountResponse {
	items := make([]CategoryCountResponse, len(counts))
	for i, cc := range counts {
		items[i] = CategoryCountResponse{
			Category:   ToCategoryResponse(cc.Category),
			AgentCount: cc.Count,
		}
	}
	return items
}
