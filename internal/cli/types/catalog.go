package types

// Category represents an industry category
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// ClassificationCode represents a CAEN classification code
type ClassificationCode struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Category    string `json:"category"`
	AgentCount  int    `json:"agent_count"`
}

// Pricing represents commercial terms of an agent
type Pricing struct {
	Type          string   `json:"type"`
	StartingPrice *float64 `json:"starting_price,omitempty"`
	Currency      string   `json:"currency"`
}

// Agent represents an AI agent offering
type Agent struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	UseCase          string   `json:"use_case"`
	CaenCode         string   `json:"caen_code"`
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	IsPremium        bool     `json:"is_premium"`
	IsRecommended    bool     `json:"is_recommended"`
	IsPopular        bool     `json:"is_popular"`
	LicenseAvailable bool     `json:"license_available"`
	Pricing          Pricing  `json:"pricing"`
	Tags             []string `json:"tags"`
	Features         []string `json:"features"`
	Integrations     []string `json:"integrations"`
	DemoAvailable    bool     `json:"demo_available"`
	TrialAvailable   bool     `json:"trial_available"`
}

// CategoryCount pairs a category with its live agent count
type CategoryCount struct {
	Category   Category `json:"category"`
	AgentCount int      `json:"agent_count"`
}

// FacetSet is the active facet set of a session
type FacetSet struct {
	Category  string `json:"category,omitempty"`
	AgentType string `json:"agent_type,omitempty"`
	Pricing   string `json:"pricing,omitempty"`

	IsPopular        bool `json:"is_popular,omitempty"`
	IsRecommended    bool `json:"is_recommended,omitempty"`
	IsPremium        bool `json:"is_premium,omitempty"`
	LicenseAvailable bool `json:"license_available,omitempty"`
}

// FacetUpdate is a partial facet update; absent keys leave facets untouched
type FacetUpdate struct {
	Category  *string `json:"category,omitempty"`
	AgentType *string `json:"agent_type,omitempty"`
	Pricing   *string `json:"pricing,omitempty"`

	IsPopular        *bool `json:"is_popular,omitempty"`
	IsRecommended    *bool `json:"is_recommended,omitempty"`
	IsPremium        *bool `json:"is_premium,omitempty"`
	LicenseAvailable *bool `json:"license_available,omitempty"`
}

// Session represents a browsing session snapshot
type Session struct {
	SessionID    string   `json:"session_id"`
	SelectedCode string   `json:"selected_code,omitempty"`
	SearchTerm   string   `json:"search_term,omitempty"`
	Facets       FacetSet `json:"facets"`
	Results      []Agent  `json:"results"`
	TotalCount   int      `json:"total_count"`
}

// APIResponse represents a generic API response with typed data
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ListData represents a generic list data structure
type ListData[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}
