package entity

// AgentType classifies what kind of AI agent an offering is
type AgentType string

const (
	AgentTypeChatbot    AgentType = "chatbot"
	AgentTypeRAG        AgentType = "rag"
	AgentTypeIntegrator AgentType = "integrator"
	AgentTypeAnalyzer   AgentType = "analyzer"
	AgentTypeGenerator  AgentType = "generator"
	AgentTypeAssistant  AgentType = "assistant"
	AgentTypeAutomation AgentType = "automation"
	AgentTypePredictive AgentType = "predictive"
)

// IsValid reports whether the value is a member of the closed agent type set
func (t AgentType) IsValid() bool {
	switch t {
	case AgentTypeChatbot, AgentTypeRAG, AgentTypeIntegrator, AgentTypeAnalyzer,
		AgentTypeGenerator, AgentTypeAssistant, AgentTypeAutomation, AgentTypePredictive:
		return true
	}
	return false
}

// PricingType is the commercial tier of an agent offering
type PricingType string

const (
	PricingFree       PricingType = "free"
	PricingFreemium   PricingType = "freemium"
	PricingPaid       PricingType = "paid"
	PricingEnterprise PricingType = "enterprise"
)

// IsValid reports whether the value is a member of the closed pricing type set
func (p PricingType) IsValid() bool {
	switch p {
	case PricingFree, PricingFreemium, PricingPaid, PricingEnterprise:
		return true
	}
	return false
}

// HasStartingPrice reports whether the tier carries a starting price
func (p PricingType) HasStartingPrice() bool {
	return p == PricingPaid || p == PricingFreemium
}

// Category groups classification codes into top-level industry sectors
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
}

// Gradient is a from/to color pair used as a display hint
type Gradient struct {
	From string
	To   string
}

// ClassificationCode is a CAEN industry code that agents are tagged with
type ClassificationCode struct {
	Code        string
	Title       string
	Description string
	Icon        string
	Color       string
	Gradient    Gradient

	// CategoryID references the owning Category by id
	CategoryID string

	// AgentCount is the count as authored in the dataset. It is a display
	// hint only; live counts are always derived from the agent collection.
	AgentCount int
}

// Pricing describes the commercial terms of an agent offering
type Pricing struct {
	Type PricingType

	// StartingPrice is set only for paid and freemium tiers
	StartingPrice *float64
	Currency      string
}

// Agent is a single AI agent offering in the catalog
type Agent struct {
	ID               string
	Name             string
	Description      string
	ShortDescription string
	UseCase          string

	// CAENCode references ClassificationCode.Code; CategoryID must agree
	// with the category of that code
	CAENCode   string
	CategoryID string

	Type        AgentType
	Rating      float64
	ReviewCount int

	IsPremium        bool
	IsRecommended    bool
	IsPopular        bool
	LicenseAvailable bool

	Pricing Pricing

	Tags         []string
	Features     []string
	Integrations []string

	DemoAvailable  bool
	TrialAvailable bool
}
