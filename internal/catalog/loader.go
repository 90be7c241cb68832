package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"sigs.k8s.io/yaml"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

//go:embed data/catalog.yaml
var embeddedDataset []byte

// datasetFile is the on-disk shape of a catalog dataset. Field names follow
// the original catalog export format (camelCase), which is why the entity
// structs themselves stay tag-free.
type datasetFile struct {
	Categories []categoryRecord `json:"categories"`
	CaenCodes  []codeRecord     `json:"caenCodes"`
	Agents     []agentRecord    `json:"agents"`
}

type categoryRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type codeRecord struct {
	Code        string         `json:"code"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Color       string         `json:"color"`
	Gradient    gradientRecord `json:"gradient"`
	Category    string         `json:"category"`
	AgentCount  int            `json:"agentCount"`
}

type gradientRecord struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type agentRecord struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"shortDescription"`
	UseCase          string        `json:"useCase"`
	CaenCode         string        `json:"caenCode"`
	Category         string        `json:"category"`
	Type             string        `json:"type"`
	Rating           float64       `json:"rating"`
	ReviewCount      int           `json:"reviewCount"`
	IsPremium        bool          `json:"isPremium"`
	IsRecommended    bool          `json:"isRecommended"`
	IsPopular        bool          `json:"isPopular"`
	LicenseAvailable bool          `json:"licenseAvailable"`
	Pricing          pricingRecord `json:"pricing"`
	Tags             []string      `json:"tags"`
	Features         []string      `json:"features"`
	Integrations     []string      `json:"integrations"`
	DemoAvailable    bool          `json:"demoAvailable"`
	TrialAvailable   bool          `json:"trialAvailable"`
}

type pricingRecord struct {
	Type          string   `json:"type"`
	StartingPrice *float64 `json:"startingPrice,omitempty"`
	Currency      string   `json:"currency"`
}

// Load reads a dataset file and validates it. An empty path loads the
// embedded default catalog. YAML is the primary format; files ending in
// .json are decoded directly with sonic.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return loadBytes(embeddedDataset, false)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	return loadBytes(data, strings.HasSuffix(path, ".json"))
}

func loadBytes(data []byte, isJSON bool) (*Dataset, error) {
	var file datasetFile
	if isJSON {
		if err := sonic.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse json dataset: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse yaml dataset: %w", err)
		}
	}

	categories := make([]*entity.Category, 0, len(file.Categories))
	for _, rec := range file.Categories {
		categories = append(categories, &entity.Category{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
			Icon:        rec.Icon,
			Color:       rec.Color,
		})
	}

	codes := make([]*entity.ClassificationCode, 0, len(file.CaenCodes))
	for _, rec := range file.CaenCodes {
		codes = append(codes, &entity.ClassificationCode{
			Code:        rec.Code,
			Title:       rec.Title,
			Description: rec.Description,
			Icon:        rec.Icon,
			Color:       rec.Color,
			Gradient:    entity.Gradient{From: rec.Gradient.From, To: rec.Gradient.To},
			CategoryID:  rec.Category,
			AgentCount:  rec.AgentCount,
		})
	}

	agents := make([]*entity.Agent, 0, len(file.Agents))
	for _, rec := range file.Agents {
		agents = append(agents, &entity.Agent{
			ID:               rec.ID,
			Name:             rec.Name,
			Description:      rec.Description,
			ShortDescription: rec.ShortDescription,
			UseCase:          rec.UseCase,
			CAENCode:         rec.CaenCode,
			CategoryID:       rec.Category,
			Type:             entity.AgentType(rec.Type),
			Rating:           rec.Rating,
			ReviewCount:      rec.ReviewCount,
			IsPremium:        rec.IsPremium,
			IsRecommended:    rec.IsRecommended,
			IsPopular:        rec.IsPopular,
			LicenseAvailable: rec.LicenseAvailable,
			Pricing: entity.Pricing{
				Type:          entity.PricingType(rec.Pricing.Type),
				StartingPrice: rec.Pricing.StartingPrice,
				Currency:      rec.Pricing.Currency,
			},
			Tags:           rec.Tags,
			Features:       rec.Features,
			Integrations:   rec.Integrations,
			DemoAvailable:  rec.DemoAvailable,
			TrialAvailable: rec.TrialAvailable,
		})
	}

	return New(categories, codes, agents)
}
