// Package catalog holds the immutable in-memory catalog dataset: the three
// entity collections, their lookup indexes, and the load-time integrity
// validation that every dataset must pass before it can be queried.
package catalog

import (
	"fmt"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

// Dataset is the fixed catalog loaded once at startup. It is never mutated
// after construction, so it is safe to share across goroutines without
// locking. Accessors return internal slices; callers must treat them as
// read-only.
type Dataset struct {
	categories []*entity.Category
	codes      []*entity.ClassificationCode
	agents     []*entity.Agent

	categoryByID map[string]*entity.Category
	codeByID     map[string]*entity.ClassificationCode
}

// New builds a Dataset and runs the full integrity validation. Any violation
// is fatal: a process must refuse to serve queries against an inconsistent
// dataset rather than silently dropping entries.
func New(categories []*entity.Category, codes []*entity.ClassificationCode, agents []*entity.Agent) (*Dataset, error) {
	ds := &Dataset{
		categories:   categories,
		codes:        codes,
		agents:       agents,
		categoryByID: make(map[string]*entity.Category, len(categories)),
		codeByID:     make(map[string]*entity.ClassificationCode, len(codes)),
	}

	for _, cat := range categories {
		if cat.ID == "" {
			return nil, domain.NewInvalidDatasetError("category with empty id")
		}
		if _, dup := ds.categoryByID[cat.ID]; dup {
			return nil, domain.NewInvalidDatasetError(fmt.Sprintf("duplicate category id %q", cat.ID))
		}
		ds.categoryByID[cat.ID] = cat
	}

	for _, code := range codes {
		if code.Code == "" {
			return nil, domain.NewInvalidDatasetError("classification code with empty code")
		}
		if _, dup := ds.codeByID[code.Code]; dup {
			return nil, domain.NewInvalidDatasetError(fmt.Sprintf("duplicate classification code %q", code.Code))
		}
		if _, ok := ds.categoryByID[code.CategoryID]; !ok {
			return nil, domain.NewInvalidDatasetError(
				fmt.Sprintf("classification code %q references unknown category %q", code.Code, code.CategoryID))
		}
		ds.codeByID[code.Code] = code
	}

	agentIDs := make(map[string]struct{}, len(agents))
	for _, agent := range agents {
		if agent.ID == "" {
			return nil, domain.NewInvalidDatasetError("agent with empty id")
		}
		if _, dup := agentIDs[agent.ID]; dup {
			return nil, domain.NewInvalidDatasetError(fmt.Sprintf("duplicate agent id %q", agent.ID))
		}
		agentIDs[agent.ID] = struct{}{}

		if err := ds.validateAgent(agent); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

func (ds *Dataset) validateAgent(agent *entity.Agent) error {
	code, ok := ds.codeByID[agent.CAENCode]
	if !ok {
		return domain.NewInvalidDatasetError(
			fmt.Sprintf("agent %q references unknown classification code %q", agent.ID, agent.CAENCode))
	}
	if agent.CategoryID != code.CategoryID {
		return domain.NewInvalidDatasetError(
			fmt.Sprintf("agent %q category %q disagrees with category %q of code %q",
				agent.ID, agent.CategoryID, code.CategoryID, agent.CAENCode))
	}
	if !agent.Type.IsValid() {
		return domain.NewInvalidDatasetError(
			fmt.Sprintf("agent %q has unknown type %q", agent.ID, agent.Type))
	}
	if agent.Rating < 0 || agent.Rating > 5 {
		return domain.NewInvalidDatasetError(
			fmt.Sprintf("agent %q rating %.2f outside [0, 5]", agent.ID, agent.Rating))
	}
	if agent.ReviewCount < 0 {
		return domain.NewInvalidDatasetError(
			fmt.Sprintf("agent %q has negative review count", agent.ID))
	}
	if !agent.Pricing.Type.IsValid() {
		return domain.NewInvalidDatasetError(
			fmt.Sprintf("agent %q has unknown pricing type %q", agent.ID, agent.Pricing.Type))
	}
	if agent.Pricing.StartingPrice != nil && !agent.Pricing.Type.HasStartingPrice() {
		return domain.NewInvalidDatasetError(
			fmt.Sprintf("agent %q has a starting price on pricing tier %q", agent.ID, agent.Pricing.Type))
	}
	return nil
}

// Categories returns all categories in declaration order
func (ds *Dataset) Categories() []*entity.Category {
	return ds.categories
}

// Codes returns all classification codes in declaration order
func (ds *Dataset) Codes() []*entity.ClassificationCode {
	return ds.codes
}

// Agents returns all agents in dataset insertion order
func (ds *Dataset) Agents() []*entity.Agent {
	return ds.agents
}

// Category looks up a category by id
func (ds *Dataset) Category(id string) (*entity.Category, bool) {
	cat, ok := ds.categoryByID[id]
	return cat, ok
}

// Code looks up a classification code
func (ds *Dataset) Code(code string) (*entity.ClassificationCode, bool) {
	c, ok := ds.codeByID[code]
	return c, ok
}

// AgentCountForCode derives the live agent count for a code from the agent
// collection. The AgentCount field stored on the code is never consulted.
func (ds *Dataset) AgentCountForCode(code string) int {
	n := 0
	for _, agent := range ds.agents {
		if agent.CAENCode == code {
			n++
		}
	}
	return n
}
