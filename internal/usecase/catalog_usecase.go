package usecase

import (
	"context"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/catalog"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/query"
)

// CatalogUsecase defines the read-only catalog surface exposed to the
// presentation layer
type CatalogUsecase interface {
	ListCategories(ctx context.Context) []*entity.Category
	ListCodes(ctx context.Context) []*entity.ClassificationCode
	GetCode(ctx context.Context, code string) (*entity.ClassificationCode, error)
	AgentCountForCode(ctx context.Context, code string) int
	ListAgents(ctx context.Context) []*entity.Agent
	TopRanked(ctx context.Context, selector domain.RankSelector, limit int) ([]*entity.Agent, error)
	CategoryCounts(ctx context.Context) []domain.CategoryCount
}

type catalogUsecase struct {
	ds *catalog.Dataset
}

// NewCatalogUsecase creates a new catalog usecase over a validated dataset
func NewCatalogUsecase(ds *catalog.Dataset) CatalogUsecase {
	return &catalogUsecase{ds: ds}
}

// ListCategories returns all categories in declaration order
func (u *catalogUsecase) ListCategories(ctx context.Context) []*entity.Category {
	return u.ds.Categories()
}

// ListCodes returns all classification codes in declaration order
func (u *catalogUsecase) ListCodes(ctx context.Context) []*entity.ClassificationCode {
	return u.ds.Codes()
}

// GetCode returns details of one classification code
func (u *catalogUsecase) GetCode(ctx context.Context, code string) (*entity.ClassificationCode, error) {
	c, ok := u.ds.Code(code)
	if !ok {
		return nil, domain.NewNotFoundError("classification code", code)
	}
	return c, nil
}

// AgentCountForCode returns the live agent count for a code. Unknown codes
// count zero; they are a query miss, not an error.
func (u *catalogUsecase) AgentCountForCode(ctx context.Context, code string) int {
	return u.ds.AgentCountForCode(code)
}

// ListAgents returns all agents in dataset order
func (u *catalogUsecase) ListAgents(ctx context.Context) []*entity.Agent {
	return u.ds.Agents()
}

// TopRanked builds a promotional shelf for the given selector
func (u *catalogUsecase) TopRanked(ctx context.Context, selector domain.RankSelector, limit int) ([]*entity.Agent, error) {
	if !selector.IsValid() {
		return nil, domain.NewInvalidInputError("unknown shelf selector: " + string(selector))
	}
	if limit < 0 {
		return nil, domain.NewInvalidInputError("shelf limit must not be negative")
	}
	return query.RankTop(u.ds.Agents(), selector, limit), nil
}

// CategoryCounts aggregates live agent counts per category over the whole
// catalog
func (u *catalogUsecase) CategoryCounts(ctx context.Context) []domain.CategoryCount {
	return query.AggregateByCategory(u.ds.Agents(), u.ds.Categories())
}
