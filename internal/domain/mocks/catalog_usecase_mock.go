package mocks

import (
	"context"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

// MockCatalogUsecase is a mock implementation of usecase.CatalogUsecase
type MockCatalogUsecase struct {
	ListCategoriesFunc    func(ctx context.Context) []*entity.Category
	ListCodesFunc         func(ctx context.Context) []*entity.ClassificationCode
	GetCodeFunc           func(ctx context.Context, code string) (*entity.ClassificationCode, error)
	AgentCountForCodeFunc func(ctx context.Context, code string) int
	ListAgentsFunc        func(ctx context.Context) []*entity.Agent
	TopRankedFunc         func(ctx context.Context, selector domain.RankSelector, limit int) ([]*entity.Agent, error)
	CategoryCountsFunc    func(ctx context.Context) []domain.CategoryCount
}

// ListCategories mocks the ListCategories method
func (m *MockCatalogUsecase) ListCategories(ctx context.Context) []*entity.Category {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return []*entity.Category{}
}

// ListCodes mocks the ListCodes method
func (m *MockCatalogUsecase) ListCodes(ctx context.Context) []*entity.ClassificationCode {
	if m.ListCodesFunc != nil {
		return m.ListCodesFunc(ctx)
	}
	return []*entity.ClassificationCode{}
}

// GetCode mocks the GetCode method
func (m *MockCatalogUsecase) GetCode(ctx context.Context, code string) (*entity.ClassificationCode, error) {
	if m.GetCodeFunc != nil {
		return m.GetCodeFunc(ctx, code)
	}
	return &entity.ClassificationCode{Code: code}, nil
}

// AgentCountForCode mocks the AgentCountForCode method
func (m *MockCatalogUsecase) AgentCountForCode(ctx context.Context, code string) int {
	if m.AgentCountForCodeFunc != nil {
		return m.AgentCountForCodeFunc(ctx, code)
	}
	return 0
}

// ListAgents mocks the ListAgents method
func (m *MockCatalogUsecase) ListAgents(ctx context.Context) []*entity.Agent {
	if m.ListAgentsFunc != nil {
		return m.ListAgentsFunc(ctx)
	}
	return []*entity.Agent{}
}

// TopRanked mocks the TopRanked method
func (m *MockCatalogUsecase) TopRanked(ctx context.Context, selector domain.RankSelector, limit int) ([]*entity.Agent, error) {
	if m.TopRankedFunc != nil {
		return m.TopRankedFunc(ctx, selector, limit)
	}
	return []*entity.Agent{}, nil
}

// CategoryCounts mocks the CategoryCounts method
func (m *MockCatalogUsecase) CategoryCounts(ctx context.Context) []domain.CategoryCount {
	if m.CategoryCountsFunc != nil {
		return m.CategoryCountsFunc(ctx)
	}
	return []domain.CategoryCount{}
}
