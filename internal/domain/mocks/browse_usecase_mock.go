package mocks

import (
	"context"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
)

// MockBrowseUsecase is a mock implementation of usecase.BrowseUsecase
type MockBrowseUsecase struct {
	CreateSessionFunc func(ctx context.Context) (*domain.BrowseSession, error)
	GetSessionFunc    func(ctx context.Context, id string) (*domain.BrowseSession, error)
	SelectCodeFunc    func(ctx context.Context, id, code string) (*domain.BrowseSession, error)
	SetSearchTermFunc func(ctx context.Context, id, term string) (*domain.BrowseSession, error)
	UpdateFacetsFunc  func(ctx context.Context, id string, update domain.FacetUpdate) (*domain.BrowseSession, error)
	ClearFacetsFunc   func(ctx context.Context, id string) (*domain.BrowseSession, error)
	DeleteSessionFunc func(ctx context.Context, id string) error
	PurgeExpiredFunc  func(ctx context.Context) int
}

// CreateSession mocks the CreateSession method
func (m *MockBrowseUsecase) CreateSession(ctx context.Context) (*domain.BrowseSession, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx)
	}
	return &domain.BrowseSession{ID: "mock-session"}, nil
}

// GetSession mocks the GetSession method
func (m *MockBrowseUsecase) GetSession(ctx context.Context, id string) (*domain.BrowseSession, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, id)
	}
	return &domain.BrowseSession{ID: id}, nil
}

// SelectCode mocks the SelectCode method
func (m *MockBrowseUsecase) SelectCode(ctx context.Context, id, code string) (*domain.BrowseSession, error) {
	if m.SelectCodeFunc != nil {
		return m.SelectCodeFunc(ctx, id, code)
	}
	return &domain.BrowseSession{ID: id, SelectedCode: code}, nil
}

// SetSearchTerm mocks the SetSearchTerm method
func (m *MockBrowseUsecase) SetSearchTerm(ctx context.Context, id, term string) (*domain.BrowseSession, error) {
	if m.SetSearchTermFunc != nil {
		return m.SetSearchTermFunc(ctx, id, term)
	}
	return &domain.BrowseSession{ID: id, SearchTerm: term}, nil
}

// UpdateFacets mocks the UpdateFacets method
func (m *MockBrowseUsecase) UpdateFacets(ctx context.Context, id string, update domain.FacetUpdate) (*domain.BrowseSession, error) {
	if m.UpdateFacetsFunc != nil {
		return m.UpdateFacetsFunc(ctx, id, update)
	}
	return &domain.BrowseSession{ID: id}, nil
}

// ClearFacets mocks the ClearFacets method
func (m *MockBrowseUsecase) ClearFacets(ctx context.Context, id string) (*domain.BrowseSession, error) {
	if m.ClearFacetsFunc != nil {
		return m.ClearFacetsFunc(ctx, id)
	}
	return &domain.BrowseSession{ID: id}, nil
}

// DeleteSession mocks the DeleteSession method
func (m *MockBrowseUsecase) DeleteSession(ctx context.Context, id string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, id)
	}
	return nil
}

// PurgeExpired mocks the PurgeExpired method
func (m *MockBrowseUsecase) PurgeExpired(ctx context.Context) int {
	if m.PurgeExpiredFunc != nil {
		return m.PurgeExpiredFunc(ctx)
	}
	return 0
}
