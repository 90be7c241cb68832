package usecase

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
)

func newTestBrowseUsecase(t *testing.T, ttl time.Duration) BrowseUsecase {
	t.Helper()
	return NewBrowseUsecase(loadDataset(t), ttl, slog.Default())
}

func boolPtr(b bool) *bool { return &b }

func resultIDs(s *domain.BrowseSession) []string {
	ids := make([]string, 0, len(s.Results))
	for _, a := range s.Results {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestBrowseSessionLifecycle(t *testing.T) {
	uc := newTestBrowseUsecase(t, time.Minute)
	ctx := context.Background()

	created, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.SelectedCode)
	assert.NotEmpty(t, created.Results)

	fetched, err := uc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	require.NoError(t, uc.DeleteSession(ctx, created.ID))

	_, err = uc.GetSession(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	err = uc.DeleteSession(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestBrowseSessionTransitions(t *testing.T) {
	uc := newTestBrowseUsecase(t, time.Minute)
	ctx := context.Background()

	s, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	s, err = uc.SelectCode(ctx, s.ID, "5610")
	require.NoError(t, err)
	assert.Equal(t, "5610", s.SelectedCode)
	assert.Equal(t, []string{"sintra-ai"}, resultIDs(s))

	s, err = uc.SetSearchTerm(ctx, s.ID, "rezervări")
	require.NoError(t, err)
	assert.Equal(t, []string{"sintra-ai"}, resultIDs(s))

	s, err = uc.SelectCode(ctx, s.ID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"sintra-ai", "staybot"}, resultIDs(s))

	s, err = uc.UpdateFacets(ctx, s.ID, domain.FacetUpdate{IsPremium: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"sintra-ai"}, resultIDs(s))

	s, err = uc.ClearFacets(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "rezervări", s.SearchTerm)
	assert.Equal(t, []string{"sintra-ai", "staybot"}, resultIDs(s))
}

func TestBrowseSessionInvalidFacetLeavesStateUntouched(t *testing.T) {
	uc := newTestBrowseUsecase(t, time.Minute)
	ctx := context.Background()

	s, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	s, err = uc.UpdateFacets(ctx, s.ID, domain.FacetUpdate{IsPopular: boolPtr(true)})
	require.NoError(t, err)
	before := resultIDs(s)

	badPricing := entity.PricingType("barter")
	_, err = uc.UpdateFacets(ctx, s.ID, domain.FacetUpdate{Pricing: &badPricing})
	require.Error(t, err)
	assert.True(t, domain.IsInvalidInput(err))

	after, err := uc.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, after.Facets.IsPopular)
	assert.Empty(t, after.Facets.Pricing)
	assert.Equal(t, before, resultIDs(after))
}

func TestBrowseSessionsAreIndependent(t *testing.T) {
	uc := newTestBrowseUsecase(t, time.Minute)
	ctx := context.Background()

	a, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	b, err := uc.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	_, err = uc.SelectCode(ctx, a.ID, "5610")
	require.NoError(t, err)

	other, err := uc.GetSession(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, other.SelectedCode)
	assert.NotEmpty(t, other.Results)
}

func TestBrowseSessionUnknownID(t *testing.T) {
	uc := newTestBrowseUsecase(t, time.Minute)
	ctx := context.Background()

	_, err := uc.SelectCode(ctx, "missing", "5610")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestPurgeExpired(t *testing.T) {
	uc := newTestBrowseUsecase(t, 10*time.Millisecond)
	ctx := context.Background()

	stale, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	fresh, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, uc.PurgeExpired(ctx))

	_, err = uc.GetSession(ctx, stale.ID)
	assert.True(t, domain.IsNotFound(err))

	_, err = uc.GetSession(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestBrowseSessionConcurrentTransitions(t *testing.T) {
	uc := newTestBrowseUsecase(t, time.Minute)
	ctx := context.Background()

	s, err := uc.CreateSession(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = uc.SetSearchTerm(ctx, s.ID, "rezervări")
			} else {
				_, _ = uc.UpdateFacets(ctx, s.ID, domain.FacetUpdate{IsPopular: boolPtr(true)})
			}
		}(i)
	}
	wg.Wait()

	// every transition applied; the end state is the union of both updates
	final, err := uc.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "rezervări", final.SearchTerm)
	assert.True(t, final.Facets.IsPopular)
	assert.Equal(t, []string{"sintra-ai", "staybot"}, resultIDs(final))
}
