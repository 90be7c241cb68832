package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/entity"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain/mocks"
)

func newCatalogEngine(mock *mocks.MockCatalogUsecase) *route.Engine {
	h := NewCatalogHandler(mock)
	engine := route.NewEngine(config.NewOptions([]config.Option{}))
	engine.GET("/api/v1/categories", h.ListCategories)
	engine.GET("/api/v1/categories/counts", h.CategoryCounts)
	engine.GET("/api/v1/codes", h.ListCodes)
	engine.GET("/api/v1/codes/:code", h.GetCode)
	engine.GET("/api/v1/agents", h.ListAgents)
	engine.GET("/api/v1/agents/top", h.TopRanked)
	return engine
}

func decodeEnvelope(t *testing.T, body []byte) (string, json.RawMessage) {
	t.Helper()
	var envelope struct {
		Code string          `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Code, envelope.Data
}

func TestListCategoriesHandler(t *testing.T) {
	mock := &mocks.MockCatalogUsecase{
		ListCategoriesFunc: func(ctx context.Context) []*entity.Category {
			return []*entity.Category{
				{ID: "horeca", Name: "HoReCa"},
				{ID: "retail", Name: "Retail"},
			}
		},
	}

	w := ut.PerformRequest(newCatalogEngine(mock), "GET", "/api/v1/categories", nil)
	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode())

	code, data := decodeEnvelope(t, resp.Body())
	assert.Equal(t, "SUCCESS", code)

	var list struct {
		Items      []map[string]any `json:"items"`
		TotalCount int              `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, 2, list.TotalCount)
	assert.Equal(t, "horeca", list.Items[0]["id"])
}

func TestGetCodeHandler(t *testing.T) {
	mock := &mocks.MockCatalogUsecase{
		GetCodeFunc: func(ctx context.Context, code string) (*entity.ClassificationCode, error) {
			if code != "5610" {
				return nil, domain.NewNotFoundError("classification code", code)
			}
			return &entity.ClassificationCode{Code: "5610", Title: "Restaurante", CategoryID: "horeca", AgentCount: 99}, nil
		},
		AgentCountForCodeFunc: func(ctx context.Context, code string) int {
			return 1
		},
	}
	engine := newCatalogEngine(mock)

	t.Run("found", func(t *testing.T) {
		w := ut.PerformRequest(engine, "GET", "/api/v1/codes/5610", nil)
		resp := w.Result()
		require.Equal(t, 200, resp.StatusCode())

		_, data := decodeEnvelope(t, resp.Body())
		var body map[string]any
		require.NoError(t, json.Unmarshal(data, &body))
		assert.Equal(t, "Restaurante", body["title"])
		// the live count wins over the authored hint
		assert.Equal(t, float64(1), body["agent_count"])
	})

	t.Run("not found", func(t *testing.T) {
		w := ut.PerformRequest(engine, "GET", "/api/v1/codes/9999", nil)
		resp := w.Result()
		require.Equal(t, 404, resp.StatusCode())

		code, _ := decodeEnvelope(t, resp.Body())
		assert.Equal(t, "NOT_FOUND", code)
	})
}

func TestTopRankedHandler(t *testing.T) {
	var gotSelector domain.RankSelector
	var gotLimit int
	mock := &mocks.MockCatalogUsecase{
		TopRankedFunc: func(ctx context.Context, selector domain.RankSelector, limit int) ([]*entity.Agent, error) {
			gotSelector, gotLimit = selector, limit
			if !selector.IsValid() {
				return nil, domain.NewInvalidInputError("unknown shelf selector")
			}
			return []*entity.Agent{{ID: "sintra-ai", Name: "SINTRA AI", Rating: 4.8}}, nil
		},
	}
	engine := newCatalogEngine(mock)

	t.Run("default limit", func(t *testing.T) {
		w := ut.PerformRequest(engine, "GET", "/api/v1/agents/top?selector=popular", nil)
		require.Equal(t, 200, w.Result().StatusCode())
		assert.Equal(t, domain.RankPopular, gotSelector)
		assert.Equal(t, defaultShelfLimit, gotLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		w := ut.PerformRequest(engine, "GET", "/api/v1/agents/top?selector=recommended&limit=10", nil)
		require.Equal(t, 200, w.Result().StatusCode())
		assert.Equal(t, domain.RankRecommended, gotSelector)
		assert.Equal(t, 10, gotLimit)
	})

	t.Run("non-integer limit", func(t *testing.T) {
		w := ut.PerformRequest(engine, "GET", "/api/v1/agents/top?selector=popular&limit=many", nil)
		resp := w.Result()
		require.Equal(t, 400, resp.StatusCode())

		code, _ := decodeEnvelope(t, resp.Body())
		assert.Equal(t, "INVALID_INPUT", code)
	})

	t.Run("invalid selector", func(t *testing.T) {
		w := ut.PerformRequest(engine, "GET", "/api/v1/agents/top?selector=trending", nil)
		require.Equal(t, 400, w.Result().StatusCode())
	})
}

func TestListCodesHandlerLiveCounts(t *testing.T) {
	mock := &mocks.MockCatalogUsecase{
		ListCodesFunc: func(ctx context.Context) []*entity.ClassificationCode {
			return []*entity.ClassificationCode{
				{Code: "5610", Title: "Restaurante", CategoryID: "horeca", AgentCount: 42},
			}
		},
		AgentCountForCodeFunc: func(ctx context.Context, code string) int {
			return 3
		},
	}

	w := ut.PerformRequest(newCatalogEngine(mock), "GET", "/api/v1/codes", nil)
	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode())

	_, data := decodeEnvelope(t, resp.Body())
	var list struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, float64(3), list.Items[0]["agent_count"])
}
