package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/handler/dto"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/usecase"
)

// defaultShelfLimit caps a shelf when the caller does not ask for a size
const defaultShelfLimit = 4

// CatalogHandler handles read-only catalog requests
type CatalogHandler struct {
	usecase usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		usecase: uc,
		logger:  slog.Default(),
	}
}

// ListCategories returns all catalog categories
//
//	@Summary		List categories
//	@Description	All industry categories in declaration order
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	Response
//	@Router			/categories [get]
func (h *CatalogHandler) ListCategories(ctx context.Context, c *app.RequestContext) {
	categories := h.usecase.ListCategories(ctx)

	items := make([]dto.CategoryResponse, len(categories))
	for i, cat := range categories {
		items[i] = dto.ToCategoryResponse(cat)
	}

	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// CategoryCounts returns live agent counts per category
//
//	@Summary		Category shelves
//	@Description	One entry per category with its live agent count, zero counts included
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	Response
//	@Router			/categories/counts [get]
func (h *CatalogHandler) CategoryCounts(ctx context.Context, c *app.RequestContext) {
	counts := h.usecase.CategoryCounts(ctx)
	items := dto.ToCategoryCountResponses(counts)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// ListCodes returns all CAEN classification codes
//
//	@Summary		List classification codes
//	@Description	All CAEN codes with live agent counts
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	Response
//	@Router			/codes [get]
func (h *CatalogHandler) ListCodes(ctx context.Context, c *app.RequestContext) {
	codes := h.usecase.ListCodes(ctx)

	items := make([]dto.ClassificationCodeResponse, len(codes))
	for i, code := range codes {
		items[i] = dto.ToClassificationCodeResponse(code, h.usecase.AgentCountForCode(ctx, code.Code))
	}

	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// GetCode returns details of one classification code
//
//	@Summary		Classification code details
//	@Tags			Catalog
//	@Produce		json
//	@Param			code	path		string	true	"CAEN code"
//	@Success		200		{object}	Response
//	@Failure		404		{object}	Response
//	@Router			/codes/{code} [get]
func (h *CatalogHandler) GetCode(ctx context.Context, c *app.RequestContext) {
	code := c.Param("code")

	found, err := h.usecase.GetCode(ctx, code)
	if err != nil {
		h.logger.Warn("classification code lookup failed", "code", code, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToClassificationCodeResponse(found, h.usecase.AgentCountForCode(ctx, code)))
}

// ListAgents returns the full agent catalog in dataset order
//
//	@Summary		List agents
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	Response
//	@Router			/agents [get]
func (h *CatalogHandler) ListAgents(ctx context.Context, c *app.RequestContext) {
	agents := h.usecase.ListAgents(ctx)
	items := dto.ToAgentResponses(agents)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}

// TopRanked returns a promotional shelf
//
//	@Summary		Ranked shelf
//	@Description	Agents flagged popular or recommended, ranked by rating
//	@Tags			Catalog
//	@Produce		json
//	@Param			selector	query		string	true	"popular or recommended"
//	@Param			limit		query		int		false	"shelf size"
//	@Success		200			{object}	Response
//	@Failure		400			{object}	Response
//	@Router			/agents/top [get]
func (h *CatalogHandler) TopRanked(ctx context.Context, c *app.RequestContext) {
	selector := domain.RankSelector(c.Query("selector"))

	limit := defaultShelfLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ErrorResponse(c, domain.NewInvalidInputError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	agents, err := h.usecase.TopRanked(ctx, selector, limit)
	if err != nil {
		h.logger.Warn("shelf request rejected", "selector", selector, "limit", limit, "error", err)
		ErrorResponse(c, err)
		return
	}

	items := dto.ToAgentResponses(agents)
	SuccessResponse(c, ListResponse{Items: items, TotalCount: len(items)})
}
