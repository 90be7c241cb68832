package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/domain"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/handler/dto"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/usecase"
)

// SessionHandler handles browsing session lifecycle and transitions
type SessionHandler struct {
	usecase usecase.BrowseUsecase
	logger  *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(uc usecase.BrowseUsecase) *SessionHandler {
	return &SessionHandler{
		usecase: uc,
		logger:  slog.Default(),
	}
}

// Create starts a browsing session
//
//	@Summary		Create browsing session
//	@Description	Starts a session in the "show everything" state
//	@Tags			Browse
//	@Produce		json
//	@Success		201	{object}	Response
//	@Router			/sessions [post]
func (h *SessionHandler) Create(ctx context.Context, c *app.RequestContext) {
	session, err := h.usecase.CreateSession(ctx)
	if err != nil {
		h.logger.Error("failed to create browse session", "error", err)
		ErrorResponse(c, err)
		return
	}

	CreatedResponse(c, dto.ToSessionResponse(session))
}

// Get returns the current state and results of a session
//
//	@Summary		Session snapshot
//	@Tags			Browse
//	@Produce		json
//	@Param			id	path		string	true	"session id"
//	@Success		200	{object}	Response
//	@Failure		404	{object}	Response
//	@Router			/sessions/{id} [get]
func (h *SessionHandler) Get(ctx context.Context, c *app.RequestContext) {
	session, err := h.usecase.GetSession(ctx, c.Param("id"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSessionResponse(session))
}

// SelectCode replaces the session's active classification code
//
//	@Summary		Select classification code
//	@Description	Empty code clears the selection; unknown codes yield empty results
//	@Tags			Browse
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"session id"
//	@Param			request	body		dto.SelectCodeRequest	true	"code selection"
//	@Success		200		{object}	Response
//	@Failure		404		{object}	Response
//	@Router			/sessions/{id}/code [put]
func (h *SessionHandler) SelectCode(ctx context.Context, c *app.RequestContext) {
	var req dto.SelectCodeRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.usecase.SelectCode(ctx, c.Param("id"), req.Code)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSessionResponse(session))
}

// Search replaces the session's free-text term
//
//	@Summary		Set search term
//	@Tags			Browse
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"session id"
//	@Param			request	body		dto.SearchRequest	true	"search term"
//	@Success		200		{object}	Response
//	@Failure		404		{object}	Response
//	@Router			/sessions/{id}/search [put]
func (h *SessionHandler) Search(ctx context.Context, c *app.RequestContext) {
	var req dto.SearchRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.usecase.SetSearchTerm(ctx, c.Param("id"), req.Term)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSessionResponse(session))
}

// UpdateFacets merges a partial facet update into the session
//
//	@Summary		Update facets
//	@Description	Absent keys are untouched; zero values clear the constraint
//	@Tags			Browse
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"session id"
//	@Param			request	body		dto.UpdateFacetsRequest	true	"partial facet update"
//	@Success		200		{object}	Response
//	@Failure		400		{object}	Response
//	@Failure		404		{object}	Response
//	@Router			/sessions/{id}/facets [patch]
func (h *SessionHandler) UpdateFacets(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateFacetsRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("invalid request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	session, err := h.usecase.UpdateFacets(ctx, c.Param("id"), req.ToFacetUpdate())
	if err != nil {
		h.logger.Warn("facet update rejected", "session_id", c.Param("id"), "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSessionResponse(session))
}

// ClearFacets resets the session's facet set
//
//	@Summary		Clear facets
//	@Description	Resets facets without touching the selected code or search term
//	@Tags			Browse
//	@Produce		json
//	@Param			id	path		string	true	"session id"
//	@Success		200	{object}	Response
//	@Failure		404	{object}	Response
//	@Router			/sessions/{id}/facets [delete]
func (h *SessionHandler) ClearFacets(ctx context.Context, c *app.RequestContext) {
	session, err := h.usecase.ClearFacets(ctx, c.Param("id"))
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ToSessionResponse(session))
}

// Delete ends a browsing session
//
//	@Summary		Delete session
//	@Tags			Browse
//	@Param			id	path	string	true	"session id"
//	@Success		204
//	@Failure		404	{object}	Response
//	@Router			/sessions/{id} [delete]
func (h *SessionHandler) Delete(ctx context.Context, c *app.RequestContext) {
	if err := h.usecase.DeleteSession(ctx, c.Param("id")); err != nil {
		ErrorResponse(c, err)
		return
	}

	NoContentResponse(c)
}
