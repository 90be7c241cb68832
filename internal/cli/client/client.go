package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/types"
)

// APIClient wraps the Hertz client for HTTP communication with the catalog
// API server
type APIClient struct {
	client *client.Client
	server string
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// do sends one request and decodes the enveloped response body into out
func (c *APIClient) do(ctx context.Context, method, uri string, body interface{}, out interface{}) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(method)
	req.SetRequestURI(uri)

	if body != nil {
		bodyBytes, err := sonic.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(bodyBytes)
	}

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		// Surface the server's message when the envelope parses
		var envelope types.APIResponse[any]
		if err := sonic.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
			return fmt.Errorf("%s (HTTP %d)", envelope.Message, statusCode)
		}
		return fmt.Errorf("request failed with HTTP status: %d", statusCode)
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// ListCategories lists all industry categories
func (c *APIClient) ListCategories(ctx context.Context) ([]types.Category, error) {
	var resp types.APIResponse[types.ListData[types.Category]]
	if err := c.do(ctx, consts.MethodGet, c.server+endpointCategories, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Items, nil
}

// CategoryCounts returns live agent counts per category
func (c *APIClient) CategoryCounts(ctx context.Context) ([]types.CategoryCount, error) {
	var resp types.APIResponse[types.ListData[types.CategoryCount]]
	if err := c.do(ctx, consts.MethodGet, c.server+endpointCategoryCounts, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Items, nil
}

// ListCodes lists all CAEN classification codes
func (c *APIClient) ListCodes(ctx context.Context) ([]types.ClassificationCode, error) {
	var resp types.APIResponse[types.ListData[types.ClassificationCode]]
	if err := c.do(ctx, consts.MethodGet, c.server+endpointCodes, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Items, nil
}

// GetCode returns details of one classification code
func (c *APIClient) GetCode(ctx context.Context, code string) (*types.ClassificationCode, error) {
	var resp types.APIResponse[types.ClassificationCode]
	uri := fmt.Sprintf("%s"+endpointCodeByID, c.server, code)
	if err := c.do(ctx, consts.MethodGet, uri, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListAgents lists the full agent catalog
func (c *APIClient) ListAgents(ctx context.Context) ([]types.Agent, error) {
	var resp types.APIResponse[types.ListData[types.Agent]]
	if err := c.do(ctx, consts.MethodGet, c.server+endpointAgents, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Items, nil
}

// TopRanked returns a promotional shelf ("popular" or "recommended")
func (c *APIClient) TopRanked(ctx context.Context, selector string, limit int) ([]types.Agent, error) {
	var resp types.APIResponse[types.ListData[types.Agent]]
	uri := c.server + endpointAgentsTop + "?selector=" + url.QueryEscape(selector) + "&limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, consts.MethodGet, uri, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Items, nil
}

// CreateSession starts a browsing session on the server
func (c *APIClient) CreateSession(ctx context.Context) (*types.Session, error) {
	var resp types.APIResponse[types.Session]
	if err := c.do(ctx, consts.MethodPost, c.server+endpointSessions, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetSession fetches the current snapshot of a session
func (c *APIClient) GetSession(ctx context.Context, sessionID string) (*types.Session, error) {
	var resp types.APIResponse[types.Session]
	uri := fmt.Sprintf("%s"+endpointSessionByID, c.server, sessionID)
	if err := c.do(ctx, consts.MethodGet, uri, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// SelectCode replaces the session's active classification code; an empty
// code clears the selection
func (c *APIClient) SelectCode(ctx context.Context, sessionID, code string) (*types.Session, error) {
	var resp types.APIResponse[types.Session]
	uri := fmt.Sprintf("%s"+endpointSessionCode, c.server, sessionID)
	body := map[string]string{"code": code}
	if err := c.do(ctx, consts.MethodPut, uri, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// SetSearchTerm replaces the session's free-text search term
func (c *APIClient) SetSearchTerm(ctx context.Context, sessionID, term string) (*types.Session, error) {
	var resp types.APIResponse[types.Session]
	uri := fmt.Sprintf("%s"+endpointSessionSearch, c.server, sessionID)
	body := map[string]string{"term": term}
	if err := c.do(ctx, consts.MethodPut, uri, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateFacets merges a partial facet update into the session
func (c *APIClient) UpdateFacets(ctx context.Context, sessionID string, update types.FacetUpdate) (*types.Session, error) {
	var resp types.APIResponse[types.Session]
	uri := fmt.Sprintf("%s"+endpointSessionFacets, c.server, sessionID)
	if err := c.do(ctx, consts.MethodPatch, uri, update, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ClearFacets resets the session's facet set
func (c *APIClient) ClearFacets(ctx context.Context, sessionID string) (*types.Session, error) {
	var resp types.APIResponse[types.Session]
	uri := fmt.Sprintf("%s"+endpointSessionFacets, c.server, sessionID)
	if err := c.do(ctx, consts.MethodDelete, uri, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteSession ends a browsing session
func (c *APIClient) DeleteSession(ctx context.Context, sessionID string) error {
	uri := fmt.Sprintf("%s"+endpointSessionByID, c.server, sessionID)
	return c.do(ctx, consts.MethodDelete, uri, nil, nil)
}
