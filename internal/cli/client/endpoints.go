package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	// Catalog read endpoints
	endpointCategories     = apiV1Prefix + "/categories"        // GET
	endpointCategoryCounts = apiV1Prefix + "/categories/counts" // GET
	endpointCodes          = apiV1Prefix + "/codes"             // GET
	endpointCodeByID       = apiV1Prefix + "/codes/%s"          // GET
	endpointAgents         = apiV1Prefix + "/agents"            // GET
	endpointAgentsTop      = apiV1Prefix + "/agents/top"        // GET

	// Browsing session endpoints
	endpointSessions      = apiV1Prefix + "/sessions"           // POST
	endpointSessionByID   = apiV1Prefix + "/sessions/%s"        // GET, DELETE
	endpointSessionCode   = apiV1Prefix + "/sessions/%s/code"   // PUT
	endpointSessionSearch = apiV1Prefix + "/sessions/%s/search" // PUT
	endpointSessionFacets = apiV1Prefix + "/sessions/%s/facets" // PATCH, DELETE
)
