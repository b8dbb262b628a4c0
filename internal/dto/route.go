package dto

import "micron-manager/internal/models"

// RouteEndpoint describes one method group of a route and its query arguments
type RouteEndpoint struct {
	Methods []string                      `json:"methods"`
	Args    map[string]models.ParamSchema `json:"args"`
}

// RouteDescription is the OPTIONS response of a route
type RouteDescription struct {
	Namespace string                   `json:"namespace"`
	Methods   []string                 `json:"methods"`
	Endpoints []RouteEndpoint          `json:"endpoints"`
	Schema    *models.ItemSchema       `json:"schema,omitempty"`
	Links     map[string][]models.Link `json:"_links,omitempty"`
}

// NewRouteEndpoint indexes params by name
func NewRouteEndpoint(methods []string, params []models.ParamSchema) RouteEndpoint {
	args := make(map[string]models.ParamSchema, len(params))
	for _, p := range params {
		args[p.Name] = p
	}
	return RouteEndpoint{Methods: methods, Args: args}
}
