package app

import (
	"net/http"

	"micron-manager/internal/dto"
	"micron-manager/internal/handlers"
	"micron-manager/internal/middleware"
	"micron-manager/internal/models"
	"micron-manager/internal/services"

	"github.com/labstack/echo/v4"
)

// Route is one entry of the route table. Routes with a Permission require an
// authenticated token granting it.
type Route struct {
	Method     string
	Path       string
	Handler    echo.HandlerFunc
	Permission string
	Operation  string
	Params     []models.ParamSchema
	Schema     *models.ItemSchema
}

func (a *App) namespacedRoutes() []Route {
	schema := models.CustomerItemSchema()

	return []Route{
		{
			Method:     http.MethodGet,
			Path:       "/customers",
			Handler:    a.customerHandler.ListCustomers,
			Permission: models.CapabilityListUsers,
			Operation:  "list_customers",
			Params:     models.CustomerCollectionParams(a.cfg.API.KnownRoles),
			Schema:     &schema,
		},
		{
			Method:  http.MethodGet,
			Path:    "/health",
			Handler: a.healthHandler.HealthCheck,
		},
	}
}

func (a *App) rootRoutes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/health", Handler: a.healthHandler.HealthCheck},
		{Method: http.MethodGet, Path: "/ready", Handler: a.healthHandler.Ready},
	}
}

// registerRoutes adds the table to g and answers OPTIONS on every path that
// declares parameters or a schema.
func registerRoutes(g *echo.Group, namespace string, routes []Route, auth echo.MiddlewareFunc, logger services.CustomerLoggerInterface) {
	descriptions := make(map[string]*dto.RouteDescription)
	var order []string

	for _, r := range routes {
		var mw []echo.MiddlewareFunc
		if r.Permission != "" {
			mw = append(mw, auth, middleware.RequireCapability(r.Permission, r.Operation, logger))
		}
		g.Add(r.Method, r.Path, r.Handler, mw...)

		if r.Params == nil && r.Schema == nil {
			continue
		}

		d, ok := descriptions[r.Path]
		if !ok {
			d = &dto.RouteDescription{Namespace: namespace}
			descriptions[r.Path] = d
			order = append(order, r.Path)
		}
		d.Methods = append(d.Methods, r.Method)
		d.Endpoints = append(d.Endpoints, dto.NewRouteEndpoint([]string{r.Method}, r.Params))
		if r.Schema != nil {
			d.Schema = r.Schema
		}
	}

	for _, path := range order {
		g.OPTIONS(path, handlers.DescribeRoute(*descriptions[path]))
	}
}
