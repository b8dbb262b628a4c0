package handlers

import (
	"net/http"
	"strings"

	"micron-manager/internal/dto"

	"github.com/labstack/echo/v4"
)

// DescribeRoute answers OPTIONS requests with the route's methods, arguments and item schema
func DescribeRoute(description dto.RouteDescription) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAllow, strings.Join(description.Methods, ", "))
		return c.JSON(http.StatusOK, description)
	}
}
