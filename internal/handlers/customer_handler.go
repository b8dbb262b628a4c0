package handlers

import (
	stderrors "errors"
	"net/http"

	"micron-manager/internal/dto"
	"micron-manager/internal/errors"
	"micron-manager/internal/repositories"
	"micron-manager/internal/services"

	"github.com/labstack/echo/v4"
)

const operationListCustomers = "list_customers"

// CustomerHandler handles customer collection HTTP requests
type CustomerHandler struct {
	listingService services.CustomerListingServiceInterface
	logger         services.CustomerLoggerInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	listingService services.CustomerListingServiceInterface,
	logger services.CustomerLoggerInterface,
) *CustomerHandler {
	return &CustomerHandler{
		listingService: listingService,
		logger:         logger,
	}
}

// ListCustomers lists customers
// @Summary List customers
// @Description Lists customer accounts filtered by role, searched, sorted and paginated
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param context query string false "Request context" Enums(view, edit) default(view)
// @Param page query int false "Current page" default(1)
// @Param per_page query int false "Page size (1-100)" default(10)
// @Param search query string false "Free-text search term"
// @Param _searchFields query string false "Comma-separated fields to search: email, first_name, last_name, company, username"
// @Param email query string false "Exact email match"
// @Param role query string false "Role filter, all for every listed role"
// @Param orderby query string false "Sort attribute" Enums(id, include, name, registered, email) default(registered)
// @Param order query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {array} models.CustomerView "Customers; totals in X-WP-Total and X-WP-TotalPages"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Sorry, you cannot list resources."
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := getClaimsFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	req := dto.NewListCustomersRequest()
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, operationListCustomers, err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	req.Sanitize()

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, operationListCustomers, err.Error())
		return err
	}

	page, err := h.listingService.ListCustomers(ctx, req.ToListParams())
	if err != nil {
		if stderrors.Is(err, repositories.ErrUnknownOrder) {
			return SendError(c, errors.CustomerInvalidOrder)
		}
		return SendSystemError(c, err)
	}

	setPaginationHeaders(c, page.Envelope)
	return c.JSON(http.StatusOK, page.Customers)
}
