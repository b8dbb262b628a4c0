package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"micron-manager/internal/models"
	"micron-manager/internal/repositories"
	"micron-manager/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// CustomerHandlerTestSuite is the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	listingService *service_mocks.MockCustomerListingServiceInterface
	logger         *service_mocks.MockCustomerLoggerInterface
	handler        *CustomerHandler
	e              *echo.Echo
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.listingService = service_mocks.NewMockCustomerListingServiceInterface(s.ctrl)
	s.logger = service_mocks.NewMockCustomerLoggerInterface(s.ctrl)
	s.handler = NewCustomerHandler(s.listingService, s.logger)

	s.e = echo.New()
	s.e.Validator = NewValidator([]string{models.RoleCustomer, models.RoleSubscriber})
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) newContext(target string, authenticated bool) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc")
	if authenticated {
		c.Set(ClaimsContextKey, &models.IdentityClaims{
			UserID:       "1",
			Capabilities: []string{models.CapabilityListUsers},
		})
	}
	return c, rec
}

func (s *CustomerHandlerTestSuite) TestListCustomers_Defaults() {
	c, rec := s.newContext("/customers", true)

	expected := models.ListParams{
		Context: models.ContextView,
		Page:    1,
		PerPage: 10,
		OrderBy: models.OrderByRegistered,
		Order:   models.OrderDesc,
	}
	s.listingService.EXPECT().
		ListCustomers(gomock.Any(), expected).
		Return(&models.CustomerPage{
			Customers: []models.CustomerView{{ID: 5, Email: "a@example.com", MetaData: []models.MetaData{}}},
			Envelope:  models.PageEnvelope{TotalCount: 25, TotalPages: 3},
		}, nil)

	err := s.handler.ListCustomers(c)

	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("25", rec.Header().Get(HeaderTotal))
	s.Equal("3", rec.Header().Get(HeaderTotalPages))

	var body []map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body, 1)
	s.Equal(float64(5), body[0]["id"])
	s.Equal("a@example.com", body[0]["email"])
}

func (s *CustomerHandlerTestSuite) TestListCustomers_AllParameters() {
	c, rec := s.newContext("/customers?context=edit&page=2&per_page=5&search=%20acme%20"+
		"&_searchFields=company,%20email,bogus&email=a@example.com&role=subscriber&orderby=email&order=asc", true)

	expected := models.ListParams{
		Context:      models.ContextEdit,
		Page:         2,
		PerPage:      5,
		Search:       "acme",
		SearchFields: []string{"company", "email", "bogus"},
		Email:        "a@example.com",
		Role:         models.RoleSubscriber,
		OrderBy:      models.OrderByEmail,
		Order:        models.OrderAsc,
	}
	s.listingService.EXPECT().
		ListCustomers(gomock.Any(), expected).
		Return(&models.CustomerPage{Customers: []models.CustomerView{}}, nil)

	s.Require().NoError(s.handler.ListCustomers(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("0", rec.Header().Get(HeaderTotal))
	s.Equal("0", rec.Header().Get(HeaderTotalPages))
	s.JSONEq("[]", rec.Body.String())
}

func (s *CustomerHandlerTestSuite) TestListCustomers_RoleAllMeansNoRole() {
	c, _ := s.newContext("/customers?role=all", true)

	s.listingService.EXPECT().
		ListCustomers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params models.ListParams) (*models.CustomerPage, error) {
			s.Equal("", params.Role)
			return &models.CustomerPage{Customers: []models.CustomerView{}}, nil
		})

	s.NoError(s.handler.ListCustomers(c))
}

func (s *CustomerHandlerTestSuite) TestListCustomers_InvalidParameters() {
	for _, query := range []string{
		"per_page=0",
		"per_page=101",
		"page=0",
		"orderby=first_name",
		"order=sideways",
		"context=embed",
		"email=not-an-email",
		"role=administrator",
	} {
		c, _ := s.newContext("/customers?"+query, true)
		s.logger.EXPECT().LogValidationFailure(gomock.Any(), "list_customers", gomock.Any())

		err := s.handler.ListCustomers(c)

		var validationErrs validator.ValidationErrors
		s.True(errors.As(err, &validationErrs), "query %s", query)
	}
}

func (s *CustomerHandlerTestSuite) TestListCustomers_UnparsableNumber() {
	c, rec := s.newContext("/customers?page=abc", true)
	s.logger.EXPECT().LogValidationFailure(gomock.Any(), "list_customers", gomock.Any())

	s.Require().NoError(s.handler.ListCustomers(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("trace-abc", response.Error.TraceID)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_Unauthenticated() {
	c, rec := s.newContext("/customers", false)

	s.Require().NoError(s.handler.ListCustomers(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_StoreFailure() {
	c, rec := s.newContext("/customers", true)
	s.listingService.EXPECT().
		ListCustomers(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("failed to list customers: %w", errors.New("connection reset")))

	s.Require().NoError(s.handler.ListCustomers(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Empty(rec.Header().Get(HeaderTotal))
	s.NotContains(rec.Body.String(), "connection reset")

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_UnknownOrder() {
	c, rec := s.newContext("/customers", true)
	s.listingService.EXPECT().
		ListCustomers(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("failed to list customers: %w", repositories.ErrUnknownOrder))

	s.Require().NoError(s.handler.ListCustomers(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}
