package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"micron-manager/internal/handlers"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  echo.HTTPErrorHandler
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(s.registry)
	s.echo.HTTPErrorHandler = s.handler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) context() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	var response handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ErrorHandlerTestSuite) TestEchoNotFound() {
	c, rec := s.context()

	s.handler(echo.ErrNotFound, c)

	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decode(rec)
	s.Equal("SYSTEM_004", response.Error.Code)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestEchoMethodNotAllowed() {
	c, rec := s.context()

	s.handler(echo.ErrMethodNotAllowed, c)

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal("SYSTEM_005", s.decode(rec).Error.Code)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorIsOpaque() {
	c, rec := s.context()

	s.handler(errors.New("pq: password authentication failed"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.decode(rec).Error.Code)
	s.NotContains(rec.Body.String(), "password")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type params struct {
		PerPage int    `json:"per_page" validate:"max=100"`
		Order   string `json:"order" validate:"oneof=asc desc"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("json") })
	err := v.Struct(params{PerPage: 500, Order: "up"})
	s.Require().Error(err)

	c, rec := s.context()
	s.handler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decode(rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{
		"order: must be one of: asc, desc",
		"per_page: must be at most 100",
	}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseUntouched() {
	c, rec := s.context()
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	c, _ := s.context()
	s.handler(echo.ErrNotFound, c)
	c, _ = s.context()
	s.handler(echo.ErrNotFound, c)

	count, err := testutil.GatherAndCount(s.registry, "api_errors_total")
	s.Require().NoError(err)
	s.Equal(1, count)
}
