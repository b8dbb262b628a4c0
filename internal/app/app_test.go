package app

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"micron-manager/internal/config"
	"micron-manager/internal/database"
	"micron-manager/internal/models"
	"micron-manager/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testIssuer = "https://identity.test"

type AppTestSuite struct {
	suite.Suite
	db         *database.DB
	cfg        *config.Config
	privateKey *rsa.PrivateKey
	app        *App
	cancel     context.CancelFunc
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	s.privateKey = privateKey

	s.cfg = &config.Config{
		Server: config.ServerConfig{
			Host:             "localhost",
			Port:             "0",
			Environment:      "testing",
			CORSAllowOrigins: []string{"http://localhost:3000"},
		},
		Identity: config.IdentityConfig{
			PublicKey: publicKey,
			Issuer:    testIssuer,
			Leeway:    30 * time.Second,
		},
		API: config.APIConfig{
			Namespace:  "micron-manager/v1",
			BaseURL:    "http://api.test",
			Location:   time.UTC,
			KnownRoles: []string{models.RoleCustomer, models.RoleSubscriber},
		},
		Security: config.SecurityConfig{
			RateLimitPerSecond: 1000,
			RateLimitBurst:     1000,
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.app = New(ctx, s.cfg, s.db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *AppTestSuite) TearDownTest() {
	s.cancel()
}

func (s *AppTestSuite) token(capabilities ...string) string {
	token, err := MintDevToken(s.privateKey, testIssuer, "1", time.Hour, capabilities...)
	s.Require().NoError(err)
	return token
}

func (s *AppTestSuite) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.app.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *AppTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *AppTestSuite) customers(rec *httptest.ResponseRecorder) []map[string]interface{} {
	var body []map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *AppTestSuite) TestListCustomers_RequiresToken() {
	rec := s.do(http.MethodGet, "/micron-manager/v1/customers", "")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
}

func (s *AppTestSuite) TestListCustomers_RequiresCapability() {
	rec := s.do(http.MethodGet, "/micron-manager/v1/customers", s.token("read"))

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("AUTH_005", s.errorCode(rec))
	s.Contains(rec.Body.String(), "Sorry, you cannot list resources.")
}

func (s *AppTestSuite) TestListCustomers_PaginatesAndSetsHeaders() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		database.CreateTestCustomer(s.T(), s.db, database.CustomerFixture{Registered: base.Add(time.Duration(i) * time.Hour)})
	}
	database.CreateTestCustomer(s.T(), s.db, database.CustomerFixture{Roles: []string{"administrator"}})

	rec := s.do(http.MethodGet, "/micron-manager/v1/customers?per_page=2&orderby=registered&order=asc", s.token(models.CapabilityListUsers))

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("3", rec.Header().Get("X-WP-Total"))
	s.Equal("2", rec.Header().Get("X-WP-TotalPages"))
	s.Len(s.customers(rec), 2)
}

func (s *AppTestSuite) TestListCustomers_SearchesColumnsAndAttributes() {
	byEmail := database.CreateTestCustomer(s.T(), s.db, database.CustomerFixture{Email: "qxzebra@example.com"})
	byCompany := database.CreateTestCustomer(s.T(), s.db, database.CustomerFixture{
		Attributes: map[string]string{"billing_company": "Qxzebra Holdings"},
	})
	database.CreateTestCustomer(s.T(), s.db, database.CustomerFixture{Email: "other@example.com"})

	rec := s.do(http.MethodGet, "/micron-manager/v1/customers?search=qxzebra&orderby=id&order=asc", s.token(models.CapabilityListUsers))

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	body := s.customers(rec)
	s.Require().Len(body, 2)
	s.Equal(float64(byEmail.ID), body[0]["id"])
	s.Equal(float64(byCompany.ID), body[1]["id"])
	s.Equal("2", rec.Header().Get("X-WP-Total"))
}

func (s *AppTestSuite) TestListCustomers_RejectsInvalidParameters() {
	rec := s.do(http.MethodGet, "/micron-manager/v1/customers?per_page=500", s.token(models.CapabilityListUsers))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

func (s *AppTestSuite) TestOptions_DescribesCollection() {
	rec := s.do(http.MethodOptions, "/micron-manager/v1/customers", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(http.MethodGet, rec.Header().Get("Allow"))

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("micron-manager/v1", body["namespace"])
	s.Contains(body, "schema")
	s.Contains(rec.Body.String(), `"per_page"`)
}

func (s *AppTestSuite) TestOptions_PreflightHandledByCORS() {
	req := httptest.NewRequest(http.MethodOptions, "/micron-manager/v1/customers", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	s.app.Handler().ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *AppTestSuite) TestHealthAndReadiness() {
	for _, path := range []string{"/health", "/micron-manager/v1/health"} {
		rec := s.do(http.MethodGet, path, "")
		s.Equal(http.StatusOK, rec.Code, path)
		s.JSONEq(`{"status":"ok"}`, rec.Body.String())
	}

	rec := s.do(http.MethodGet, "/ready", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AppTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/micron-manager/v1/orders", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_004", s.errorCode(rec))
}

func (s *AppTestSuite) TestMetricsExposeRequestCounters() {
	s.do(http.MethodGet, "/micron-manager/v1/customers", s.token(models.CapabilityListUsers))

	rec := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "go_goroutines")
	s.Contains(rec.Body.String(), "customer_list_requests_total")
}

func (s *AppTestSuite) TestSeedCustomers() {
	users := repositories.NewUserRepository(s.db.DB)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.Require().NoError(SeedCustomers(context.Background(), users, 8, logger))

	count, err := users.Count(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(8), count)

	rec := s.do(http.MethodGet, "/micron-manager/v1/customers?role=subscriber", s.token(models.CapabilityListUsers))
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("2", rec.Header().Get("X-WP-Total"))

	s.Require().NoError(SeedCustomers(context.Background(), users, 8, logger))
	count, err = users.Count(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(8), count)
}

func (s *AppTestSuite) TestMintDevToken_WithoutKey() {
	_, err := MintDevToken(nil, testIssuer, "1", time.Hour)
	s.Error(err)
}

func TestLoginFromName(t *testing.T) {
	s := assert.New(t)
	s.Equal("anne.obrien3", loginFromName("Anne", "O'Brien", 3))
	s.Equal("jos.nuez0", loginFromName("José", "Nuñez", 0))
}

func TestNewLogger(t *testing.T) {
	s := require.New(t)

	var buf bytes.Buffer
	NewLogger(&config.Config{Server: config.ServerConfig{Environment: "production"}}, &buf).Debug("hidden")
	NewLogger(&config.Config{Server: config.ServerConfig{Environment: "production"}}, &buf).Info("shown")

	var entry map[string]interface{}
	s.NoError(json.Unmarshal(buf.Bytes(), &entry))
	s.Equal("shown", entry["msg"])
	s.Equal("micron-manager", entry["service"])

	buf.Reset()
	NewLogger(&config.Config{Server: config.ServerConfig{Environment: "development"}}, &buf).Debug("visible")
	s.Contains(buf.String(), "msg=visible")
}
