package services

import (
	"encoding/json"
	"testing"
	"time"

	"micron-manager/internal/models"
	"micron-manager/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CustomerProjectorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	avatars   *service_mocks.MockAvatarResolver
	projector CustomerProjectorInterface
	record    *models.CustomerRecord
}

func TestCustomerProjectorSuite(t *testing.T) {
	suite.Run(t, new(CustomerProjectorTestSuite))
}

func (s *CustomerProjectorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.avatars = service_mocks.NewMockAvatarResolver(s.ctrl)

	location, err := time.LoadLocation("America/New_York")
	s.Require().NoError(err)

	s.projector = NewCustomerProjector(ProjectorConfig{
		BaseURL:   "https://shop.example.com/",
		Namespace: "/micron-manager/v1/",
		Location:  location,
	}, s.avatars)

	s.record = &models.CustomerRecord{
		ID:         42,
		Email:      "jane@example.com",
		Login:      "jane",
		Registered: time.Date(2024, 7, 4, 16, 30, 0, 0, time.UTC),
		Roles:      []string{models.RoleCustomer},
		Attributes: map[string]string{
			"first_name":        "Jane",
			"last_name":         "Roe",
			"billing_company":   "Acme",
			"billing_city":      "Springfield",
			"billing_email":     "billing@acme.example",
			"shipping_postcode": "12345",
			"paying_customer":   "1",
		},
	}
}

func (s *CustomerProjectorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CustomerProjectorTestSuite) TestProject_Fields() {
	s.avatars.EXPECT().AvatarURL("jane@example.com").Return("https://avatar.example/jane")

	view := s.projector.Project(s.record, models.ContextView)

	s.Equal(uint64(42), view.ID)
	s.Equal("2024-07-04T12:30:00", view.DateCreated)
	s.Equal("2024-07-04T16:30:00", view.DateCreatedGMT)
	s.Nil(view.DateModified)
	s.Nil(view.DateModifiedGMT)
	s.Equal("jane@example.com", view.Email)
	s.Equal("Jane", view.FirstName)
	s.Equal("Roe", view.LastName)
	s.Equal(models.RoleCustomer, view.Role)
	s.Equal("jane", view.Username)
	s.Equal("Acme", view.Billing.Company)
	s.Equal("Springfield", view.Billing.City)
	s.Equal("billing@acme.example", view.Billing.Email)
	s.Equal("", view.Billing.Phone)
	s.Equal("12345", view.Shipping.Postcode)
	s.Equal("", view.Shipping.Company)
	s.True(view.IsPayingCustomer)
	s.Equal("https://avatar.example/jane", view.AvatarURL)
	s.NotNil(view.MetaData)
	s.Empty(view.MetaData)
	s.Equal("https://shop.example.com/micron-manager/v1/customers/42", view.Links.Self[0].Href)
	s.Equal("https://shop.example.com/micron-manager/v1/customers", view.Links.Collection[0].Href)
}

func (s *CustomerProjectorTestSuite) TestProject_DefaultsForMissingData() {
	s.avatars.EXPECT().AvatarURL("").Return("https://avatar.example/default")

	view := s.projector.Project(&models.CustomerRecord{ID: 1}, models.ContextView)

	s.Equal(models.RoleCustomer, view.Role)
	s.Equal(models.BillingAddress{}, view.Billing)
	s.Equal(models.ShippingAddress{}, view.Shipping)
	s.False(view.IsPayingCustomer)
	s.Equal("", view.FirstName)
}

func (s *CustomerProjectorTestSuite) TestProject_PayingCustomerTruthiness() {
	s.avatars.EXPECT().AvatarURL(gomock.Any()).Return("").AnyTimes()

	for value, want := range map[string]bool{"": false, "0": false, "1": true, "yes": true} {
		s.record.Attributes["paying_customer"] = value
		s.Equal(want, s.projector.Project(s.record, models.ContextView).IsPayingCustomer, "value %q", value)
	}
}

func (s *CustomerProjectorTestSuite) TestProject_FirstRoleWins() {
	s.avatars.EXPECT().AvatarURL(gomock.Any()).Return("")
	s.record.Roles = []string{models.RoleSubscriber, models.RoleCustomer}

	s.Equal(models.RoleSubscriber, s.projector.Project(s.record, models.ContextView).Role)
}

func (s *CustomerProjectorTestSuite) TestProject_JSONShape() {
	s.avatars.EXPECT().AvatarURL(gomock.Any()).Return("https://avatar.example/jane")

	data, err := json.Marshal(s.projector.Project(s.record, models.ContextEdit))
	s.Require().NoError(err)

	var fields map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &fields))

	for _, key := range []string{
		"id", "date_created", "date_created_gmt", "date_modified", "date_modified_gmt", "email",
		"first_name", "last_name", "role", "username", "billing", "shipping",
		"is_paying_customer", "avatar_url", "meta_data", "_links",
	} {
		s.Contains(fields, key)
	}
	s.Len(fields, 16)
	s.Equal("null", string(fields["date_modified"]))
	s.Equal("[]", string(fields["meta_data"]))

	var billing map[string]string
	s.Require().NoError(json.Unmarshal(fields["billing"], &billing))
	s.Len(billing, 11)

	var shipping map[string]string
	s.Require().NoError(json.Unmarshal(fields["shipping"], &shipping))
	s.Len(shipping, 10)
	s.NotContains(shipping, "email")
}

func (s *CustomerProjectorTestSuite) TestProject_NilLocationUsesUTC() {
	projector := NewCustomerProjector(ProjectorConfig{BaseURL: "http://x", Namespace: "ns"}, s.avatars)
	s.avatars.EXPECT().AvatarURL(gomock.Any()).Return("")

	view := projector.Project(s.record, "")

	s.Equal(view.DateCreatedGMT, view.DateCreated)
	s.Equal("http://x/ns/customers/42", view.Links.Self[0].Href)
}

func TestGravatarResolver_AvatarURL(t *testing.T) {
	resolver := NewGravatarResolver("")

	a := resolver.AvatarURL("  Jane@Example.com ")
	b := resolver.AvatarURL("jane@example.com")

	if a != b {
		t.Fatalf("expected normalised emails to share an avatar, got %q and %q", a, b)
	}
	want := "https://secure.gravatar.com/avatar/"
	if len(a) < len(want) || a[:len(want)] != want {
		t.Fatalf("unexpected avatar base: %q", a)
	}
	if a[len(a)-len("?s=96&d=mm&r=g"):] != "?s=96&d=mm&r=g" {
		t.Fatalf("unexpected avatar query: %q", a)
	}
	if resolver.AvatarURL("other@example.com") == a {
		t.Fatal("different emails must not share an avatar")
	}
}
