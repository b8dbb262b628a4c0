package services

import (
	"fmt"
	"strings"
	"time"

	"micron-manager/internal/models"
)

// DateFormat is the layout of the date fields of a customer view
const DateFormat = "2006-01-02T15:04:05"

// ProjectorConfig controls how records are rendered
type ProjectorConfig struct {
	BaseURL   string
	Namespace string
	Location  *time.Location
}

// CustomerProjector renders customer records into their public representation
type CustomerProjector struct {
	baseURL   string
	namespace string
	location  *time.Location
	avatars   AvatarResolver
	schema    models.ItemSchema
}

// NewCustomerProjector creates a projector. A nil location renders local dates in UTC.
func NewCustomerProjector(cfg ProjectorConfig, avatars AvatarResolver) CustomerProjectorInterface {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	if avatars == nil {
		avatars = NewGravatarResolver("")
	}

	return &CustomerProjector{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		namespace: strings.Trim(cfg.Namespace, "/"),
		location:  location,
		avatars:   avatars,
		schema:    models.CustomerItemSchema(),
	}
}

// CollectionURL is the absolute URL of the customer collection
func (p *CustomerProjector) CollectionURL() string {
	return fmt.Sprintf("%s/%s/customers", p.baseURL, p.namespace)
}

// ItemURL is the absolute URL of a single customer
func (p *CustomerProjector) ItemURL(id uint64) string {
	return fmt.Sprintf("%s/%d", p.CollectionURL(), id)
}

// Project maps a record to a view. Properties the schema does not return in
// the request context are left out of the JSON form.
func (p *CustomerProjector) Project(record *models.CustomerRecord, context string) models.CustomerView {
	registered := record.Registered.UTC()

	view := models.CustomerView{
		ID:               record.ID,
		DateCreated:      registered.In(p.location).Format(DateFormat),
		DateCreatedGMT:   registered.Format(DateFormat),
		Email:            record.Email,
		FirstName:        record.Attr("first_name"),
		LastName:         record.Attr("last_name"),
		Role:             record.PrimaryRole(models.RoleCustomer),
		Username:         record.Login,
		Billing:          billingAddress(record),
		Shipping:         shippingAddress(record),
		IsPayingCustomer: record.AttrBool("paying_customer"),
		AvatarURL:        p.avatars.AvatarURL(record.Email),
		MetaData:         []models.MetaData{},
		Links: models.Links{
			Self:       []models.Link{{Href: p.ItemURL(record.ID)}},
			Collection: []models.Link{{Href: p.CollectionURL()}},
		},
	}

	if context == "" {
		context = models.ContextView
	}

	return view.WithOmitted(p.schema.HiddenIn(context)...)
}

func billingAddress(r *models.CustomerRecord) models.BillingAddress {
	return models.BillingAddress{
		FirstName: r.Attr("billing_first_name"),
		LastName:  r.Attr("billing_last_name"),
		Company:   r.Attr("billing_company"),
		Address1:  r.Attr("billing_address_1"),
		Address2:  r.Attr("billing_address_2"),
		City:      r.Attr("billing_city"),
		State:     r.Attr("billing_state"),
		Postcode:  r.Attr("billing_postcode"),
		Country:   r.Attr("billing_country"),
		Email:     r.Attr("billing_email"),
		Phone:     r.Attr("billing_phone"),
	}
}

func shippingAddress(r *models.CustomerRecord) models.ShippingAddress {
	return models.ShippingAddress{
		FirstName: r.Attr("shipping_first_name"),
		LastName:  r.Attr("shipping_last_name"),
		Company:   r.Attr("shipping_company"),
		Address1:  r.Attr("shipping_address_1"),
		Address2:  r.Attr("shipping_address_2"),
		City:      r.Attr("shipping_city"),
		State:     r.Attr("shipping_state"),
		Postcode:  r.Attr("shipping_postcode"),
		Country:   r.Attr("shipping_country"),
		Phone:     r.Attr("shipping_phone"),
	}
}
